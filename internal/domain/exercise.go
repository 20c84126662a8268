package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LocalizedText holds the English and Hebrew variants of a display string.
type LocalizedText struct {
	En string `bson:"en" json:"en"`
	He string `bson:"he,omitempty" json:"he,omitempty"`
}

// Location categorizes where an execution method can be performed.
type Location string

const (
	LocationHome   Location = "home"
	LocationOffice Location = "office"
	LocationSchool Location = "school"
	LocationPark   Location = "park"
	LocationGym    Location = "gym"
	LocationStreet Location = "street"
	LocationOther  Location = "other"
)

// GearType categorizes what an execution method needs to be performed.
type GearType string

const (
	// GearFixedEquipment requires equipment installed at the location
	// (pull-up bar, parallel bars). Satisfiable only when the park's
	// facility list carries the gear id.
	GearFixedEquipment GearType = "fixed_equipment"
	// GearUserGear requires equipment the user brings (resistance band, mat).
	GearUserGear GearType = "user_gear"
	// GearImprovised needs nothing beyond what any location offers.
	GearImprovised GearType = "improvised"
)

// ExerciseType distinguishes repetition-counted from time-boxed exercises.
type ExerciseType string

const (
	ExerciseTypeRepetition ExerciseType = "repetition"
	ExerciseTypeDuration   ExerciseType = "duration"
)

// ExerciseTag is a normalized catalog tag. Tags arrive from the content
// team as free text (English or Hebrew) and are folded into this enum at
// the catalog boundary, so downstream classification is exhaustive rather
// than substring-matching-dependent.
type ExerciseTag string

const (
	TagExplosive ExerciseTag = "explosive"
	TagSkill     ExerciseTag = "skill"
	TagBalance   ExerciseTag = "balance"
	TagTechnique ExerciseTag = "technique"
	TagStability ExerciseTag = "stability"
)

// tagAliases maps raw content-team tag strings to normalized tags.
var tagAliases = map[string]ExerciseTag{
	"explosive":  TagExplosive,
	"plyo":       TagExplosive,
	"plyometric": TagExplosive,
	"מתפרץ":      TagExplosive,
	"skill":      TagSkill,
	"מיומנות":    TagSkill,
	"balance":    TagBalance,
	"שיווי משקל": TagBalance,
	"technique":  TagTechnique,
	"טכניקה":     TagTechnique,
	"stability":  TagStability,
	"יציבות":     TagStability,
}

// NormalizeTag folds a raw catalog tag string into its ExerciseTag.
// The second return value is false for tags the engine does not recognize.
func NormalizeTag(raw string) (ExerciseTag, bool) {
	tag, ok := tagAliases[strings.ToLower(strings.TrimSpace(raw))]
	return tag, ok
}

// IsSkillTag reports whether the tag signals skill work for classification.
func (t ExerciseTag) IsSkillTag() bool {
	switch t {
	case TagSkill, TagBalance, TagTechnique, TagStability:
		return true
	}
	return false
}

// ExecutionMethod is one concrete, location- and equipment-specific way to
// perform an exercise. An exercise with no method for a requested location
// is infeasible at that location.
type ExecutionMethod struct {
	Location Location `bson:"location" json:"location"`
	GearType GearType `bson:"requiredGearType" json:"requiredGearType"`
	GearID   string   `bson:"gearId,omitempty" json:"gearId,omitempty"`
	VideoKey string   `bson:"videoKey,omitempty" json:"videoKey,omitempty"`
	ThumbKey string   `bson:"thumbKey,omitempty" json:"thumbKey,omitempty"`
}

// RequirementType categorizes an alternative equipment requirement.
type RequirementType string

const (
	RequirementGymEquipment RequirementType = "gym_equipment"
	RequirementUrbanAsset   RequirementType = "urban_asset"
	RequirementUserGear     RequirementType = "user_gear"
)

// EquipmentRequirement is one alternative way to satisfy an exercise's
// equipment needs, independent of its execution methods. Lower priority
// values are examined first (1 = highest).
type EquipmentRequirement struct {
	Priority  int             `bson:"priority" json:"priority"`
	Type      RequirementType `bson:"type" json:"type"`
	GearID    string          `bson:"gearId,omitempty" json:"gearId,omitempty"`
	AssetName string          `bson:"assetName,omitempty" json:"assetName,omitempty"`
}

// Exercise is a catalog entry. Catalog entries are owned by the content
// team; the engine treats them as immutable inputs for the duration of
// one generation call.
type Exercise struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    LocalizedText      `bson:"name" json:"name"`
	Domains []TrainingDomain   `bson:"domains" json:"domains"`
	Type    ExerciseType       `bson:"type" json:"type"`
	Tags    []ExerciseTag      `bson:"tags,omitempty" json:"tags,omitempty"`

	// ProgramTargets records, per program id (hex), the level at which
	// this exercise enters that program. Absent entries mean level 1.
	ProgramTargets map[string]int `bson:"programTargets,omitempty" json:"programTargets,omitempty"`

	Methods []ExecutionMethod `bson:"executionMethods,omitempty" json:"executionMethods,omitempty"`

	// AlternativeRequirements are ordered by ascending Priority.
	AlternativeRequirements []EquipmentRequirement `bson:"alternativeRequirements,omitempty" json:"alternativeRequirements,omitempty"`

	// Legacy single-field requirements, still present on catalog entries
	// written before alternativeRequirements existed. Checked as a final
	// fallback by the resolver.
	RequiredEquipmentID string `bson:"requiredEquipmentId,omitempty" json:"requiredEquipmentId,omitempty"`
	RequiredUserGearID  string `bson:"requiredUserGearId,omitempty" json:"requiredUserGearId,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// HasTag reports whether the exercise carries the given normalized tag.
func (e *Exercise) HasTag(tag ExerciseTag) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// EntryLevel returns the minimum level at which this exercise is
// appropriate under the given active program: the program-specific target
// recorded on the exercise if present, else 1. Recomputed on every call,
// never cached across users.
func (e *Exercise) EntryLevel(activeProgramID string) int {
	if activeProgramID != "" {
		if lvl, ok := e.ProgramTargets[activeProgramID]; ok && lvl >= 1 {
			return lvl
		}
	}
	return 1
}
