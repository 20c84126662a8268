package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Intensity is the relative difficulty window requested for generation.
type Intensity string

const (
	IntensityHigh   Intensity = "high"
	IntensityNormal Intensity = "normal"
	IntensityLow    Intensity = "low"
)

// IsValid reports whether i is a known intensity.
func (i Intensity) IsValid() bool {
	switch i {
	case IntensityHigh, IntensityNormal, IntensityLow:
		return true
	}
	return false
}

// DefaultPlanMinutes is the estimated duration used when the caller does
// not supply a target.
const DefaultPlanMinutes = 45

// PlanEntry is one selected exercise inside a workout plan, paired with
// its resolved execution method and set/rep/rest prescription. The entry
// snapshots the catalog fields the player and classifier need, so a plan
// stays renderable even if the catalog entry changes later.
type PlanEntry struct {
	ExerciseID primitive.ObjectID `bson:"exerciseId" json:"exerciseId"`
	Name       LocalizedText      `bson:"name" json:"name"`
	Domain     TrainingDomain     `bson:"domain" json:"domain"`
	Type       ExerciseType       `bson:"type" json:"type"`
	Tags       []ExerciseTag      `bson:"tags,omitempty" json:"tags,omitempty"`
	Method     ExecutionMethod    `bson:"method" json:"method"`

	// Prescription. Repetition exercises use Sets/Reps; duration
	// exercises use Sets/DurationSeconds. RestSeconds applies between sets.
	Sets            int `bson:"sets" json:"sets"`
	Reps            int `bson:"reps,omitempty" json:"reps,omitempty"`
	DurationSeconds int `bson:"durationSeconds,omitempty" json:"durationSeconds,omitempty"`
	RestSeconds     int `bson:"restSeconds" json:"restSeconds"`
}

// WorkoutPlan is the engine's primary output: an ordered exercise list for
// one session. Created fresh on every generation call.
type WorkoutPlan struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID  `bson:"userId" json:"userId"`
	FocusDomains []TrainingDomain    `bson:"focusDomains" json:"focusDomains"`
	Intensity    Intensity           `bson:"intensity" json:"intensity"`
	Location     Location            `bson:"location" json:"location"`
	ParkID       *primitive.ObjectID `bson:"parkId,omitempty" json:"parkId,omitempty"`

	Entries          []PlanEntry `bson:"entries" json:"entries"`
	EstimatedMinutes int         `bson:"estimatedMinutes" json:"estimatedMinutes"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// IsEmpty reports whether generation produced no exercises. An empty plan
// is a valid (if degenerate) output; callers must check it explicitly.
func (p *WorkoutPlan) IsEmpty() bool {
	return p == nil || len(p.Entries) == 0
}
