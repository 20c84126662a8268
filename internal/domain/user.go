package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Goal is a user's declared training goal, chosen during onboarding.
type Goal string

const (
	GoalMuscleGain Goal = "muscle_gain"
	GoalFatLoss    Goal = "fat_loss"
	GoalEndurance  Goal = "endurance"
	GoalSkills     Goal = "skills"
	GoalGlutesAbs  Goal = "glutes_abs"
	GoalMobility   Goal = "mobility"
)

// DomainProgress is the user's progression state in one training domain.
// It is mutated only by the progression/reward subsystem; this engine
// reads it as an immutable snapshot.
type DomainProgress struct {
	CurrentLevel int  `bson:"currentLevel" json:"currentLevel"`
	MaxLevel     int  `bson:"maxLevel" json:"maxLevel"`
	Unlocked     bool `bson:"isUnlocked" json:"isUnlocked"`
}

// SubLevelMap holds the hidden per-domain sub-levels a user has inside one
// master (composite) program. When a sub-level exists for a domain it
// supersedes DomainProgress.CurrentLevel for effective-level computation.
type SubLevelMap map[TrainingDomain]int

// ActiveProgramEnrollment records a user's enrollment in a program.
type ActiveProgramEnrollment struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ProgramID    primitive.ObjectID `bson:"programId" json:"programId"`
	FocusDomains []TrainingDomain   `bson:"focusDomains,omitempty" json:"focusDomains,omitempty"`
	StartedAt    time.Time          `bson:"startedAt" json:"startedAt"`
	WeekCount    int                `bson:"weekCount" json:"weekCount"`
	CurrentWeek  int                `bson:"currentWeek" json:"currentWeek"`
}

// UserProfile is the full user record the engine consumes. It is treated
// as an immutable snapshot for the duration of one generation call.
type UserProfile struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"` // Should be unique
	Role  Role               `bson:"role" json:"role"`

	Goals []Goal `bson:"goals,omitempty" json:"goals,omitempty"`

	// OwnedGearIDs is the set of gear ids the user declared owning.
	// An empty set means ownership was never recorded, not that the user
	// owns nothing; the resolver treats the two cases differently.
	OwnedGearIDs []string `bson:"ownedGearIds,omitempty" json:"ownedGearIds,omitempty"`

	Progress map[TrainingDomain]DomainProgress `bson:"progress,omitempty" json:"progress,omitempty"`

	// ActivePrograms may hold several enrollments, but only the first is
	// consulted for generation (see ActiveEnrollment). Multi-enrollment
	// blending is a deliberate extension point, not current behavior.
	ActivePrograms []ActiveProgramEnrollment `bson:"activePrograms,omitempty" json:"activePrograms,omitempty"`

	// MasterSubLevels is keyed by master-program id (hex).
	MasterSubLevels map[string]SubLevelMap `bson:"masterSubLevels,omitempty" json:"masterSubLevels,omitempty"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

func (u *UserProfile) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ActiveEnrollment returns the enrollment the engine consults, or nil when
// the user is not enrolled in any program. Single-active-enrollment
// invariant: only the first entry is ever considered.
func (u *UserProfile) ActiveEnrollment() *ActiveProgramEnrollment {
	if u == nil || len(u.ActivePrograms) == 0 {
		return nil
	}
	return &u.ActivePrograms[0]
}

// DomainLevel returns the raw progression level for a domain, defaulting
// to 1 when no progress was ever recorded. Absent data degrades rather
// than failing so generation never blocks the user.
func (u *UserProfile) DomainLevel(d TrainingDomain) int {
	if u == nil {
		return 1
	}
	if p, ok := u.Progress[d]; ok && p.CurrentLevel >= 1 {
		return p.CurrentLevel
	}
	return 1
}

// SubLevel returns the hidden sub-level for a domain inside the given
// master program, if one was recorded.
func (u *UserProfile) SubLevel(programID string, d TrainingDomain) (int, bool) {
	if u == nil {
		return 0, false
	}
	levels, ok := u.MasterSubLevels[programID]
	if !ok {
		return 0, false
	}
	lvl, ok := levels[d]
	if !ok || lvl < 1 {
		return 0, false
	}
	return lvl, true
}
