package domain

// TrainingStyle is the structural label assigned to an assembled workout.
type TrainingStyle string

const (
	StyleStrength  TrainingStyle = "strength"
	StyleVolume    TrainingStyle = "volume"
	StyleEndurance TrainingStyle = "endurance"
	StyleSkills    TrainingStyle = "skills"
	StyleHiit      TrainingStyle = "hiit"
	StyleGeneral   TrainingStyle = "general"
)

// ClassificationResult labels a workout's training style and records
// whether it lines up with the user's declared goals. Computed once per
// assembled plan; stateless, not persisted by the engine.
type ClassificationResult struct {
	Style          TrainingStyle `json:"style"`
	IsPersonalized bool          `json:"isPersonalized"`
	MatchedGoals   []Goal        `json:"matchedGoals,omitempty"`
}
