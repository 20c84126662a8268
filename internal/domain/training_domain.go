package domain

// TrainingDomain identifies a training focus area. The set is fixed at
// compile time; domains are never created or destroyed at runtime.
type TrainingDomain string

const (
	DomainUpperBody   TrainingDomain = "upper_body"
	DomainLowerBody   TrainingDomain = "lower_body"
	DomainFullBody    TrainingDomain = "full_body"
	DomainCore        TrainingDomain = "core"
	DomainFlexibility TrainingDomain = "flexibility"
	DomainRunning     TrainingDomain = "running"

	// Named skill tracks.
	DomainHandstand TrainingDomain = "handstand"
	DomainPullUp    TrainingDomain = "pull_up"
)

// AllTrainingDomains lists every known domain, mainly for validation.
var AllTrainingDomains = []TrainingDomain{
	DomainUpperBody,
	DomainLowerBody,
	DomainFullBody,
	DomainCore,
	DomainFlexibility,
	DomainRunning,
	DomainHandstand,
	DomainPullUp,
}

// IsValid reports whether d is one of the known training domains.
// An unknown domain reaching the engine is a programming error, not a
// user-facing condition.
func (d TrainingDomain) IsValid() bool {
	for _, known := range AllTrainingDomains {
		if d == known {
			return true
		}
	}
	return false
}
