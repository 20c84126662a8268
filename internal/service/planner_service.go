package service

import (
	"context"
	"errors"

	"github.com/officeappout/out-run-app-sub011/internal/domain"
	"github.com/officeappout/out-run-app-sub011/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrProfileNotFound  = errors.New("user profile not found")
	ErrParkNotFound     = errors.New("park not found")
	ErrPlanNotFound     = errors.New("workout plan not found")
	ErrPlanAccessDenied = errors.New("access denied to this workout plan")
)

// Set/rep/rest prescriptions per intensity. Repetition exercises use
// sets x reps; duration exercises use sets x work seconds.
const (
	highSets = 4
	highReps = 5
	highRest = 120
	highWork = 60

	normalSets = 4
	normalReps = 10
	normalRest = 60
	normalWork = 45

	lowSets = 2
	lowReps = 15
	lowRest = 30
	lowWork = 30

	// Explosive work is programmed as short intervals.
	explosiveRestSeconds = 20
)

// GenerateOptions carries the caller-supplied knobs for one generation.
// Zero values all degrade to defaults; nothing here can make generation
// fail validation.
type GenerateOptions struct {
	DurationMinutes int
	Intensity       domain.Intensity
	Location        domain.Location
	ParkID          *primitive.ObjectID
}

// GeneratedWorkout pairs the assembled plan with its classification for
// the player UI and the message/content services.
type GeneratedWorkout struct {
	Plan           domain.WorkoutPlan          `json:"plan"`
	Classification domain.ClassificationResult `json:"classification"`
}

// PlannerService assembles personalized workout plans.
type PlannerService interface {
	GenerateWorkout(ctx context.Context, userID primitive.ObjectID, opts GenerateOptions) (*GeneratedWorkout, error)
	GetPlanByID(ctx context.Context, userID, planID primitive.ObjectID) (*domain.WorkoutPlan, error)
	GetPlansByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutPlan, error)
}

// plannerService implements the PlannerService interface.
type plannerService struct {
	userRepo     repository.UserRepository
	exerciseRepo repository.ExerciseRepository
	programRepo  repository.ProgramRepository
	parkRepo     repository.ParkRepository
	planRepo     repository.WorkoutPlanRepository
}

// NewPlannerService creates a new instance of plannerService.
func NewPlannerService(
	userRepo repository.UserRepository,
	exerciseRepo repository.ExerciseRepository,
	programRepo repository.ProgramRepository,
	parkRepo repository.ParkRepository,
	planRepo repository.WorkoutPlanRepository,
) PlannerService {
	return &plannerService{
		userRepo:     userRepo,
		exerciseRepo: exerciseRepo,
		programRepo:  programRepo,
		parkRepo:     parkRepo,
		planRepo:     planRepo,
	}
}

// GenerateWorkout assembles a plan for the user: resolve the enrollment
// state, pick focus domains, run the per-domain selection pipeline, merge,
// classify, and persist. Missing catalog data degrades to smaller (possibly
// empty) plans; only repository I/O failures surface as errors.
func (s *plannerService) GenerateWorkout(ctx context.Context, userID primitive.ObjectID, opts GenerateOptions) (*GeneratedWorkout, error) {
	profile, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	if !opts.Intensity.IsValid() {
		opts.Intensity = domain.IntensityNormal
	}
	if opts.DurationMinutes <= 0 {
		opts.DurationMinutes = domain.DefaultPlanMinutes
	}

	var park *domain.Park
	if opts.ParkID != nil {
		park, err = s.parkRepo.GetByID(ctx, *opts.ParkID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrParkNotFound
			}
			return nil, err
		}
	}
	loc := opts.Location
	if loc == "" {
		if park != nil {
			loc = domain.LocationPark
		} else {
			loc = domain.LocationHome
		}
	}

	enrollment := profile.ActiveEnrollment()
	var template *domain.ProgramTemplate
	activeProgramID := ""
	if enrollment != nil {
		activeProgramID = enrollment.ProgramID.Hex()
		template, err = s.programRepo.GetByID(ctx, enrollment.ProgramID)
		if err != nil {
			if !errors.Is(err, repository.ErrNotFound) {
				return nil, err
			}
			// Dangling enrollment: degrade to the regular-enrollment path
			// with the enrollment's own declared domains.
			template = nil
		}
	}

	focus, isMaster := focusDomains(enrollment, template)

	perDomain := make([][]domain.PlanEntry, 0, len(focus))
	for _, d := range focus {
		catalog, err := s.exerciseRepo.GetByDomain(ctx, d)
		if err != nil {
			return nil, err
		}

		level := effectiveLevel(profile, d)
		candidates := selectCandidates(level, opts.Intensity, activeProgramID, catalog)

		entries := make([]domain.PlanEntry, 0, len(candidates))
		for i := range candidates {
			ex := &candidates[i]
			method := selectExecutionMethod(ex, loc, park, profile)
			if method == nil {
				// Infeasible at this location; dropped, not an error.
				continue
			}
			entries = append(entries, buildPlanEntry(ex, d, *method, opts.Intensity))
		}
		perDomain = append(perDomain, entries)
	}

	var entries []domain.PlanEntry
	if isMaster {
		entries = interleaveDomains(perDomain)
	} else {
		for _, list := range perDomain {
			entries = append(entries, list...)
		}
	}

	plan := domain.WorkoutPlan{
		UserID:           profile.ID,
		FocusDomains:     focus,
		Intensity:        opts.Intensity,
		Location:         loc,
		ParkID:           opts.ParkID,
		Entries:          entries,
		EstimatedMinutes: opts.DurationMinutes,
	}

	classification := classifyWorkout(&plan, profile.Goals)

	// An empty plan is a valid output for the caller to inspect, but there
	// is nothing worth storing for the player.
	if !plan.IsEmpty() {
		if _, err := s.planRepo.Create(ctx, &plan); err != nil {
			return nil, err
		}
	}

	return &GeneratedWorkout{Plan: plan, Classification: classification}, nil
}

// GetPlanByID retrieves a stored plan, enforcing ownership.
func (s *plannerService) GetPlanByID(ctx context.Context, userID, planID primitive.ObjectID) (*domain.WorkoutPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	if plan.UserID != userID {
		return nil, ErrPlanAccessDenied
	}
	return plan, nil
}

// GetPlansByUser retrieves the user's stored plans, newest first.
func (s *plannerService) GetPlansByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutPlan, error) {
	if userID == primitive.NilObjectID {
		return nil, errors.New("user ID cannot be nil")
	}
	return s.planRepo.GetByUserID(ctx, userID)
}

// focusDomains resolves the domain set for one generation call from the
// enrollment state machine: no enrollment, regular enrollment, or master
// (composite) enrollment. The second return reports the master case, which
// changes how per-domain lists are merged.
func focusDomains(enrollment *domain.ActiveProgramEnrollment, template *domain.ProgramTemplate) ([]domain.TrainingDomain, bool) {
	switch {
	case enrollment == nil:
		return []domain.TrainingDomain{domain.DomainFullBody, domain.DomainCore}, false
	case template != nil && template.IsMaster:
		if len(template.SubPrograms) > 0 {
			return template.SubPrograms, true
		}
		return []domain.TrainingDomain{domain.DomainUpperBody, domain.DomainLowerBody, domain.DomainCore}, true
	default:
		if len(enrollment.FocusDomains) > 0 {
			return enrollment.FocusDomains, false
		}
		return []domain.TrainingDomain{domain.DomainFullBody}, false
	}
}

// interleaveDomains merges per-domain entry lists round-robin so no single
// domain's work is grouped together; exhausted lists simply drop out.
func interleaveDomains(perDomain [][]domain.PlanEntry) []domain.PlanEntry {
	var merged []domain.PlanEntry
	for i := 0; ; i++ {
		advanced := false
		for _, list := range perDomain {
			if i < len(list) {
				merged = append(merged, list[i])
				advanced = true
			}
		}
		if !advanced {
			return merged
		}
	}
}

// buildPlanEntry snapshots a catalog exercise into a plan entry with a
// set/rep/rest prescription derived from intensity and exercise type.
func buildPlanEntry(ex *domain.Exercise, d domain.TrainingDomain, method domain.ExecutionMethod, intensity domain.Intensity) domain.PlanEntry {
	entry := domain.PlanEntry{
		ExerciseID: ex.ID,
		Name:       ex.Name,
		Domain:     d,
		Type:       ex.Type,
		Tags:       ex.Tags,
		Method:     method,
	}

	var sets, reps, rest, work int
	switch intensity {
	case domain.IntensityHigh:
		sets, reps, rest, work = highSets, highReps, highRest, highWork
	case domain.IntensityLow:
		sets, reps, rest, work = lowSets, lowReps, lowRest, lowWork
	default:
		sets, reps, rest, work = normalSets, normalReps, normalRest, normalWork
	}

	entry.Sets = sets
	entry.RestSeconds = rest
	if ex.Type == domain.ExerciseTypeDuration {
		entry.DurationSeconds = work
	} else {
		entry.Reps = reps
	}

	if ex.HasTag(domain.TagExplosive) {
		entry.RestSeconds = explosiveRestSeconds
	}

	return entry
}
