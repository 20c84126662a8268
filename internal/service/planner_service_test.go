package service

import (
	"context"
	"testing"

	"github.com/officeappout/out-run-app-sub011/internal/domain"
	"github.com/officeappout/out-run-app-sub011/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- In-memory fakes ---

type fakeUserRepo struct {
	profiles map[primitive.ObjectID]*domain.UserProfile
}

func (f *fakeUserRepo) Create(ctx context.Context, profile *domain.UserProfile) (primitive.ObjectID, error) {
	return profile.ID, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.UserProfile, error) {
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	return nil, repository.ErrNotFound
}

type fakeExerciseRepo struct {
	byDomain map[domain.TrainingDomain][]domain.Exercise
}

func (f *fakeExerciseRepo) Create(ctx context.Context, ex *domain.Exercise) (primitive.ObjectID, error) {
	return ex.ID, nil
}

func (f *fakeExerciseRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeExerciseRepo) GetByDomain(ctx context.Context, d domain.TrainingDomain) ([]domain.Exercise, error) {
	return f.byDomain[d], nil
}

func (f *fakeExerciseRepo) GetAll(ctx context.Context) ([]domain.Exercise, error) {
	var all []domain.Exercise
	for _, list := range f.byDomain {
		all = append(all, list...)
	}
	return all, nil
}

func (f *fakeExerciseRepo) Update(ctx context.Context, ex *domain.Exercise) error { return nil }

func (f *fakeExerciseRepo) Delete(ctx context.Context, id primitive.ObjectID) error { return nil }

type fakeProgramRepo struct {
	programs map[primitive.ObjectID]*domain.ProgramTemplate
}

func (f *fakeProgramRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ProgramTemplate, error) {
	if p, ok := f.programs[id]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeProgramRepo) GetAll(ctx context.Context) ([]domain.ProgramTemplate, error) {
	return nil, nil
}

type fakeParkRepo struct {
	parks map[primitive.ObjectID]*domain.Park
}

func (f *fakeParkRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Park, error) {
	if p, ok := f.parks[id]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

type fakePlanRepo struct {
	created []domain.WorkoutPlan
	plans   map[primitive.ObjectID]*domain.WorkoutPlan
}

func (f *fakePlanRepo) Create(ctx context.Context, plan *domain.WorkoutPlan) (primitive.ObjectID, error) {
	plan.ID = primitive.NewObjectID()
	f.created = append(f.created, *plan)
	return plan.ID, nil
}

func (f *fakePlanRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.WorkoutPlan, error) {
	if p, ok := f.plans[id]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakePlanRepo) GetByUserID(ctx context.Context, userID primitive.ObjectID) ([]domain.WorkoutPlan, error) {
	var out []domain.WorkoutPlan
	for _, p := range f.created {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

// --- Fixtures ---

// bodyweightExercise builds a home-performable exercise entering every
// program at level 1.
func bodyweightExercise(name string, d domain.TrainingDomain) domain.Exercise {
	return domain.Exercise{
		ID:      primitive.NewObjectID(),
		Name:    domain.LocalizedText{En: name},
		Domains: []domain.TrainingDomain{d},
		Type:    domain.ExerciseTypeRepetition,
		Methods: []domain.ExecutionMethod{
			{Location: domain.LocationHome, GearType: domain.GearImprovised},
			{Location: domain.LocationPark, GearType: domain.GearImprovised},
		},
	}
}

type plannerFixture struct {
	users     *fakeUserRepo
	exercises *fakeExerciseRepo
	programs  *fakeProgramRepo
	parks     *fakeParkRepo
	plans     *fakePlanRepo
	service   PlannerService
}

func newPlannerFixture() *plannerFixture {
	f := &plannerFixture{
		users:     &fakeUserRepo{profiles: map[primitive.ObjectID]*domain.UserProfile{}},
		exercises: &fakeExerciseRepo{byDomain: map[domain.TrainingDomain][]domain.Exercise{}},
		programs:  &fakeProgramRepo{programs: map[primitive.ObjectID]*domain.ProgramTemplate{}},
		parks:     &fakeParkRepo{parks: map[primitive.ObjectID]*domain.Park{}},
		plans:     &fakePlanRepo{plans: map[primitive.ObjectID]*domain.WorkoutPlan{}},
	}
	f.service = NewPlannerService(f.users, f.exercises, f.programs, f.parks, f.plans)
	return f
}

func (f *plannerFixture) addUser(profile *domain.UserProfile) primitive.ObjectID {
	if profile.ID == primitive.NilObjectID {
		profile.ID = primitive.NewObjectID()
	}
	f.users.profiles[profile.ID] = profile
	return profile.ID
}

// --- Tests ---

func TestGenerateWorkoutProfileNotFound(t *testing.T) {
	f := newPlannerFixture()

	_, err := f.service.GenerateWorkout(context.Background(), primitive.NewObjectID(), GenerateOptions{})
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGenerateWorkoutParkNotFound(t *testing.T) {
	f := newPlannerFixture()
	userID := f.addUser(&domain.UserProfile{})
	parkID := primitive.NewObjectID()

	_, err := f.service.GenerateWorkout(context.Background(), userID, GenerateOptions{ParkID: &parkID})
	assert.ErrorIs(t, err, ErrParkNotFound)
}

func TestGenerateWorkoutNoEnrollmentDefaults(t *testing.T) {
	f := newPlannerFixture()
	userID := f.addUser(&domain.UserProfile{})
	f.exercises.byDomain[domain.DomainFullBody] = []domain.Exercise{bodyweightExercise("burpee", domain.DomainFullBody)}
	f.exercises.byDomain[domain.DomainCore] = []domain.Exercise{bodyweightExercise("plank hold", domain.DomainCore)}

	generated, err := f.service.GenerateWorkout(context.Background(), userID, GenerateOptions{})
	require.NoError(t, err)

	plan := generated.Plan
	assert.Equal(t, []domain.TrainingDomain{domain.DomainFullBody, domain.DomainCore}, plan.FocusDomains)
	assert.Equal(t, domain.IntensityNormal, plan.Intensity)
	assert.Equal(t, domain.LocationHome, plan.Location)
	assert.Equal(t, domain.DefaultPlanMinutes, plan.EstimatedMinutes)
	require.Len(t, plan.Entries, 2)
	assert.Equal(t, "burpee", plan.Entries[0].Name.En)
	assert.Equal(t, "plank hold", plan.Entries[1].Name.En)
}

func TestGenerateWorkoutMasterProgramInterleaves(t *testing.T) {
	f := newPlannerFixture()
	programID := primitive.NewObjectID()
	f.programs.programs[programID] = &domain.ProgramTemplate{
		ID:       programID,
		IsMaster: true,
		SubPrograms: []domain.TrainingDomain{
			domain.DomainUpperBody, domain.DomainLowerBody, domain.DomainCore,
		},
	}
	userID := f.addUser(&domain.UserProfile{
		ActivePrograms: []domain.ActiveProgramEnrollment{{ProgramID: programID}},
	})

	f.exercises.byDomain[domain.DomainUpperBody] = []domain.Exercise{
		bodyweightExercise("push up", domain.DomainUpperBody),
		bodyweightExercise("pike push up", domain.DomainUpperBody),
	}
	f.exercises.byDomain[domain.DomainLowerBody] = []domain.Exercise{
		bodyweightExercise("squat", domain.DomainLowerBody),
		bodyweightExercise("lunge", domain.DomainLowerBody),
	}
	f.exercises.byDomain[domain.DomainCore] = []domain.Exercise{
		bodyweightExercise("hollow hold", domain.DomainCore),
	}

	generated, err := f.service.GenerateWorkout(context.Background(), userID, GenerateOptions{})
	require.NoError(t, err)

	names := make([]string, len(generated.Plan.Entries))
	for i, e := range generated.Plan.Entries {
		names[i] = e.Name.En
	}
	// Round-robin across the three domains; the exhausted core list drops out.
	assert.Equal(t, []string{"push up", "squat", "hollow hold", "pike push up", "lunge"}, names)
}

func TestGenerateWorkoutRegularEnrollmentKeepsDomainOrder(t *testing.T) {
	f := newPlannerFixture()
	programID := primitive.NewObjectID()
	f.programs.programs[programID] = &domain.ProgramTemplate{ID: programID, IsMaster: false}
	userID := f.addUser(&domain.UserProfile{
		ActivePrograms: []domain.ActiveProgramEnrollment{{
			ProgramID:    programID,
			FocusDomains: []domain.TrainingDomain{domain.DomainPullUp, domain.DomainCore},
		}},
	})

	f.exercises.byDomain[domain.DomainPullUp] = []domain.Exercise{
		bodyweightExercise("scapular pull", domain.DomainPullUp),
		bodyweightExercise("negative pull up", domain.DomainPullUp),
	}
	f.exercises.byDomain[domain.DomainCore] = []domain.Exercise{
		bodyweightExercise("hollow hold", domain.DomainCore),
	}

	generated, err := f.service.GenerateWorkout(context.Background(), userID, GenerateOptions{})
	require.NoError(t, err)

	names := make([]string, len(generated.Plan.Entries))
	for i, e := range generated.Plan.Entries {
		names[i] = e.Name.En
	}
	// Regular enrollments concatenate per-domain blocks, no interleaving.
	assert.Equal(t, []string{"scapular pull", "negative pull up", "hollow hold"}, names)
}

func TestGenerateWorkoutDanglingEnrollmentDegrades(t *testing.T) {
	f := newPlannerFixture()
	// Enrollment references a program the catalog no longer carries.
	userID := f.addUser(&domain.UserProfile{
		ActivePrograms: []domain.ActiveProgramEnrollment{{
			ProgramID:    primitive.NewObjectID(),
			FocusDomains: []domain.TrainingDomain{domain.DomainCore},
		}},
	})
	f.exercises.byDomain[domain.DomainCore] = []domain.Exercise{bodyweightExercise("plank hold", domain.DomainCore)}

	generated, err := f.service.GenerateWorkout(context.Background(), userID, GenerateOptions{})
	require.NoError(t, err)
	assert.Equal(t, []domain.TrainingDomain{domain.DomainCore}, generated.Plan.FocusDomains)
	require.Len(t, generated.Plan.Entries, 1)
}

func TestGenerateWorkoutEmptyPlanNotPersisted(t *testing.T) {
	f := newPlannerFixture()
	userID := f.addUser(&domain.UserProfile{})
	// No exercises in the catalog at all.

	generated, err := f.service.GenerateWorkout(context.Background(), userID, GenerateOptions{})
	require.NoError(t, err)
	assert.True(t, generated.Plan.IsEmpty())
	assert.Empty(t, f.plans.created, "empty plans must not be stored")
}

func TestGenerateWorkoutPersistsNonEmptyPlan(t *testing.T) {
	f := newPlannerFixture()
	userID := f.addUser(&domain.UserProfile{})
	f.exercises.byDomain[domain.DomainFullBody] = []domain.Exercise{bodyweightExercise("burpee", domain.DomainFullBody)}

	generated, err := f.service.GenerateWorkout(context.Background(), userID, GenerateOptions{})
	require.NoError(t, err)
	assert.False(t, generated.Plan.IsEmpty())
	require.Len(t, f.plans.created, 1)
	assert.Equal(t, userID, f.plans.created[0].UserID)
}

func TestGenerateWorkoutInfeasibleExercisesDropped(t *testing.T) {
	f := newPlannerFixture()
	userID := f.addUser(&domain.UserProfile{})

	gymOnly := bodyweightExercise("lat pulldown", domain.DomainFullBody)
	gymOnly.Methods = []domain.ExecutionMethod{
		{Location: domain.LocationGym, GearType: domain.GearFixedEquipment, GearID: "cable_station"},
	}
	f.exercises.byDomain[domain.DomainFullBody] = []domain.Exercise{
		gymOnly,
		bodyweightExercise("burpee", domain.DomainFullBody),
	}

	generated, err := f.service.GenerateWorkout(context.Background(), userID, GenerateOptions{Location: domain.LocationHome})
	require.NoError(t, err)

	for _, e := range generated.Plan.Entries {
		assert.NotEqual(t, "lat pulldown", e.Name.En)
	}
}

func TestGenerateWorkoutParkLocationDefault(t *testing.T) {
	f := newPlannerFixture()
	userID := f.addUser(&domain.UserProfile{})
	parkID := primitive.NewObjectID()
	f.parks.parks[parkID] = &domain.Park{ID: parkID, Name: "Gan Meir"}
	f.exercises.byDomain[domain.DomainFullBody] = []domain.Exercise{bodyweightExercise("burpee", domain.DomainFullBody)}

	generated, err := f.service.GenerateWorkout(context.Background(), userID, GenerateOptions{ParkID: &parkID})
	require.NoError(t, err)
	assert.Equal(t, domain.LocationPark, generated.Plan.Location)
}

func TestGetPlanByIDOwnership(t *testing.T) {
	f := newPlannerFixture()
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	planID := primitive.NewObjectID()
	f.plans.plans[planID] = &domain.WorkoutPlan{ID: planID, UserID: owner}

	plan, err := f.service.GetPlanByID(context.Background(), owner, planID)
	require.NoError(t, err)
	assert.Equal(t, planID, plan.ID)

	_, err = f.service.GetPlanByID(context.Background(), stranger, planID)
	assert.ErrorIs(t, err, ErrPlanAccessDenied)

	_, err = f.service.GetPlanByID(context.Background(), owner, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrPlanNotFound)
}
