package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/config"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/repository/memory"
)

type fakeStorage struct {
	keys []string
	err  error
}

func (f *fakeStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, contentType string, _ time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.keys = append(f.keys, objectKey)
	return "https://storage.test/" + objectKey + "?type=" + contentType, nil
}

func newTestClient(t *testing.T) (*Client, *memory.DataStore) {
	t.Helper()
	store := memory.NewSeededDataStore()
	return NewClient(store.Repositories(), nil, Latency{}), store
}

func planIDs(plans []domain.Plan) []string {
	ids := make([]string, len(plans))
	for i, p := range plans {
		ids[i] = p.ID
	}
	return ids
}

func TestAuth_LoginKnownEmails(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	for email, id := range map[string]string{"alex@fit.com": "t1", "sarah@fit.com": "t2", "jordan@user.com": "u1"} {
		user, err := client.Auth.Login(ctx, email)
		require.NoError(t, err, email)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, email, user.Email)
	}
}

func TestAuth_LoginUnknownEmail(t *testing.T) {
	client, _ := newTestClient(t)

	user, err := client.Auth.Login(context.Background(), "ghost@fit.com")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuth_SignupThenLogin(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	user, err := client.Auth.Signup(ctx, "Casey Jones", "casey@fit.com", domain.RoleTrainer)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleTrainer, user.Role)
	assert.Equal(t, "Casey Jones", user.Name)
	assert.Empty(t, user.Following)
	assert.NotNil(t, user.Following)
	assert.Equal(t, "https://api.dicebear.com/7.x/avataaars/svg?seed=Casey+Jones", user.Avatar)

	found, err := client.Auth.Login(ctx, "casey@fit.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestAuth_SignupGeneratesDistinctIDs(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	seen := map[string]bool{"t1": true, "t2": true, "u1": true}
	for i := 0; i < 200; i++ {
		user, err := client.Auth.Signup(ctx, "User", "same@fit.com", domain.RoleUser)
		require.NoError(t, err)
		require.False(t, seen[user.ID], "duplicate id %s", user.ID)
		seen[user.ID] = true
	}
}

func TestAuth_SignupAcceptsDuplicateEmail(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	user, err := client.Auth.Signup(ctx, "Impostor", "alex@fit.com", domain.RoleUser)
	require.NoError(t, err)

	// Login keeps resolving to the first user registered with the email.
	found, err := client.Auth.Login(ctx, "alex@fit.com")
	require.NoError(t, err)
	assert.Equal(t, "t1", found.ID)
	assert.NotEqual(t, user.ID, found.ID)
}

func TestAuth_LogoutAndMe(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	assert.NoError(t, client.Auth.Logout(ctx))

	me, err := client.Auth.Me(ctx)
	assert.NoError(t, err)
	assert.Nil(t, me)
}

func TestPlans_GetAllAndGetByID(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	plans, err := client.Plans.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, planIDs(plans))

	plan, err := client.Plans.GetByID(ctx, "p3")
	require.NoError(t, err)
	assert.Equal(t, "Morning Flow Yoga", plan.Title)

	missing, err := client.Plans.GetByID(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPlans_CreateCopiesTrainerName(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	plan, err := client.Plans.Create(ctx, domain.PlanInput{
		TrainerID:   "t1",
		Title:       "X",
		Description: "d",
		Price:       10,
		Duration:    5,
		Image:       "img",
		Category:    domain.CategoryCardio,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, "Alex Rivera", plan.TrainerName)
	assert.Equal(t, domain.CategoryCardio, plan.Category)

	byTrainer, err := client.Plans.GetByTrainer(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", plan.ID}, planIDs(byTrainer))
}

func TestPlans_CreateUnknownTrainer(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	plan, err := client.Plans.Create(ctx, domain.PlanInput{TrainerID: "unknown", Title: "X", Price: 10, Duration: 5, Category: domain.CategoryCardio})
	assert.Nil(t, plan)
	assert.ErrorIs(t, err, ErrTrainerNotFound)

	plans, err := client.Plans.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, plans, 4)
}

func TestPlans_UpdateNotImplemented(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.Plans.Update(context.Background(), "p1", map[string]interface{}{"title": "New"})
	assert.ErrorIs(t, err, ErrNotImplemented)
}

func TestPlans_DeleteDropsPlanFromSubscriptions(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Users.Subscribe(ctx, "u1", "p2"))
	require.NoError(t, client.Plans.Delete(ctx, "p1"))

	plans, err := client.Plans.GetAll(ctx)
	require.NoError(t, err)
	assert.NotContains(t, planIDs(plans), "p1")

	subs, err := client.Users.GetSubscriptions(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p2"}, planIDs(subs))
}

func TestPlans_CreateImageUpload(t *testing.T) {
	store := memory.NewSeededDataStore()
	fs := &fakeStorage{}
	client := NewClient(store.Repositories(), fs, Latency{})

	upload, err := client.Plans.CreateImageUpload(context.Background(), "t2", "cover.JPG", "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(upload.ObjectKey, "plans/t2/"), upload.ObjectKey)
	assert.True(t, strings.HasSuffix(upload.ObjectKey, ".JPG"), upload.ObjectKey)
	assert.Contains(t, upload.UploadURL, upload.ObjectKey)
	assert.True(t, upload.ExpiresAt.After(time.Now()))
	assert.Equal(t, []string{upload.ObjectKey}, fs.keys)
}

func TestPlans_CreateImageUploadErrors(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	_, err := client.Plans.CreateImageUpload(ctx, "t1", "a.png", "image/png")
	assert.ErrorIs(t, err, ErrStorageUnavailable)

	store := memory.NewSeededDataStore()
	boom := errors.New("boom")
	withStorage := NewClient(store.Repositories(), &fakeStorage{err: boom}, Latency{})

	_, err = withStorage.Plans.CreateImageUpload(ctx, "nobody", "a.png", "image/png")
	assert.ErrorIs(t, err, ErrTrainerNotFound)

	_, err = withStorage.Plans.CreateImageUpload(ctx, "t1", "a.png", "image/png")
	assert.ErrorIs(t, err, boom)
}

func TestUsers_FollowAndUnfollowAreIdempotent(t *testing.T) {
	client, store := newTestClient(t)
	ctx := context.Background()

	// u1 already follows t1; following again must not unfollow.
	require.NoError(t, client.Users.Follow(ctx, "u1", "t1"))
	u, _ := store.GetUserByID("u1")
	assert.Equal(t, []string{"t1"}, u.Following)

	require.NoError(t, client.Users.Follow(ctx, "u1", "t2"))
	require.NoError(t, client.Users.Unfollow(ctx, "u1", "t1"))
	require.NoError(t, client.Users.Unfollow(ctx, "u1", "t1"))
	u, _ = store.GetUserByID("u1")
	assert.Equal(t, []string{"t2"}, u.Following)
}

func TestUsers_FollowUnknownUserIsSilent(t *testing.T) {
	client, _ := newTestClient(t)

	assert.NoError(t, client.Users.Follow(context.Background(), "ghost", "t1"))
	assert.NoError(t, client.Users.Unfollow(context.Background(), "ghost", "t1"))
}

func TestUsers_SubscribeTwiceKeepsBoth(t *testing.T) {
	client, store := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Users.Subscribe(ctx, "u1", "p4"))
	subs, err := client.Users.GetSubscriptions(ctx, "u1")
	require.NoError(t, err)
	assert.Contains(t, planIDs(subs), "p4")

	require.NoError(t, client.Users.Subscribe(ctx, "u1", "p4"))
	count := 0
	for _, s := range store.UserSubscriptionRecords("u1") {
		if s.PlanID == "p4" {
			count++
		}
	}
	assert.Equal(t, 2, count)
}

func TestUsers_SubscribeUnknownPlanIsInvisible(t *testing.T) {
	client, store := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Users.Subscribe(ctx, "u1", "ghost-plan"))

	assert.True(t, store.HasSubscription("u1", "ghost-plan"))
	subs, err := client.Users.GetSubscriptions(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, planIDs(subs))
}

func TestLatency_CancelledContextDoesNotMutate(t *testing.T) {
	store := memory.NewSeededDataStore()
	client := NewClient(store.Repositories(), nil, Latency{Subscribe: time.Hour})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := client.Users.Subscribe(ctx, "u1", "p2")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.False(t, store.HasSubscription("u1", "p2"))
}

func TestLatency_Waits(t *testing.T) {
	store := memory.NewSeededDataStore()
	client := NewClient(store.Repositories(), nil, Latency{GetPlans: 20 * time.Millisecond})

	start := time.Now()
	_, err := client.Plans.GetAll(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestPlans_CreateRejectsInvalidInput(t *testing.T) {
	client, store := newTestClient(t)
	ctx := context.Background()

	valid := domain.PlanInput{TrainerID: "t1", Title: "X", Price: 0, Duration: 1, Category: domain.CategoryYoga}
	cases := map[string]func(in *domain.PlanInput){
		"unknown category": func(in *domain.PlanInput) { in.Category = "pilates" },
		"negative price":   func(in *domain.PlanInput) { in.Price = -1 },
		"zero duration":    func(in *domain.PlanInput) { in.Duration = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := valid
			mutate(&in)
			plan, err := client.Plans.Create(ctx, in)
			assert.Nil(t, plan)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
	assert.Len(t, store.GetPlans(), 4)

	// Free, one-day plans are fine
	plan, err := client.Plans.Create(ctx, valid)
	require.NoError(t, err)
	assert.Equal(t, 0.0, plan.Price)
}

func TestPrograms_Workouts(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	workouts, err := client.Programs.GetWorkouts(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, workouts, 2)
	assert.Equal(t, "Burpees", workouts[0].Exercise)

	added, err := client.Programs.AddWorkout(ctx, domain.WorkoutInput{PlanID: "p1", Exercise: "Jump Rope", Sets: 3, Reps: 100})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.False(t, added.CreatedAt.IsZero())

	workouts, err = client.Programs.GetWorkouts(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, workouts, 3)
	assert.Equal(t, added.ID, workouts[2].ID)

	empty, err := client.Programs.GetWorkouts(ctx, "p4")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestPrograms_WorkoutErrors(t *testing.T) {
	client, store := newTestClient(t)
	ctx := context.Background()

	_, err := client.Programs.AddWorkout(ctx, domain.WorkoutInput{PlanID: "ghost", Exercise: "Squat", Sets: 3, Reps: 10})
	assert.ErrorIs(t, err, ErrPlanNotFound)

	_, err = client.Programs.AddWorkout(ctx, domain.WorkoutInput{PlanID: "p1", Exercise: "", Sets: 3, Reps: 10})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = client.Programs.AddWorkout(ctx, domain.WorkoutInput{PlanID: "p1", Exercise: "Squat", Sets: 0, Reps: 10})
	assert.ErrorIs(t, err, ErrValidationFailed)

	assert.Len(t, store.GetPlanWorkouts("p1"), 2)

	_, err = client.Programs.GetWorkouts(ctx, "ghost")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}

func TestPrograms_DeletedPlanHidesItsProgram(t *testing.T) {
	client, store := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.Plans.Delete(ctx, "p1"))

	_, err := client.Programs.GetWorkouts(ctx, "p1")
	assert.ErrorIs(t, err, ErrPlanNotFound)
	_, err = client.Programs.GetDiet(ctx, "p1")
	assert.ErrorIs(t, err, ErrPlanNotFound)

	// Stored entries are left alone
	assert.Len(t, store.GetPlanWorkouts("p1"), 2)
}

func TestPrograms_Diet(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	diet, err := client.Programs.GetDiet(ctx, "p4")
	require.NoError(t, err)
	require.Len(t, diet, 2)
	assert.Equal(t, "Green smoothie", diet[0].Meal)

	added, err := client.Programs.AddDietPlan(ctx, domain.DietPlanInput{PlanID: "p4", Meal: "Water", Calories: 0})
	require.NoError(t, err)
	assert.Equal(t, 0, added.Calories)

	_, err = client.Programs.AddDietPlan(ctx, domain.DietPlanInput{PlanID: "p4", Meal: "Cake", Calories: -5})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = client.Programs.AddDietPlan(ctx, domain.DietPlanInput{PlanID: "ghost", Meal: "Soup", Calories: 200})
	assert.ErrorIs(t, err, ErrPlanNotFound)

	diet, err = client.Programs.GetDiet(ctx, "p4")
	require.NoError(t, err)
	assert.Len(t, diet, 3)
}

func TestProgress_Record(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	entries, err := client.Progress.GetProgress(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	measured := time.Date(2024, time.February, 3, 18, 45, 0, 0, time.UTC)
	entry, err := client.Progress.Record(ctx, domain.ProgressInput{UserID: "u1", Weight: 80.4, BMI: 24.8, Date: measured})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 3, 0, 0, 0, 0, time.UTC), entry.Date)

	entries, err = client.Progress.GetProgress(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, entry.ID, entries[2].ID)
}

func TestProgress_RecordDefaultsToToday(t *testing.T) {
	store := memory.NewSeededDataStore()
	svc := NewProgressService(store.Users(), store.Progress(), Latency{}).(*progressService)
	svc.now = func() time.Time { return time.Date(2024, time.May, 9, 23, 10, 0, 0, time.UTC) }

	entry, err := svc.Record(context.Background(), domain.ProgressInput{UserID: "t1", Weight: 70})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 9, 0, 0, 0, 0, time.UTC), entry.Date)
}

func TestProgress_RecordErrors(t *testing.T) {
	client, store := newTestClient(t)
	ctx := context.Background()

	_, err := client.Progress.Record(ctx, domain.ProgressInput{UserID: "nobody", Weight: 70})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = client.Progress.Record(ctx, domain.ProgressInput{UserID: "u1", Weight: 0})
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = client.Progress.Record(ctx, domain.ProgressInput{UserID: "u1", Weight: 70, BMI: -1})
	assert.ErrorIs(t, err, ErrValidationFailed)

	assert.Len(t, store.GetUserProgress("u1"), 2)
	assert.Len(t, store.GetUserProgress("nobody"), 0)
}

func TestLatency_DefaultsMatchConfig(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, DefaultLatency(), LatencyFromConfig(cfg.Latency))
}
