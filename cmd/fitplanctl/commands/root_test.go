package commands

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishnavi000000000000000011/Fit-Plan-Hub/internal/domain"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlansCommand(t *testing.T) {
	out, err := run(t, "plans", "--trainer", "t2")
	require.NoError(t, err)

	var plans []domain.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plans))
	require.Len(t, plans, 2)
	assert.Equal(t, "p3", plans[0].ID)
	assert.Equal(t, "p4", plans[1].ID)
}

func TestPlanCommandNotFound(t *testing.T) {
	_, err := run(t, "plan", "missing")
	assert.EqualError(t, err, `plan "missing" not found`)
}

func TestLoginCommand(t *testing.T) {
	out, err := run(t, "login", "sarah@fit.com")
	require.NoError(t, err)

	var user domain.User
	require.NoError(t, json.Unmarshal([]byte(out), &user))
	assert.Equal(t, "t2", user.ID)

	_, err = run(t, "login", "ghost@fit.com")
	assert.Error(t, err)
}

func TestSubscriptionsCommand(t *testing.T) {
	out, err := run(t, "subscriptions", "u1")
	require.NoError(t, err)

	var plans []domain.Plan
	require.NoError(t, json.Unmarshal([]byte(out), &plans))
	require.Len(t, plans, 1)
	assert.Equal(t, "30-Day Shred", plans[0].Title)
}

func TestWorkoutsAndDietCommands(t *testing.T) {
	out, err := run(t, "workouts", "p1")
	require.NoError(t, err)

	var workouts []domain.Workout
	require.NoError(t, json.Unmarshal([]byte(out), &workouts))
	require.Len(t, workouts, 2)
	assert.Equal(t, "Burpees", workouts[0].Exercise)

	out, err = run(t, "diet", "p4")
	require.NoError(t, err)

	var meals []domain.DietPlan
	require.NoError(t, json.Unmarshal([]byte(out), &meals))
	require.Len(t, meals, 2)
	assert.Equal(t, "Green smoothie", meals[0].Meal)

	_, err = run(t, "workouts", "missing")
	assert.EqualError(t, err, "plan not found")
}

func TestProgressCommand(t *testing.T) {
	out, err := run(t, "progress", "u1")
	require.NoError(t, err)

	var entries []domain.Progress
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, 81.2, entries[1].Weight)
}

func TestLatencyFlag(t *testing.T) {
	start := time.Now()
	_, err := run(t, "--latency", "progress", "u1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 300*time.Millisecond)
}
