package job

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allPhases = []ExecPhase{PhaseInit, PhaseModelExec, PhaseOutputExec, PhaseClosed, PhaseUnknown}

var allSteps = []ExecStep{
	StepDefault,
	StepAwaitingAllocation,
	StepAllocated,
	StepScheduled,
	StepRunning,
	StepStopped,
	StepCompleted,
	StepFailed,
}

func TestStatusIds(t *testing.T) {
	expected := map[string]int32{
		"CREATED":                         0,
		"MODEL_EXEC_AWAITING_ALLOCATION":  1,
		"MODEL_EXEC_ALLOCATED":            2,
		"MODEL_EXEC_SCHEDULED":            3,
		"MODEL_EXEC_RUNNING":              4,
		"MODEL_EXEC_STOPPED":              5,
		"MODEL_EXEC_COMPLETED":            6,
		"OUTPUT_EXEC_RUNNING":             7,
		"OUTPUT_EXEC_STOPPED":             8,
		"OUTPUT_EXEC_COMPLETED":           9,
		"CLOSED":                          10,
		"OUTPUT_EXEC_SCHEDULED":           11,
		"OUTPUT_EXEC_ALLOCATED":           12,
		"OUTPUT_EXEC_AWAITING_ALLOCATION": 13,
		"MODEL_EXEC_FAILED":               -1,
		"OUTPUT_EXEC_FAILED":              -2,
		"CLOSED_FAILURE":                  -3,
		"UNKNOWN":                         -10,
	}
	statuses := Statuses()
	require.Len(t, statuses, len(expected))
	for _, status := range statuses {
		id, ok := expected[status.String()]
		require.True(t, ok, "unexpected status %s", status)
		assert.Equal(t, id, status.Id(), "wrong id for status %s", status)
	}
}

func TestStatusFromName(t *testing.T) {
	for _, status := range Statuses() {
		assert.Equal(t, status, StatusFromName(status.String()))
		assert.Equal(t, status, StatusFromName(strings.ToLower(status.String())))
		assert.Equal(t, status, StatusFromName("  "+status.String()+"\t"))
	}
	assert.Equal(t, StatusModelExecRunning, StatusFromName("Model_Exec_Running"))
	assert.Equal(t, StatusUnknown, StatusFromName(""))
	assert.Equal(t, StatusUnknown, StatusFromName("bogus"))
}

func TestStatusFromPhaseAndStep(t *testing.T) {
	mapped := map[phaseStep]Status{}
	for _, status := range Statuses() {
		mapped[phaseStep{phase: status.Phase(), step: status.Step()}] = status
	}
	for _, phase := range allPhases {
		for _, step := range allSteps {
			status := StatusFromPhaseAndStep(phase, step)
			if expected, ok := mapped[phaseStep{phase: phase, step: step}]; ok {
				assert.Equal(t, expected, status)
			} else {
				// Pairs of individually valid phases and steps that are
				// never combined in the table resolve to unknown.
				assert.Equal(t, StatusUnknown, status, "pair (%s, %s)", phase, step)
			}
		}
	}
}

func TestStatusFromPhaseAndStepNeverPaired(t *testing.T) {
	assert.Equal(t, StatusUnknown, StatusFromPhaseAndStep(PhaseInit, StepRunning))
	assert.Equal(t, StatusUnknown, StatusFromPhaseAndStep(PhaseClosed, StepRunning))
	assert.Equal(t, StatusUnknown, StatusFromPhaseAndStep(PhaseUnknown, StepFailed))
}

func TestActiveStatuses(t *testing.T) {
	expected := []Status{
		StatusCreated,
		StatusModelExecAwaitingAllocation,
		StatusModelExecAllocated,
		StatusModelExecScheduled,
		StatusModelExecRunning,
		StatusModelExecStopped,
		StatusModelExecCompleted,
		StatusOutputExecRunning,
		StatusOutputExecStopped,
		StatusOutputExecCompleted,
		StatusOutputExecScheduled,
		StatusOutputExecAllocated,
		StatusOutputExecAwaitingAllocation,
		StatusModelExecFailed,
		StatusOutputExecFailed,
	}
	actives := ActiveStatuses()
	assert.Equal(t, expected, actives)
	assert.NotContains(t, actives, StatusClosed)
	assert.NotContains(t, actives, StatusClosedFailure)
	assert.NotContains(t, actives, StatusUnknown)
}

func TestStatusFlags(t *testing.T) {
	released := map[Status]bool{
		StatusOutputExecCompleted: true,
		StatusClosed:              true,
		StatusModelExecFailed:     true,
		StatusOutputExecFailed:    true,
		StatusClosedFailure:       true,
	}
	for _, status := range Statuses() {
		assert.Equal(t, released[status], status.ShouldReleaseAllocations(), "release flag for %s", status)
		assert.Equal(t, status.Step() == StepStopped || status.Step() == StepFailed, status.IsInterrupted())
		assert.Equal(t, status.Step() == StepFailed, status.IsError())
	}
}

func TestPhaseDefaultStartSteps(t *testing.T) {
	assert.Equal(t, StepDefault, PhaseInit.DefaultStartStep())
	assert.Equal(t, StepAwaitingAllocation, PhaseModelExec.DefaultStartStep())
	assert.Equal(t, StepAwaitingAllocation, PhaseOutputExec.DefaultStartStep())
	assert.Equal(t, StepCompleted, PhaseClosed.DefaultStartStep())
	assert.Equal(t, StepDefault, PhaseUnknown.DefaultStartStep())
}

func TestStatusJson(t *testing.T) {
	data, err := json.Marshal(StatusModelExecRunning)
	require.NoError(t, err)
	assert.Equal(t, `"MODEL_EXEC_RUNNING"`, string(data))

	var status Status
	require.NoError(t, json.Unmarshal(data, &status))
	assert.Equal(t, StatusModelExecRunning, status)

	require.NoError(t, json.Unmarshal([]byte(`"not-a-status"`), &status))
	assert.Equal(t, StatusUnknown, status)
}
