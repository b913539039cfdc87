package job

import (
	"encoding/json"
	"strings"

	"golang.org/x/exp/slices"
)

// Status ties a (phase, step) pair to a stable integer id and an
// allocation-release policy.
//
// Status ids are a wire-level contract: external systems persist and transmit
// them, so values must never be renumbered or reassigned. Negative ids are
// failure states.
type Status struct {
	id                 int32
	name               string
	phase              ExecPhase
	step               ExecStep
	releaseAllocations bool
}

// TODO: confirm that allocations should really be kept for stopped jobs and
// carried over from a completed model exec phase into the output phase; the
// release flag is set per status below so either decision can be changed
// independently.
var (
	StatusCreated                      = Status{id: 0, name: "CREATED", phase: PhaseInit, step: StepDefault}
	StatusModelExecAwaitingAllocation  = Status{id: 1, name: "MODEL_EXEC_AWAITING_ALLOCATION", phase: PhaseModelExec, step: StepAwaitingAllocation}
	StatusModelExecAllocated           = Status{id: 2, name: "MODEL_EXEC_ALLOCATED", phase: PhaseModelExec, step: StepAllocated}
	StatusModelExecScheduled           = Status{id: 3, name: "MODEL_EXEC_SCHEDULED", phase: PhaseModelExec, step: StepScheduled}
	StatusModelExecRunning             = Status{id: 4, name: "MODEL_EXEC_RUNNING", phase: PhaseModelExec, step: StepRunning}
	StatusModelExecStopped             = Status{id: 5, name: "MODEL_EXEC_STOPPED", phase: PhaseModelExec, step: StepStopped}
	StatusModelExecCompleted           = Status{id: 6, name: "MODEL_EXEC_COMPLETED", phase: PhaseModelExec, step: StepCompleted}
	StatusOutputExecRunning            = Status{id: 7, name: "OUTPUT_EXEC_RUNNING", phase: PhaseOutputExec, step: StepRunning}
	StatusOutputExecStopped            = Status{id: 8, name: "OUTPUT_EXEC_STOPPED", phase: PhaseOutputExec, step: StepStopped}
	StatusOutputExecCompleted          = Status{id: 9, name: "OUTPUT_EXEC_COMPLETED", phase: PhaseOutputExec, step: StepCompleted, releaseAllocations: true}
	StatusClosed                       = Status{id: 10, name: "CLOSED", phase: PhaseClosed, step: StepCompleted, releaseAllocations: true}
	StatusOutputExecScheduled          = Status{id: 11, name: "OUTPUT_EXEC_SCHEDULED", phase: PhaseOutputExec, step: StepScheduled}
	StatusOutputExecAllocated          = Status{id: 12, name: "OUTPUT_EXEC_ALLOCATED", phase: PhaseOutputExec, step: StepAllocated}
	StatusOutputExecAwaitingAllocation = Status{id: 13, name: "OUTPUT_EXEC_AWAITING_ALLOCATION", phase: PhaseOutputExec, step: StepAwaitingAllocation}
	StatusModelExecFailed              = Status{id: -1, name: "MODEL_EXEC_FAILED", phase: PhaseModelExec, step: StepFailed, releaseAllocations: true}
	StatusOutputExecFailed             = Status{id: -2, name: "OUTPUT_EXEC_FAILED", phase: PhaseOutputExec, step: StepFailed, releaseAllocations: true}
	StatusClosedFailure                = Status{id: -3, name: "CLOSED_FAILURE", phase: PhaseClosed, step: StepFailed, releaseAllocations: true}
	StatusUnknown                      = Status{id: -10, name: "UNKNOWN", phase: PhaseUnknown, step: StepDefault}
)

// statusTable is the closed set of statuses. Every (phase, step) pair either
// maps to exactly one entry here or resolves to StatusUnknown.
var statusTable = []Status{
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
	StatusClosed,
	StatusOutputExecScheduled,
	StatusOutputExecAllocated,
	StatusOutputExecAwaitingAllocation,
	StatusModelExecFailed,
	StatusOutputExecFailed,
	StatusClosedFailure,
	StatusUnknown,
}

type phaseStep struct {
	phase ExecPhase
	step  ExecStep
}

var (
	statusesByName      = map[string]Status{}
	statusesByPhaseStep = map[phaseStep]Status{}
	activeStatuses      []Status
)

func init() {
	for _, status := range statusTable {
		statusesByName[strings.ToLower(status.name)] = status
		statusesByPhaseStep[phaseStep{phase: status.phase, step: status.step}] = status
		if status.phase.IsActive() {
			activeStatuses = append(activeStatuses, status)
		}
	}
}

// Statuses returns every status, in table order.
func Statuses() []Status {
	return slices.Clone(statusTable)
}

// ActiveStatuses returns the statuses indicating a job still needs some
// action taken or completed, i.e., those in an active phase, in table order.
func ActiveStatuses() []Status {
	return slices.Clone(activeStatuses)
}

// StatusFromName returns the status with the given name, ignoring case and
// surrounding whitespace, or StatusUnknown if the name is not recognized.
func StatusFromName(name string) Status {
	if status, ok := statusesByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return status
	}
	return StatusUnknown
}

// StatusFromPhaseAndStep returns the status for the given (phase, step) pair,
// or StatusUnknown if the pair is not in the status table.
func StatusFromPhaseAndStep(phase ExecPhase, step ExecStep) Status {
	if status, ok := statusesByPhaseStep[phaseStep{phase: phase, step: step}]; ok {
		return status
	}
	return StatusUnknown
}

// Id returns the stable integer identifier of the status.
func (s Status) Id() int32 {
	return s.id
}

func (s Status) String() string {
	return s.name
}

// Phase returns the execution phase component of the status.
func (s Status) Phase() ExecPhase {
	return s.phase
}

// Step returns the execution step component of the status.
func (s Status) Step() ExecStep {
	return s.step
}

// IsActive reports whether the status belongs to an active phase.
func (s Status) IsActive() bool {
	return s.phase.IsActive()
}

// IsInterrupted reports whether the status step represents interrupted
// execution.
func (s Status) IsInterrupted() bool {
	return s.step.IsInterrupted()
}

// IsError reports whether the status step represents an error state.
func (s Status) IsError() bool {
	return s.step.IsError()
}

// ShouldReleaseAllocations reports whether a job at this status no longer
// needs its resource allocations. Releasing them is the responsibility of the
// resource pool, not of the job itself.
func (s Status) ShouldReleaseAllocations() bool {
	return s.releaseAllocations
}

// MarshalJSON encodes the status as its canonical name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.name)
}

// UnmarshalJSON decodes a status from its name, with the same fallback
// semantics as StatusFromName.
func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*s = StatusFromName(name)
	return nil
}
