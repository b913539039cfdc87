package job

// ExecStep is the fine-grained stage a job is at within its current phase.
// Steps are immutable tagged values; the set below is fixed at process start.
type ExecStep struct {
	id          int32
	name        string
	interrupted bool
	isError     bool
}

var (
	StepDefault            = ExecStep{id: 0, name: "DEFAULT"}
	StepAwaitingAllocation = ExecStep{id: 1, name: "AWAITING_ALLOCATION"}
	StepAllocated          = ExecStep{id: 2, name: "ALLOCATED"}
	StepScheduled          = ExecStep{id: 3, name: "SCHEDULED"}
	StepRunning            = ExecStep{id: 4, name: "RUNNING"}
	StepStopped            = ExecStep{id: 5, name: "STOPPED", interrupted: true}
	StepCompleted          = ExecStep{id: 6, name: "COMPLETED"}
	StepFailed             = ExecStep{id: -1, name: "FAILED", interrupted: true, isError: true}
)

// Id returns the stable integer identifier of the step.
func (s ExecStep) Id() int32 {
	return s.id
}

func (s ExecStep) String() string {
	return s.name
}

// IsInterrupted reports whether the step represents execution that was cut
// short before its work finished.
func (s ExecStep) IsInterrupted() bool {
	return s.interrupted
}

// IsError reports whether the step represents an error state.
func (s ExecStep) IsError() bool {
	return s.isError
}
