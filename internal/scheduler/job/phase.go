package job

// ExecPhase is the coarse stage of a job's execution lifecycle. Each phase
// knows the step a job enters it at when no more specific step is requested.
type ExecPhase struct {
	id               int32
	name             string
	active           bool
	defaultStartStep ExecStep
}

var (
	PhaseInit       = ExecPhase{id: 1, name: "INIT", active: true, defaultStartStep: StepDefault}
	PhaseModelExec  = ExecPhase{id: 2, name: "MODEL_EXEC", active: true, defaultStartStep: StepAwaitingAllocation}
	PhaseOutputExec = ExecPhase{id: 3, name: "OUTPUT_EXEC", active: true, defaultStartStep: StepAwaitingAllocation}
	PhaseClosed     = ExecPhase{id: 4, name: "CLOSED", defaultStartStep: StepCompleted}
	PhaseUnknown    = ExecPhase{id: -1, name: "UNKNOWN", defaultStartStep: StepDefault}
)

// Id returns the stable integer identifier of the phase.
func (p ExecPhase) Id() int32 {
	return p.id
}

func (p ExecPhase) String() string {
	return p.name
}

// IsActive reports whether jobs in this phase still need some action taken
// or completed.
func (p ExecPhase) IsActive() bool {
	return p.active
}

// DefaultStartStep returns the step a job starts at when entering the phase
// fresh.
func (p ExecPhase) DefaultStartStep() ExecStep {
	return p.defaultStartStep
}
