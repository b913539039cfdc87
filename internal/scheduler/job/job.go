package job

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"

	"github.com/maasproject/maas/internal/common/maaserrors"
	"github.com/maasproject/maas/internal/scheduler/resources"
)

// KeyPair is a shared credential attached to a job so the nodes executing it
// can communicate. Key pairs are issued and destroyed by an external service;
// jobs only hold a reference.
type KeyPair interface {
	// Fingerprint uniquely identifies the key pair.
	Fingerprint() string
}

// Job is the scheduler's view of a unit of schedulable work requesting
// compute resources. Two jobs represent the same entity iff their ids are
// equal; see JobsEqual.
//
// Implementations are not safe for concurrent use. The surrounding manager
// must serialize all mutations to a given job.
type Job interface {
	// Id returns the unique id assigned to this job, or the empty string if
	// none has been assigned yet.
	Id() string
	// AllocationParadigm returns the paradigm that was used, or should be
	// used, to make allocations for this job.
	AllocationParadigm() AllocationParadigm
	// AllocationPriority returns a score for how the job should be
	// prioritized with respect to allocation. Jobs with higher scores are
	// allocated first.
	AllocationPriority() int32
	// Allocations returns the resource allocations granted to this job so
	// far, in the order they were added, or nil if none have been granted.
	Allocations() []*resources.Allocation
	// CpuCount returns the number of cpus needed for this job.
	CpuCount() int
	// MemorySize returns the amount of memory needed for this job, in MB.
	MemorySize() int
	// Parameters returns the configured model parameters for this job.
	// They are opaque to the scheduler.
	Parameters() map[string]interface{}
	// KeyPair returns the shared key pair for this job, or nil if none has
	// been attached.
	KeyPair() KeyPair
	// LastUpdated returns the time of the last mutation of this job.
	LastUpdated() time.Time
	// Status returns the current status of this job.
	Status() Status
	// StatusPhase returns the phase of the current status.
	StatusPhase() ExecPhase
	// StatusStep returns the step of the current status.
	StatusStep() ExecStep

	// SetStatus moves the job to the given status.
	SetStatus(status Status)
	// SetStatusPhase moves the job into the given phase at the phase's
	// default start step.
	SetStatusPhase(phase ExecPhase)
	// SetStatusStep changes the step within the current phase. If the
	// resulting (phase, step) pair is not a known status the job ends up at
	// StatusUnknown.
	SetStatusStep(step ExecStep)

	// Equals reports whether other represents the same job entity, i.e.,
	// whether the ids are equal.
	Equals(other Job) bool
}

// SchedulerJob is the concrete mutable job record used by the scheduler.
type SchedulerJob struct {
	// Unique id of the job, assigned at most once by the job manager.
	// Nil until assigned.
	id *uuid.UUID
	// Number of cpus needed.
	cpuCount int
	// Amount of memory needed, in MB.
	memorySize int
	// Configured model parameters, opaque to the scheduler.
	parameters         map[string]interface{}
	allocationParadigm AllocationParadigm
	allocationPriority int32
	// Resource allocations granted so far, in the order they were added.
	// Nil until the first allocation is added.
	allocations []*resources.Allocation
	// Shared key pair, not owned by the job. Nil until attached.
	keyPair KeyPair
	status  Status
	// Time of the last mutation of this record.
	lastUpdated time.Time
}

var _ Job = (*SchedulerJob)(nil)

// NewSchedulerJob creates a job at StatusCreated with no id assigned.
// The paradigm name is resolved via ParadigmFromName, so an empty or
// unrecognized name yields the default paradigm.
func NewSchedulerJob(
	cpuCount int,
	memorySize int,
	parameters map[string]interface{},
	allocationParadigmName string,
	allocationPriority int32,
) *SchedulerJob {
	return &SchedulerJob{
		cpuCount:           cpuCount,
		memorySize:         memorySize,
		parameters:         parameters,
		allocationParadigm: ParadigmFromName(allocationParadigmName),
		allocationPriority: allocationPriority,
		status:             StatusCreated,
		lastUpdated:        time.Now(),
	}
}

func (job *SchedulerJob) refreshLastUpdated() {
	job.lastUpdated = time.Now()
}

// Id returns the canonical string form of the job's id, or the empty string
// if no id has been assigned yet.
func (job *SchedulerJob) Id() string {
	if job.id == nil {
		return ""
	}
	return job.id.String()
}

// Uuid returns the structured id of the job, or nil if none has been
// assigned yet.
func (job *SchedulerJob) Uuid() *uuid.UUID {
	return job.id
}

// SetUuid assigns the job's unique id. A job id can be assigned only once.
func (job *SchedulerJob) SetUuid(id uuid.UUID) error {
	if job.id != nil {
		return errors.WithStack(&maaserrors.ErrInvalidArgument{
			Name:    "jobId",
			Value:   id.String(),
			Message: "job id has already been assigned",
		})
	}
	job.id = &id
	job.refreshLastUpdated()
	return nil
}

// SetId parses id and assigns it as the job's unique id. It fails with
// ErrInvalidJobId if the string is not a valid uuid, and like SetUuid it
// fails if an id has already been assigned.
func (job *SchedulerJob) SetId(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return errors.WithStack(&maaserrors.ErrInvalidJobId{Value: id, Message: err.Error()})
	}
	return job.SetUuid(parsed)
}

func (job *SchedulerJob) AllocationParadigm() AllocationParadigm {
	return job.allocationParadigm
}

func (job *SchedulerJob) AllocationPriority() int32 {
	return job.allocationPriority
}

func (job *SchedulerJob) SetAllocationPriority(priority int32) {
	job.allocationPriority = priority
	job.refreshLastUpdated()
}

// Allocations returns the allocations granted to the job so far, or nil if
// it has none. The returned slice is a copy; the allocation list itself is
// owned exclusively by the job.
func (job *SchedulerJob) Allocations() []*resources.Allocation {
	return slices.Clone(job.allocations)
}

// SetAllocations replaces the job's allocation list.
func (job *SchedulerJob) SetAllocations(allocations []*resources.Allocation) {
	job.allocations = allocations
	job.refreshLastUpdated()
}

// AddAllocation appends an allocation to the job's allocation list,
// initializing the list if the job had none.
func (job *SchedulerJob) AddAllocation(allocation *resources.Allocation) {
	job.allocations = append(job.allocations, allocation)
	job.refreshLastUpdated()
}

func (job *SchedulerJob) CpuCount() int {
	return job.cpuCount
}

func (job *SchedulerJob) MemorySize() int {
	return job.memorySize
}

func (job *SchedulerJob) Parameters() map[string]interface{} {
	return job.parameters
}

func (job *SchedulerJob) KeyPair() KeyPair {
	return job.keyPair
}

// SetKeyPair attaches a shared key pair to the job. The job does not take
// ownership of it.
func (job *SchedulerJob) SetKeyPair(keyPair KeyPair) {
	job.keyPair = keyPair
	job.refreshLastUpdated()
}

func (job *SchedulerJob) LastUpdated() time.Time {
	return job.lastUpdated
}

func (job *SchedulerJob) Status() Status {
	return job.status
}

func (job *SchedulerJob) StatusPhase() ExecPhase {
	return job.status.Phase()
}

func (job *SchedulerJob) StatusStep() ExecStep {
	return job.status.Step()
}

// SetStatus moves the job to the given status.
func (job *SchedulerJob) SetStatus(status Status) {
	job.status = status
	job.refreshLastUpdated()
}

// SetStatusPhase moves the job into the given phase at the phase's default
// start step, resolving the resulting status via the status table.
func (job *SchedulerJob) SetStatusPhase(phase ExecPhase) {
	job.SetStatus(StatusFromPhaseAndStep(phase, phase.DefaultStartStep()))
}

// SetStatusStep changes the step within the job's current phase, resolving
// the resulting status via the status table. An unmapped (phase, step) pair
// leaves the job at StatusUnknown.
func (job *SchedulerJob) SetStatusStep(step ExecStep) {
	job.SetStatus(StatusFromPhaseAndStep(job.status.Phase(), step))
}

// Equals reports whether other represents the same job entity as this job,
// i.e., whether the ids are equal.
func (job *SchedulerJob) Equals(other Job) bool {
	if other == nil {
		return false
	}
	return job.Id() == other.Id()
}
