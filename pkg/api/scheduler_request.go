package api

import (
	"github.com/hashicorp/go-multierror"

	"github.com/maasproject/maas/internal/common/maaserrors"
)

// ModelRequest describes the coupled-model workload a client wants executed.
// Parameters are opaque to the scheduler and are passed through to the job
// unmodified.
type ModelRequest struct {
	Model      string                 `json:"model"`
	Parameters map[string]interface{} `json:"parameters"`
}

// SchedulerRequest is an inbound request for compute resources to execute a
// model workload. It is the message the job core builds a RequestedJob from.
type SchedulerRequest struct {
	// Id of the user submitting the request.
	UserId string `json:"user_id"`
	// Total number of cpus needed.
	Cpus int `json:"cpus"`
	// Total amount of memory needed, in MB.
	Memory int `json:"memory"`
	// Name of the allocation paradigm to use when satisfying the request.
	// An empty or unrecognized name falls back to the scheduler default.
	AllocationParadigm string `json:"allocation_paradigm"`
	// The workload to execute.
	ModelRequest *ModelRequest `json:"model_request"`
}

// Validate checks that the request is well-formed enough to build a job from.
// All field errors are collected and returned together.
func (req *SchedulerRequest) Validate() error {
	var result *multierror.Error
	if req.Cpus < 1 {
		result = multierror.Append(result, &maaserrors.ErrInvalidArgument{
			Name:    "cpus",
			Value:   req.Cpus,
			Message: "at least one cpu must be requested",
		})
	}
	if req.Memory < 1 {
		result = multierror.Append(result, &maaserrors.ErrInvalidArgument{
			Name:    "memory",
			Value:   req.Memory,
			Message: "a positive amount of memory must be requested",
		})
	}
	if req.ModelRequest == nil {
		result = multierror.Append(result, &maaserrors.ErrInvalidArgument{
			Name:    "model_request",
			Value:   req.ModelRequest,
			Message: "a model request is required",
		})
	}
	return result.ErrorOrNil()
}
