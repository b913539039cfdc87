package job

import (
	log "github.com/sirupsen/logrus"

	"github.com/maasproject/maas/pkg/api"
)

// RequestedJob is a job created from a client scheduling request. It retains
// the originating request so the submission can be audited or replayed.
type RequestedJob struct {
	*SchedulerJob
	originatingRequest *api.SchedulerRequest
}

var _ Job = (*RequestedJob)(nil)

// NewRequestedJob builds a job from an inbound scheduling request. The
// request is validated first; no job is created from an invalid request.
func NewRequestedJob(request *api.SchedulerRequest) (*RequestedJob, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"user":   request.UserId,
		"cpus":   request.Cpus,
		"memory": request.Memory,
	}).Info("creating job from scheduling request")
	return &RequestedJob{
		SchedulerJob: NewSchedulerJob(
			request.Cpus,
			request.Memory,
			request.ModelRequest.Parameters,
			request.AllocationParadigm,
			0,
		),
		originatingRequest: request,
	}, nil
}

// OriginatingRequest returns the request this job was created from.
func (job *RequestedJob) OriginatingRequest() *api.SchedulerRequest {
	return job.originatingRequest
}
