package job

// JobIdHasher hashes and compares jobs by id only, so that jobs with
// different field values but the same id land in the same bucket.
type JobIdHasher struct{}

func (JobIdHasher) Hash(j Job) uint32 {
	var hash uint32
	for _, c := range j.Id() {
		hash = 31*hash + uint32(c)
	}
	return hash
}

func (JobIdHasher) Equal(a, b Job) bool {
	return JobsEqual(a, b)
}

// JobsEqual reports whether a and b represent the same job entity, i.e.,
// whether their ids are equal. Values of other types are never equal to a
// job; comparing against an externally-defined job proxy requires an
// explicit adapter implementing Job.
func JobsEqual(a, b Job) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Id() == b.Id()
}

// AllocationOrderCompare defines the order in which jobs should be
// considered for allocation. Specifically, compare returns
//   - 0 if the jobs have equal job id,
//   - -1 if job should be allocated before other,
//   - +1 if other should be allocated before job.
func AllocationOrderCompare(job, other Job) int {
	// Jobs with equal id are always considered equal.
	// This ensures at most one job with a particular id can be tracked.
	if job.Id() == other.Id() {
		return 0
	}

	// Higher priority scores are allocated first.
	if job.AllocationPriority() > other.AllocationPriority() {
		return -1
	} else if job.AllocationPriority() < other.AllocationPriority() {
		return 1
	}

	// Jobs that have been waiting longer since their last update come first.
	if job.LastUpdated().Before(other.LastUpdated()) {
		return -1
	} else if other.LastUpdated().Before(job.LastUpdated()) {
		return 1
	}

	// Tie-break by job id, which must be unique.
	// This ensures there is a total order between jobs.
	if job.Id() < other.Id() {
		return -1
	}
	return 1
}
