package resources

import "fmt"

// Allocation represents a grant of cpus and memory made against a specific
// resource node to (partially) satisfy a job's total requirement.
// Allocations are created by the resource inventory and are treated as opaque
// by the job core; jobs only accumulate them and signal, via their status,
// when the inventory should take them back.
type Allocation struct {
	// Unique id of the node the resources were granted from.
	NodeId string
	// Hostname of the granting node.
	Hostname string
	// Number of cpus granted.
	Cpus int
	// Amount of memory granted, in MB.
	Memory int
}

func (a *Allocation) String() string {
	return fmt.Sprintf("%d cpus and %d MB on node %s", a.Cpus, a.Memory, a.NodeId)
}
