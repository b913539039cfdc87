package job

import (
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// AllocationParadigm is the strategy used to combine per-node resource
// allocations to satisfy a job's total requirement.
type AllocationParadigm int32

const (
	// ParadigmFillNodes proceeds through nodes in some order, taking from
	// each either the largest possible allocation or one that covers the
	// outstanding need, until the total requirement is met.
	ParadigmFillNodes AllocationParadigm = iota
	// ParadigmRoundRobin obtains allocations from available nodes cyclically.
	ParadigmRoundRobin
	// ParadigmSingleNode requires all resources to come from a single node.
	ParadigmSingleNode
)

var paradigmsByName = map[string]AllocationParadigm{
	"FILL_NODES":  ParadigmFillNodes,
	"ROUND_ROBIN": ParadigmRoundRobin,
	"SINGLE_NODE": ParadigmSingleNode,
}

// DefaultAllocationParadigm is the paradigm used when a request does not name
// one, or names one the scheduler does not recognize.
func DefaultAllocationParadigm() AllocationParadigm {
	return ParadigmSingleNode
}

// ParadigmFromName returns the paradigm with the given name, ignoring
// surrounding whitespace. Matching is case-sensitive. Unrecognized and empty
// names resolve to DefaultAllocationParadigm.
func ParadigmFromName(name string) AllocationParadigm {
	trimmed := strings.TrimSpace(name)
	if paradigm, ok := paradigmsByName[trimmed]; ok {
		return paradigm
	}
	if trimmed != "" {
		log.WithField("name", name).Debug("unrecognized allocation paradigm name; using default")
	}
	return DefaultAllocationParadigm()
}

func (p AllocationParadigm) String() string {
	switch p {
	case ParadigmFillNodes:
		return "FILL_NODES"
	case ParadigmRoundRobin:
		return "ROUND_ROBIN"
	case ParadigmSingleNode:
		return "SINGLE_NODE"
	default:
		return fmt.Sprintf("AllocationParadigm(%d)", int32(p))
	}
}

// MarshalJSON encodes the paradigm as its canonical name.
func (p AllocationParadigm) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a paradigm from its name, with the same fallback
// semantics as ParadigmFromName.
func (p *AllocationParadigm) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*p = ParadigmFromName(name)
	return nil
}
