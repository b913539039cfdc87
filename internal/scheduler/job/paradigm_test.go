package job

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParadigmFromName(t *testing.T) {
	tests := map[string]struct {
		name     string
		expected AllocationParadigm
	}{
		"fill nodes":                 {name: "FILL_NODES", expected: ParadigmFillNodes},
		"round robin":                {name: "ROUND_ROBIN", expected: ParadigmRoundRobin},
		"single node":                {name: "SINGLE_NODE", expected: ParadigmSingleNode},
		"surrounding space":          {name: "  ROUND_ROBIN\t", expected: ParadigmRoundRobin},
		"empty name":                 {name: "", expected: ParadigmSingleNode},
		"unrecognized name":          {name: "bogus", expected: ParadigmSingleNode},
		"matching is case-sensitive": {name: "round_robin", expected: ParadigmSingleNode},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParadigmFromName(tc.name))
		})
	}
}

func TestDefaultAllocationParadigm(t *testing.T) {
	assert.Equal(t, ParadigmSingleNode, DefaultAllocationParadigm())
}

func TestParadigmJson(t *testing.T) {
	data, err := json.Marshal(ParadigmFillNodes)
	require.NoError(t, err)
	assert.Equal(t, `"FILL_NODES"`, string(data))

	var paradigm AllocationParadigm
	require.NoError(t, json.Unmarshal(data, &paradigm))
	assert.Equal(t, ParadigmFillNodes, paradigm)

	require.NoError(t, json.Unmarshal([]byte(`"nonsense"`), &paradigm))
	assert.Equal(t, ParadigmSingleNode, paradigm)
}
