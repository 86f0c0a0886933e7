package decisionlog

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Log(DecisionFault, "command delayed", map[string]any{"delay_ms": 1500})

	var e entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
	require.NotEmpty(t, e.ID)
	require.NotEmpty(t, e.Time)
	require.Equal(t, DecisionFault, e.Decision)
	require.Equal(t, "command delayed", e.Message)
	require.EqualValues(t, 1500, e.Fields["delay_ms"])
	require.Empty(t, e.Path)
}

func TestLogDecisionCarriesRequest(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	r := httptest.NewRequest("POST", "/admin/faults/enable", nil)
	LogDecision(r, DecisionFault, "Fault injection enabled", nil)

	var e entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &e))
	require.Equal(t, "POST", e.Method)
	require.Equal(t, "/admin/faults/enable", e.Path)
}
