package decisionlog

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DecisionType labels which subsystem made a decision
type DecisionType string

const (
	DecisionFault     DecisionType = "FAULT_INJECTION"
	DecisionRateLimit DecisionType = "RATE_LIMIT"
	DecisionSession   DecisionType = "SESSION"
)

type entry struct {
	ID       string         `json:"id"`
	Time     string         `json:"time"`
	Decision DecisionType   `json:"decision"`
	Message  string         `json:"message"`
	Method   string         `json:"method,omitempty"`
	Path     string         `json:"path,omitempty"`
	Fields   map[string]any `json:"fields,omitempty"`
}

var (
	mu  sync.Mutex
	out io.Writer = os.Stderr
)

// SetOutput redirects decision lines, mainly for tests
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// Log emits one JSON decision line
func Log(d DecisionType, msg string, fields map[string]any) {
	emit(entry{
		ID:       uuid.NewString(),
		Time:     time.Now().UTC().Format(time.RFC3339Nano),
		Decision: d,
		Message:  msg,
		Fields:   fields,
	})
}

// LogDecision emits a decision tied to an inbound request
func LogDecision(r *http.Request, d DecisionType, msg string, fields map[string]any) {
	e := entry{
		ID:       uuid.NewString(),
		Time:     time.Now().UTC().Format(time.RFC3339Nano),
		Decision: d,
		Message:  msg,
		Fields:   fields,
	}
	if r != nil {
		e.Method = r.Method
		e.Path = r.URL.Path
	}
	emit(e)
}

func emit(e entry) {
	line, err := json.Marshal(e)
	if err != nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	out.Write(append(line, '\n'))
}
