package duneapix

import "golang.org/x/exp/slices"

// ExecutionState is the lifecycle state the API reports for an execution.
type ExecutionState string

const (
	StatePending          ExecutionState = "QUERY_STATE_PENDING"
	StateExecuting        ExecutionState = "QUERY_STATE_EXECUTING"
	StateFailed           ExecutionState = "QUERY_STATE_FAILED"
	StateCompleted        ExecutionState = "QUERY_STATE_COMPLETED"
	StateCompletedPartial ExecutionState = "QUERY_STATE_COMPLETED_PARTIAL"
	StateCancelled        ExecutionState = "QUERY_STATE_CANCELLED"
	StateExpired          ExecutionState = "QUERY_STATE_EXPIRED"
)

var terminalStates = []ExecutionState{
	StateFailed,
	StateCompleted,
	StateCompletedPartial,
	StateCancelled,
	StateExpired,
}

var nonTerminalStates = []ExecutionState{
	StatePending,
	StateExecuting,
}

// IsTerminal reports whether no further progress happens after this state.
func (s ExecutionState) IsTerminal() bool {
	return slices.Contains(terminalStates, s)
}

func (s ExecutionState) IsValid() bool {
	return s.IsTerminal() || slices.Contains(nonTerminalStates, s)
}

// HasRows reports whether results for this state carry a row payload.
func (s ExecutionState) HasRows() bool {
	return s == StateCompleted || s == StateCompletedPartial
}

func (s ExecutionState) String() string {
	return string(s)
}
