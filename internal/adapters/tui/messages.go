package tui

import "time"

// MsgInitSteps resets the step list to the planned steps of a run.
type MsgInitSteps struct {
	Steps []string
}

// MsgStepStart indicates a step (span) has started.
// An empty ParentID marks the root span of the run.
type MsgStepStart struct {
	SpanID    string
	ParentID  string
	Name      string
	StartTime time.Time
}

// MsgStepLog carries progress notes of a step.
type MsgStepLog struct {
	SpanID string
	Data   []byte
}

// MsgStepComplete indicates a step (span) has finished.
type MsgStepComplete struct {
	SpanID  string
	EndTime time.Time
	Err     error
}

// tickMsg refreshes the elapsed time of running steps.
type tickMsg time.Time
