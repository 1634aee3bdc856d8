// internal/blast/errors.go
package blast

import "fmt"

// JobFailedError is the terminal FAILED state: the server accepted the job
// and then gave up on it. Resubmitting the same query may still succeed.
type JobFailedError struct {
	RID string
}

func (e *JobFailedError) Error() string { return fmt.Sprintf("blast: job %s failed", e.RID) }

// UnknownJobError means the server no longer recognizes the request id,
// usually because the job expired before the first poll landed.
type UnknownJobError struct {
	RID string
}

func (e *UnknownJobError) Error() string { return fmt.Sprintf("blast: job %s unknown to server", e.RID) }

// PollBudgetError means the job stayed pending through the whole poll
// budget. The job itself may still finish server-side; the caller just
// stopped waiting for it.
type PollBudgetError struct {
	RID   string
	Polls int
}

func (e *PollBudgetError) Error() string {
	return fmt.Sprintf("blast: job %s still pending after %d polls", e.RID, e.Polls)
}

// UnsupportedFormatError reports structured hit output in a shape the parser
// refuses to coerce, such as a whole BlastOutput2 report instead of a plain
// hit list.
type UnsupportedFormatError struct {
	Shape string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("blast: unsupported hit format: %s (want a list of hit objects)", e.Shape)
}
