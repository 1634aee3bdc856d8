// internal/blast/scan.go
package blast

import "strings"

// Status is the server-reported state of a submitted job.
type Status string

const (
	// StatusWaiting is the implicit state while the status body carries no
	// recognizable marker yet.
	StatusWaiting Status = "WAITING"
	StatusReady   Status = "READY"
	StatusFailed  Status = "FAILED"
	StatusUnknown Status = "UNKNOWN"
)

// ScanMarker pulls a "KEY = value" marker out of a free-text response body.
// The value runs from the first equals sign on the marker line to the next
// one, mirroring how the submission page lays out RID and RTOE. Returns
// false when no line carries the marker.
func ScanMarker(body, key string) (string, bool) {
	marker := key + " ="
	for _, line := range strings.Split(body, "\n") {
		if !strings.Contains(line, marker) {
			continue
		}
		_, rest, _ := strings.Cut(line, "=")
		val, _, _ := strings.Cut(rest, "=")
		return strings.TrimSpace(val), true
	}
	return "", false
}

// ScanStatus classifies a SearchInfo body. READY outranks FAILED outranks
// UNKNOWN when a body somehow carries more than one marker; anything else
// means the job is still running.
func ScanStatus(body string) Status {
	switch {
	case strings.Contains(body, "Status=READY"):
		return StatusReady
	case strings.Contains(body, "Status=FAILED"):
		return StatusFailed
	case strings.Contains(body, "Status=UNKNOWN"):
		return StatusUnknown
	}
	return StatusWaiting
}
