package downloader

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a download session.
type Status string

const (
	// StatusPending means the session exists but no request has been sent.
	StatusPending Status = "Pending"

	// StatusInFlight means the response body is being streamed to disk.
	StatusInFlight Status = "InFlight"

	// StatusCompleted means the whole body was written successfully.
	StatusCompleted Status = "Completed"

	// StatusFailed means the transfer broke; a partial file may remain.
	StatusFailed Status = "Failed"
)

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the session reached a final state.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Session records one download attempt. Total is -1 until the response
// headers arrive, and stays -1 when the server sends no Content-Length.
type Session struct {
	ID         string
	URL        string
	Path       string
	Total      int64
	Received   int64
	Status     Status
	LastError  string
	StartedAt  time.Time
	FinishedAt time.Time
}

func NewSession(url, path string) *Session {
	return &Session{
		ID:     uuid.NewString(),
		URL:    url,
		Path:   path,
		Total:  -1,
		Status: StatusPending,
	}
}

// Progress returns the fraction received so far, 0.0 to 1.0. It reports 0
// when the total is unknown.
func (s *Session) Progress() float64 {
	if s.Total <= 0 {
		return 0
	}
	p := float64(s.Received) / float64(s.Total)
	if p > 1 {
		p = 1
	}
	return p
}

func (s *Session) begin(total int64) {
	s.Total = total
	s.Status = StatusInFlight
	s.StartedAt = time.Now()
}

func (s *Session) complete() {
	s.Status = StatusCompleted
	s.FinishedAt = time.Now()
}

func (s *Session) fail(err error) {
	s.Status = StatusFailed
	s.LastError = err.Error()
	s.FinishedAt = time.Now()
}
