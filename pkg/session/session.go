// Package session tracks the state of one search run: parameters, progress,
// results, and the cooperative stop flag.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"bip-scraper/pkg/filter"
	"bip-scraper/pkg/models"
)

// Status is the lifecycle state of a search session.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusVerifying Status = "verifying"
	StatusCompleted Status = "completed"
	StatusStopped   Status = "stopped"
	StatusError     Status = "error"
)

// Params are the caller-supplied search parameters, fixed at session start.
type Params struct {
	DateFrom     time.Time
	DateTo       time.Time
	Industries   []filter.Industry
	Profile      string
	Voivodeships []string
	UseVerifier  bool
}

// Session holds the mutable state of one search. All accessors are safe for
// concurrent use; the crawl goroutine writes while status readers poll.
type Session struct {
	ID     string
	Params Params

	mu            sync.Mutex
	status        Status
	progress      int
	total         int
	currentSource string
	results       []models.ClassifiedRecord
	rawCount      int
	err           error
	startedAt     time.Time
	completedAt   time.Time
	stopRequested bool
}

// New creates a pending session with a fresh UUID.
func New(params Params) *Session {
	return &Session{
		ID:     uuid.NewString(),
		Params: params,
		status: StatusPending,
	}
}

// Start marks the session running.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusRunning
	s.startedAt = time.Now()
}

// SetProgress records crawl progress; wired to the orchestrator's callback.
func (s *Session) SetProgress(current, total int, sourceName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = current
	s.total = total
	s.currentSource = sourceName
}

// SetVerifying marks the session as running the LLM pass, recording how
// many records existed before it.
func (s *Session) SetVerifying(rawCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusVerifying
	s.rawCount = rawCount
}

// Complete stores the final record list and marks the session done. A run
// halted by a stop request finishes as stopped, with whatever partial
// results were collected.
func (s *Session) Complete(results []models.ClassifiedRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = results
	if s.rawCount == 0 {
		s.rawCount = len(results)
	}
	if s.stopRequested {
		s.status = StatusStopped
	} else {
		s.status = StatusCompleted
	}
	s.completedAt = time.Now()
}

// Fail marks the session errored.
func (s *Session) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = StatusError
	s.err = err
	s.completedAt = time.Now()
}

// RequestStop asks the crawl to halt at the next checkpoint.
func (s *Session) RequestStop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopRequested = true
}

// StopRequested is the predicate polled by the orchestrator.
func (s *Session) StopRequested() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopRequested
}

// Results returns the final record list.
func (s *Session) Results() []models.ClassifiedRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// Snapshot is a point-in-time view of session state for status reporting.
type Snapshot struct {
	SessionID     string `json:"session_id"`
	Status        Status `json:"status"`
	Progress      int    `json:"progress"`
	Total         int    `json:"total"`
	CurrentSource string `json:"current_source"`
	ResultsCount  int    `json:"results_count"`
	RawCount      int    `json:"raw_results_count"`
	Error         string `json:"error,omitempty"`
}

// State returns a consistent snapshot.
func (s *Session) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		SessionID:     s.ID,
		Status:        s.status,
		Progress:      s.progress,
		Total:         s.total,
		CurrentSource: s.currentSource,
		ResultsCount:  len(s.results),
		RawCount:      s.rawCount,
	}
	if s.err != nil {
		snap.Error = s.err.Error()
	}
	return snap
}
