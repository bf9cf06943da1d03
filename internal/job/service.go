package job

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docforge/docforge/internal/backend"
	"github.com/docforge/docforge/internal/model"
)

const (
	// DefaultPollInterval is the cadence of status polls while processing
	DefaultPollInterval = 5 * time.Second

	jobIDPrefix = "job-"
)

// Service runs the upload/poll state machine for the current job. It owns
// the single poll timer: starting a new job or resetting always cancels the
// previous one first, so at most one ticker is ever active. Every job
// carries a generation number; a response whose generation no longer
// matches the service's current one is stale and discarded, never allowed
// to overwrite newer state.
type Service struct {
	client   *backend.Client
	interval time.Duration

	mu         sync.Mutex
	job        *model.Job
	generation int
	cancelPoll context.CancelFunc
	onUpdate   func(*model.Job) // callback for UI updates
}

// NewService creates a job service polling at the given interval
func NewService(client *backend.Client, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Service{
		client:   client,
		interval: interval,
		job:      &model.Job{Phase: model.PhaseIdle},
	}
}

// SetUpdateCallback sets the callback function for job updates
func (s *Service) SetUpdateCallback(callback func(*model.Job)) {
	s.onUpdate = callback
}

// CurrentJob returns the job the service is tracking
func (s *Service) CurrentJob() *model.Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.job
}

// Submit starts a new processing run for the PDF at path. Any previous
// job's poll timer is cancelled before the new job begins.
func (s *Service) Submit(path string) (*model.Job, error) {
	if path == "" {
		return nil, fmt.Errorf("no input file selected")
	}

	s.mu.Lock()
	s.stopPollLocked()
	s.generation++

	job := &model.Job{
		ID:         generateJobID(),
		Generation: s.generation,
		Filename:   filepath.Base(path),
		Phase:      model.PhaseUploading,
		StartedAt:  time.Now(),
	}
	s.job = job
	s.mu.Unlock()

	s.notifyUpdate(job)

	go s.upload(job, path)
	return job, nil
}

// Reset returns the service to Idle: the poll timer is cancelled, the job
// id, messages, download URL and tree are cleared, and any response still
// in flight becomes stale.
func (s *Service) Reset() {
	s.mu.Lock()
	s.stopPollLocked()
	s.generation++
	job := &model.Job{Phase: model.PhaseIdle, Generation: s.generation}
	s.job = job
	s.mu.Unlock()

	s.notifyUpdate(job)
}

// upload performs the submission and, on success, starts the poll loop
func (s *Service) upload(job *model.Job, path string) {
	file, err := os.Open(path)
	if err != nil {
		s.setJobError(job, fmt.Errorf("failed to open input file: %w", err))
		return
	}
	defer file.Close()

	receipt, err := s.client.SubmitUpload(context.Background(), filepath.Base(path), file)

	s.mu.Lock()
	if job.Generation != s.generation {
		s.mu.Unlock()
		log.Printf("Discarding stale upload response for job %s (generation %d)", job.ID, job.Generation)
		return
	}
	if err != nil {
		job.Phase = model.PhaseError
		job.LastError = err.Error()
		job.FinishedAt = time.Now()
		s.mu.Unlock()
		s.notifyUpdate(job)
		return
	}

	job.SessionID = receipt.SessionID
	if receipt.Filename != "" {
		job.Filename = receipt.Filename
	}
	job.Phase = model.PhaseProcessing

	ctx, cancel := context.WithCancel(context.Background())
	s.cancelPoll = cancel
	s.mu.Unlock()

	log.Printf("Upload accepted: session=%s filename=%s", receipt.SessionID, receipt.Filename)
	s.notifyUpdate(job)

	go s.pollLoop(ctx, job)
}

// pollLoop issues one status call per tick until the job completes, fails,
// or the context is cancelled. A single goroutine serializes ticks, so a
// slow response never overlaps the next poll.
func (s *Service) pollLoop(ctx context.Context, job *model.Job) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		status, err := s.client.Status(ctx, job.SessionID)

		s.mu.Lock()
		if job.Generation != s.generation {
			s.mu.Unlock()
			return
		}

		if err != nil {
			if ctx.Err() != nil {
				s.mu.Unlock()
				return
			}
			job.Phase = model.PhaseError
			job.LastError = err.Error()
			job.FinishedAt = time.Now()
			s.stopPollLocked()
			s.mu.Unlock()
			s.notifyUpdate(job)
			return
		}

		if status.Status != backend.StatusComplete {
			// Anything that is not complete, including status values this
			// client does not know, keeps the job in Processing.
			s.mu.Unlock()
			s.notifyUpdate(job)
			continue
		}

		job.Phase = model.PhaseComplete
		job.ResultURL = status.ResultURL
		job.TreeURL = status.TreeURL
		job.DownloadURL = s.client.DownloadURL(job.SessionID)
		job.FinishedAt = time.Now()
		s.stopPollLocked()
		s.mu.Unlock()

		log.Printf("Job %s complete: session=%s result=%s", job.ID, job.SessionID, status.ResultURL)
		s.notifyUpdate(job)

		if status.TreeURL != "" {
			s.fetchTree(job, status.TreeURL)
		}
		return
	}
}

// fetchTree materializes the result tree once after completion. A failure
// here is advisory only; the job stays Complete.
func (s *Service) fetchTree(job *model.Job, treeURL string) {
	tree, err := s.client.FetchTree(context.Background(), treeURL)

	s.mu.Lock()
	if job.Generation != s.generation {
		s.mu.Unlock()
		return
	}
	if err != nil {
		job.TreeWarning = err.Error()
	} else {
		job.Tree = tree
	}
	s.mu.Unlock()

	if err != nil {
		log.Printf("Result tree fetch failed for session %s: %v", job.SessionID, err)
	}
	s.notifyUpdate(job)
}

// setJobError moves the job to Error unless it has gone stale
func (s *Service) setJobError(job *model.Job, err error) {
	s.mu.Lock()
	if job.Generation != s.generation {
		s.mu.Unlock()
		return
	}
	job.Phase = model.PhaseError
	job.LastError = err.Error()
	job.FinishedAt = time.Now()
	s.mu.Unlock()

	s.notifyUpdate(job)
}

// stopPollLocked cancels the active poll timer, if any. Callers must hold mu.
func (s *Service) stopPollLocked() {
	if s.cancelPoll != nil {
		s.cancelPoll()
		s.cancelPoll = nil
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(job *model.Job) {
	if s.onUpdate != nil {
		s.onUpdate(job)
	}
}

// generateJobID generates a unique job ID using UUID v7 for time ordering
func generateJobID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(jobIDPrefix+"%d", time.Now().UnixNano())
	}
	return jobIDPrefix + id.String()
}
