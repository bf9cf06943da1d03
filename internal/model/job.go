package model

import (
	"path/filepath"
	"strings"
	"time"
)

// Job represents a single backend processing run for one uploaded PDF
type Job struct {
	ID         string
	Generation int    // monotonic; responses from older generations are discarded
	SessionID  string // assigned by the backend on successful upload
	Filename   string
	Phase      JobPhase
	LastError  string // last error message if any

	// Set once the backend reports completion
	ResultURL   string
	TreeURL     string
	DownloadURL string
	Tree        []*ResultNode
	TreeWarning string // advisory; tree fetch failed after completion

	StartedAt  time.Time // when the upload started
	FinishedAt time.Time // when the job reached a terminal phase
}

// DisplayName returns the uploaded file's base name without extension,
// falling back to the session id.
func (j *Job) DisplayName() string {
	if j.Filename != "" {
		name := filepath.Base(j.Filename)
		if idx := strings.LastIndex(name, "."); idx > 0 {
			name = name[:idx]
		}
		return name
	}
	return j.SessionID
}

// Elapsed returns how long the job has been (or was) running
func (j *Job) Elapsed() time.Duration {
	if j.StartedAt.IsZero() {
		return 0
	}
	if j.Phase.IsTerminal() && !j.FinishedAt.IsZero() {
		return j.FinishedAt.Sub(j.StartedAt)
	}
	return time.Since(j.StartedAt)
}
