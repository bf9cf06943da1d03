package model

// JobPhase represents the lifecycle phase of a processing job
type JobPhase string

const (
	// PhaseIdle means no job has been submitted yet
	PhaseIdle JobPhase = "Idle"

	// PhaseUploading means the PDF upload is in flight
	PhaseUploading JobPhase = "Uploading"

	// PhaseProcessing means the backend accepted the upload and is working;
	// the status endpoint is being polled
	PhaseProcessing JobPhase = "Processing"

	// PhaseComplete means the backend reported the job as complete
	PhaseComplete JobPhase = "Complete"

	// PhaseError means the upload or a status poll failed
	PhaseError JobPhase = "Error"
)

// String returns the string representation of JobPhase
func (p JobPhase) String() string {
	return string(p)
}

// IsActive returns true if the job is in an active phase
func (p JobPhase) IsActive() bool {
	return p == PhaseUploading || p == PhaseProcessing
}

// IsTerminal returns true if the job reached a final phase. The only way
// out of a terminal phase is a caller-initiated reset to Idle.
func (p JobPhase) IsTerminal() bool {
	return p == PhaseComplete || p == PhaseError
}
