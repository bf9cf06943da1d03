package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/docforge/docforge/internal/model"
)

// JobCard shows the current processing job: source file, phase, session and
// any error or advisory warning. One card exists at a time; it is updated in
// place as the job progresses.
type JobCard struct {
	widget.BaseWidget

	job          *model.Job
	localization *Localization

	// UI components
	nameLabel    *widget.Label
	phaseLabel   *widget.Label
	sessionLabel *widget.Label
	errorLabel   *widget.Label
	warningLabel *widget.Label
	spinner      *widget.ProgressBarInfinite

	// Action buttons
	downloadBtn *widget.Button

	// Callbacks
	onDownload func(downloadURL string)
}

// NewJobCard creates a new job card widget
func NewJobCard(job *model.Job, localization *Localization) *JobCard {
	if job == nil {
		job = &model.Job{Phase: model.PhaseIdle}
	}

	jc := &JobCard{
		job:          job,
		localization: localization,
	}
	jc.ExtendBaseWidget(jc)
	jc.createUI()
	jc.updateFromJob()
	return jc
}

// SetCallbacks sets the action callbacks
func (jc *JobCard) SetCallbacks(onDownload func(downloadURL string)) {
	jc.onDownload = onDownload
}

// UpdateJob updates the card with new job data
func (jc *JobCard) UpdateJob(job *model.Job) {
	if job == nil {
		log.Printf("Warning: UpdateJob called with nil job")
		return
	}

	jc.job = job
	jc.updateFromJob()
	jc.Refresh()
}

// createUI creates the UI components
func (jc *JobCard) createUI() {
	jc.nameLabel = widget.NewLabel("")
	jc.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	jc.nameLabel.Truncation = fyne.TextTruncateEllipsis

	jc.phaseLabel = widget.NewLabel("")
	jc.phaseLabel.Alignment = fyne.TextAlignTrailing

	jc.sessionLabel = widget.NewLabel("")
	jc.sessionLabel.TextStyle = fyne.TextStyle{Monospace: true}

	jc.errorLabel = widget.NewLabel("")
	jc.errorLabel.Wrapping = fyne.TextWrapWord
	jc.errorLabel.Hide()

	jc.warningLabel = widget.NewLabel("")
	jc.warningLabel.Wrapping = fyne.TextWrapWord
	jc.warningLabel.Hide()

	jc.spinner = widget.NewProgressBarInfinite()
	jc.spinner.Hide()

	jc.downloadBtn = widget.NewButton(jc.localization.GetText(KeyDownload), func() {
		currentJob := jc.job
		if currentJob.DownloadURL == "" {
			log.Printf("Download button clicked but no download URL for job %s", currentJob.ID)
			return
		}
		if jc.onDownload != nil {
			jc.onDownload(currentJob.DownloadURL)
		}
	})
	jc.downloadBtn.Importance = widget.HighImportance
	jc.downloadBtn.Disable()
}

// updateFromJob syncs the widgets with the current job state
func (jc *JobCard) updateFromJob() {
	job := jc.job

	name := job.DisplayName()
	if name == "" {
		name = jc.localization.GetText(KeyNoFileSelected)
	}
	jc.nameLabel.SetText(name)

	jc.phaseLabel.SetText(jc.phaseText(job.Phase))

	if job.SessionID != "" {
		jc.sessionLabel.SetText(job.SessionID)
	} else {
		jc.sessionLabel.SetText(DashPlaceholder)
	}

	if job.Phase == model.PhaseError && job.LastError != "" {
		jc.errorLabel.SetText(IconError + " " + job.LastError)
		jc.errorLabel.Show()
	} else {
		jc.errorLabel.Hide()
	}

	if job.TreeWarning != "" {
		jc.warningLabel.SetText(IconWarning + " " + jc.localization.GetText(KeyTreeUnavailable))
		jc.warningLabel.Show()
	} else {
		jc.warningLabel.Hide()
	}

	if job.Phase.IsActive() {
		jc.spinner.Show()
	} else {
		jc.spinner.Hide()
	}

	if job.Phase == model.PhaseComplete && job.DownloadURL != "" {
		jc.downloadBtn.Enable()
	} else {
		jc.downloadBtn.Disable()
	}
}

// phaseText returns the localized label for a job phase
func (jc *JobCard) phaseText(phase model.JobPhase) string {
	switch phase {
	case model.PhaseUploading:
		return jc.localization.GetText(KeyUploading)
	case model.PhaseProcessing:
		return jc.localization.GetText(KeyProcessing)
	case model.PhaseComplete:
		return jc.localization.GetText(KeyComplete)
	case model.PhaseError:
		return jc.localization.GetText(KeyProcessingFailed)
	default:
		return DashPlaceholder
	}
}

// CreateRenderer creates the widget renderer
func (jc *JobCard) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, nil, jc.phaseLabel, jc.nameLabel)
	session := container.NewHBox(widget.NewLabel(IconFile), jc.sessionLabel)
	actions := container.NewHBox(jc.downloadBtn)

	content := container.NewVBox(
		header,
		session,
		jc.spinner,
		jc.errorLabel,
		jc.warningLabel,
		actions,
	)

	return widget.NewSimpleRenderer(container.NewPadded(content))
}
