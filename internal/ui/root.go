package ui

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/docforge/docforge/internal/archive"
	"github.com/docforge/docforge/internal/backend"
	"github.com/docforge/docforge/internal/config"
	"github.com/docforge/docforge/internal/job"
	"github.com/docforge/docforge/internal/model"
	"github.com/docforge/docforge/internal/platform"
	"github.com/docforge/docforge/internal/preview"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	client       *backend.Client
	jobSvc       job.Controller
	exporter     *archive.Exporter
	settings     *config.Settings
	localization *Localization

	// Selected input file
	selectedPath string
	fileLabel    *widget.Label
	chooseBtn    *widget.Button
	processBtn   *widget.Button

	// Job state
	jobCard         *JobCard
	treeView        *ResultTreeView
	selectedNode    *model.ResultNode
	previewBtn      *widget.Button
	lastCompleteJob string

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, client *backend.Client, jobSvc job.Controller) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	// Ensure the export directory exists
	platform.CreateDirectoryIfNotExists(settings.GetExportDirectory())

	ui := &RootUI{
		window:       window,
		app:          app,
		client:       client,
		jobSvc:       jobSvc,
		exporter:     archive.NewExporter(client),
		settings:     settings,
		localization: localization,
	}

	log.Printf("RootUI initialized with job service: %v", ui.jobSvc != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for job updates
	ui.jobSvc.SetUpdateCallback(ui.onJobUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create file selection row
	ui.fileLabel = widget.NewLabel(ui.localization.GetText(KeyNoFileSelected))
	ui.fileLabel.Truncation = fyne.TextTruncateEllipsis

	ui.chooseBtn = widget.NewButton(ui.localization.GetText(KeyChooseFile), ui.onChooseFile)
	ui.processBtn = widget.NewButton(ui.localization.GetText(KeyProcess), ui.onProcessClick)
	ui.processBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, container.NewHBox(settingsBtn, ui.chooseBtn), ui.processBtn, ui.fileLabel)

	// Create notification panel under the file row (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Create job card
	ui.jobCard = NewJobCard(ui.jobSvc.CurrentJob(), ui.localization)
	ui.jobCard.SetCallbacks(ui.onDownloadResult)

	// Combine file row, notification panel and job card at the top
	topCombined := container.NewVBox(topPanel, ui.notificationContainer, ui.jobCard)

	// Create result tree
	ui.treeView = NewResultTreeView()
	ui.treeView.SetOnFileSelected(ui.onResultFileSelected)

	// Preview button row at the bottom
	ui.previewBtn = widget.NewButton(ui.localization.GetText(KeyPreview), ui.onPreviewClick)
	ui.previewBtn.Disable()
	bottomPanel := container.NewHBox(ui.previewBtn)

	// Create main layout
	content := container.NewBorder(
		topCombined,             // top
		bottomPanel,             // bottom
		nil,                     // left
		nil,                     // right
		ui.treeView.Container(), // center - result tree
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	exportResultsItem := fyne.NewMenuItem(ui.localization.GetText(KeyExportResults), ui.onExportResults)
	exportBundleItem := fyne.NewMenuItem(ui.localization.GetText(KeyExportBundle), ui.onExportBundle)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile),
			exportResultsItem,
			exportBundleItem,
			fyne.NewMenuItemSeparator(),
			settingsItem,
		),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	if ui.selectedPath == "" {
		ui.fileLabel.SetText(ui.localization.GetText(KeyNoFileSelected))
	}
	ui.chooseBtn.SetText(ui.localization.GetText(KeyChooseFile))
	ui.processBtn.SetText(ui.localization.GetText(KeyProcess))
	ui.previewBtn.SetText(ui.localization.GetText(KeyPreview))

	ui.jobCard.UpdateJob(ui.jobSvc.CurrentJob())
}

// onChooseFile opens the PDF file picker. Picking a new source resets any
// previous job so stale results never linger next to a new input.
func (ui *RootUI) onChooseFile() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		log.Printf("Selected input file: %s", path)

		ui.jobSvc.Reset()
		ui.selectedPath = path
		ui.selectedNode = nil
		ui.fileLabel.SetText(filepath.Base(path))
		ui.treeView.SetTree(nil)
		ui.previewBtn.Disable()
		ui.hideNotification()
	}, ui.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{PDFExtension}))
	fileDialog.Show()
}

// onProcessClick handles the process button click
func (ui *RootUI) onProcessClick() {
	if ui.selectedPath == "" {
		ui.showNotification(ui.localization.GetText(KeyPleaseSelectFile), false)
		return
	}

	log.Printf("Submitting file for processing: %s", ui.selectedPath)

	if _, err := ui.jobSvc.Submit(ui.selectedPath); err != nil {
		log.Printf("Submit failed: %v", err)
		ui.showNotification("Error: "+err.Error(), false)
		return
	}

	ui.showNotification(ui.localization.GetText(KeyUploading), true)
}

// showNotification displays a message in the notification panel.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}).Show()
}

// onJobUpdate handles job updates from the job service
func (ui *RootUI) onJobUpdate(j *model.Job) {
	log.Printf("Job update received: id=%s phase=%s session=%s", j.ID, j.Phase, j.SessionID)

	fyne.Do(func() {
		ui.jobCard.UpdateJob(j)

		switch j.Phase {
		case model.PhaseUploading:
			ui.showNotification(ui.localization.GetText(KeyUploading), true)
		case model.PhaseProcessing:
			ui.showNotification(ui.localization.GetText(KeyProcessing), true)
		case model.PhaseComplete:
			ui.treeView.SetTree(j.Tree)
			if j.TreeWarning != "" {
				ui.showNotification(IconWarning+" "+ui.localization.GetText(KeyTreeUnavailable), false)
			} else if len(j.Tree) > 0 {
				ui.showNotification(fmt.Sprintf("%s (%d)", ui.localization.GetText(KeyComplete), model.CountFiles(j.Tree)), false)
			} else {
				ui.showNotification(ui.localization.GetText(KeyComplete), false)
			}
			ui.sendCompletionNotification(j)
		case model.PhaseError:
			ui.showNotification(IconError+" "+j.LastError, false)
		default:
			ui.hideNotification()
			ui.treeView.SetTree(nil)
			ui.previewBtn.Disable()
		}
	})
}

// sendCompletionNotification sends a system notification once per completed job
func (ui *RootUI) sendCompletionNotification(j *model.Job) {
	if j.ID == ui.lastCompleteJob {
		return
	}
	ui.lastCompleteJob = j.ID

	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(KeyComplete),
		Content: j.DisplayName(),
	})
}

// onResultFileSelected handles selection of a file node in the result tree
func (ui *RootUI) onResultFileSelected(node *model.ResultNode) {
	log.Printf("Result file selected: %s (%s)", node.Name, node.Path)

	ui.selectedNode = node
	ui.previewBtn.Enable()

	if ui.settings.GetAutoOpenPreview() {
		ui.openPreview(node)
	}
}

// onPreviewClick opens a preview of the selected result file
func (ui *RootUI) onPreviewClick() {
	if ui.selectedNode == nil {
		ui.showNotification(ui.localization.GetText(KeySelectResultFirst), false)
		return
	}
	ui.openPreview(ui.selectedNode)
}

// openPreview resolves the preview strategy for a result file and opens it
func (ui *RootUI) openPreview(node *model.ResultNode) {
	fileURL := ui.client.FileURL(node.Path)
	target := preview.Resolve(fileURL)

	log.Printf("Preview for %s resolved to %s", node.Name, target.Kind)

	switch target.Kind {
	case preview.KindOfficeViewer, preview.KindDirect:
		ui.openInBrowser(target.URL)
	default:
		ui.showNotification(ui.localization.GetText(KeyDownloadOnly)+MiddleDotSeparator+node.Name, false)
	}
}

// onDownloadResult opens the session result archive URL in the browser
func (ui *RootUI) onDownloadResult(downloadURL string) {
	log.Printf("Opening result download: %s", downloadURL)
	ui.openInBrowser(downloadURL)
}

// openInBrowser opens a URL with the system browser
func (ui *RootUI) openInBrowser(rawURL string) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		log.Printf("Invalid URL %s: %v", rawURL, err)
		ui.showNotification("Error: "+err.Error(), false)
		return
	}
	if err := ui.app.OpenURL(parsed); err != nil {
		log.Printf("Failed to open URL %s: %v", rawURL, err)
		ui.showNotification(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), false)
	}
}

// onExportResults packages the current result tree into a zip in the export
// directory. Runs in the background; per-file failures are advisory.
func (ui *RootUI) onExportResults() {
	currentJob := ui.jobSvc.CurrentJob()
	if currentJob == nil || currentJob.Phase != model.PhaseComplete || len(currentJob.Tree) == 0 {
		ui.showNotification(ui.localization.GetText(KeyNoResultsYet), false)
		return
	}

	ui.showNotification(ui.localization.GetText(KeyExportResults), true)

	go func() {
		data, failed, err := ui.exporter.Export(context.Background(), currentJob.Tree)
		if err != nil {
			log.Printf("Export failed: %v", err)
			ui.showNotification(ui.localization.GetText(KeyExportFailed)+": "+err.Error(), false)
			return
		}

		outPath, err := ui.writeExportFile(archive.ResultsBundleName, data)
		if err != nil {
			log.Printf("Export write failed: %v", err)
			ui.showNotification(ui.localization.GetText(KeyExportFailed)+": "+err.Error(), false)
			return
		}

		log.Printf("Export complete: %s (%d skipped)", outPath, len(failed))

		message := ui.localization.GetText(KeyExportComplete)
		if len(failed) > 0 {
			message = fmt.Sprintf("%s (%d)", ui.localization.GetText(KeyExportPartial), len(failed))
		}
		ui.showNotification(message+MiddleDotSeparator+outPath, false)

		platform.OpenFileInManager(outPath)
	}()
}

// onExportBundle builds a document archive from a local artifact bundle file
func (ui *RootUI) onExportBundle() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		nodes, err := archive.LoadBundle(reader)
		if err != nil {
			log.Printf("Failed to load bundle: %v", err)
			ui.showNotification(ui.localization.GetText(KeyExportFailed)+": "+err.Error(), false)
			return
		}

		data, err := archive.Build(nodes)
		if err != nil {
			log.Printf("Failed to build archive: %v", err)
			ui.showNotification(ui.localization.GetText(KeyExportFailed)+": "+err.Error(), false)
			return
		}

		outPath, err := ui.writeExportFile(archive.BundleFileName, data)
		if err != nil {
			log.Printf("Export write failed: %v", err)
			ui.showNotification(ui.localization.GetText(KeyExportFailed)+": "+err.Error(), false)
			return
		}

		log.Printf("Bundle export complete: %s", outPath)
		ui.showNotification(ui.localization.GetText(KeyExportComplete)+MiddleDotSeparator+outPath, false)

		platform.OpenFileInManager(outPath)
	}, ui.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{BundleExtension}))
	fileDialog.Show()
}

// writeExportFile writes archive bytes into the configured export directory
func (ui *RootUI) writeExportFile(name string, data []byte) (string, error) {
	dir := ui.settings.GetExportDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	outPath := filepath.Join(dir, name)
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write archive: %w", err)
	}
	return outPath, nil
}
