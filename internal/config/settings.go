package config

import (
	"fyne.io/fyne/v2"

	"github.com/docforge/docforge/internal/backend"
	"github.com/docforge/docforge/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyBackendURL      = "backend_url"
	KeyPollInterval    = "poll_interval_seconds"
	KeyExportDir       = "export_directory"
	KeyLanguage        = "app_language"
	KeyAutoOpenPreview = "auto_open_preview"
)

// Default values
const (
	DefaultPollIntervalSeconds = 5
	DefaultLanguage            = "system"
	DefaultAutoOpenPreview     = false

	minPollIntervalSeconds = 1
	maxPollIntervalSeconds = 60
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBackendURL returns the configured processing backend URL
func (s *Settings) GetBackendURL() string {
	url := s.app.Preferences().String(KeyBackendURL)
	if url == "" {
		s.SetBackendURL(backend.DefaultBaseURL)
		return backend.DefaultBaseURL
	}
	return url
}

// SetBackendURL sets the processing backend URL
func (s *Settings) SetBackendURL(url string) {
	if url == "" {
		url = backend.DefaultBaseURL
	}
	s.app.Preferences().SetString(KeyBackendURL, url)
}

// GetPollIntervalSeconds returns the status poll interval in seconds
func (s *Settings) GetPollIntervalSeconds() int {
	value := s.app.Preferences().Int(KeyPollInterval)
	if value <= 0 {
		s.SetPollIntervalSeconds(DefaultPollIntervalSeconds)
		return DefaultPollIntervalSeconds
	}
	return value
}

// SetPollIntervalSeconds sets the status poll interval in seconds
func (s *Settings) SetPollIntervalSeconds(seconds int) {
	if seconds < minPollIntervalSeconds {
		seconds = minPollIntervalSeconds
	}
	if seconds > maxPollIntervalSeconds {
		seconds = maxPollIntervalSeconds
	}
	s.app.Preferences().SetInt(KeyPollInterval, seconds)
}

// GetExportDirectory returns the directory where archives are saved
func (s *Settings) GetExportDirectory() string {
	dir := s.app.Preferences().String(KeyExportDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/docforge"
		}
		s.SetExportDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetExportDirectory sets the directory where archives are saved
func (s *Settings) SetExportDirectory(dir string) {
	s.app.Preferences().SetString(KeyExportDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetAutoOpenPreview returns whether a preview opens automatically when a
// result file is selected
func (s *Settings) GetAutoOpenPreview() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoOpenPreview, DefaultAutoOpenPreview)
}

// SetAutoOpenPreview sets whether previews open automatically on selection
func (s *Settings) SetAutoOpenPreview(autoOpen bool) {
	s.app.Preferences().SetBool(KeyAutoOpenPreview, autoOpen)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
