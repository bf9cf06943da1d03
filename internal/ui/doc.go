package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the processing job service and renders the job
// card, result tree, notifications, and settings. All UI strings are localized
// via Localization.
