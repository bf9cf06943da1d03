package model

// Package model defines domain data structures used across the app: the
// processing job and its phase enum, the backend result tree, and locally
// generated artifacts consumed by the archive builder. Structures are
// designed for direct binding in the UI and explicit state transitions.
