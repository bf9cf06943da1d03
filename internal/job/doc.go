package job

// Package job owns the upload/poll lifecycle of a processing session:
// Idle -> Uploading -> Processing -> Complete, with Error reachable from
// Uploading and Processing and reset always returning to Idle.
