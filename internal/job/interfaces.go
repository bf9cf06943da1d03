package job

import (
	"github.com/docforge/docforge/internal/model"
)

// Controller defines the interface for the job service the UI drives.
type Controller interface {
	SetUpdateCallback(func(*model.Job))
	Submit(path string) (*model.Job, error)
	Reset()
	CurrentJob() *model.Job
}
