package model

import (
	"testing"
	"time"
)

func TestJob_DisplayName(t *testing.T) {
	tests := []struct {
		name     string
		job      Job
		expected string
	}{
		{"filename with extension", Job{Filename: "paper.pdf"}, "paper"},
		{"filename with path", Job{Filename: "/tmp/in/study.pdf"}, "study"},
		{"filename without extension", Job{Filename: "notes"}, "notes"},
		{"dotfile keeps its name", Job{Filename: ".hidden"}, ".hidden"},
		{"falls back to session id", Job{SessionID: "aB3xK9"}, "aB3xK9"},
		{"empty job", Job{}, ""},
	}

	for _, test := range tests {
		result := test.job.DisplayName()
		if result != test.expected {
			t.Errorf("%s: DisplayName() = %q, expected %q", test.name, result, test.expected)
		}
	}
}

func TestJob_Elapsed(t *testing.T) {
	job := &Job{}
	if job.Elapsed() != 0 {
		t.Errorf("Elapsed() for unstarted job = %v, expected 0", job.Elapsed())
	}

	start := time.Now().Add(-10 * time.Second)
	job = &Job{
		Phase:      PhaseComplete,
		StartedAt:  start,
		FinishedAt: start.Add(3 * time.Second),
	}
	if job.Elapsed() != 3*time.Second {
		t.Errorf("Elapsed() for finished job = %v, expected 3s", job.Elapsed())
	}

	job = &Job{Phase: PhaseProcessing, StartedAt: start}
	if job.Elapsed() < 9*time.Second {
		t.Errorf("Elapsed() for running job = %v, expected at least 9s", job.Elapsed())
	}
}

func TestCountFiles(t *testing.T) {
	tree := []*ResultNode{
		{
			Name: "docs",
			Kind: NodeFolder,
			Children: []*ResultNode{
				{Name: "summary.docx", Kind: NodeFile, Path: "s1/docs/summary.docx"},
				{Name: "slides.pptx", Kind: NodeFile, Path: "s1/docs/slides.pptx"},
			},
		},
		{Name: "comparison.xlsx", Kind: NodeFile, Path: "s1/comparison.xlsx"},
		{Name: "empty", Kind: NodeFolder},
	}

	if got := CountFiles(tree); got != 3 {
		t.Errorf("CountFiles() = %d, expected 3", got)
	}

	if got := CountFiles(nil); got != 0 {
		t.Errorf("CountFiles(nil) = %d, expected 0", got)
	}
}
