package preview

import (
	"net/url"
	"strings"
	"testing"
)

func TestResolve_Dispatch(t *testing.T) {
	tests := []struct {
		fileURL  string
		expected Kind
	}{
		{"http://backend:8000/static-results/s1/summary.docx", KindOfficeViewer},
		{"http://backend:8000/static-results/s1/deck.pptx", KindOfficeViewer},
		{"http://backend:8000/static-results/s1/comparison.xlsx", KindOfficeViewer},
		{"http://backend:8000/static-results/s1/paper.pdf", KindDirect},
		{"http://backend:8000/static-results/s1/figure.png", KindDirect},
		{"http://backend:8000/static-results/s1/page.jpg", KindDirect},
		{"http://backend:8000/static-results/s1/notes.txt", KindDirect},
		{"http://backend:8000/static-results/s1/meta.json", KindDirect},
		{"http://backend:8000/static-results/s1/archive.lab", KindDownloadOnly},
		{"http://backend:8000/static-results/s1/data.bin", KindDownloadOnly},
		{"http://backend:8000/static-results/s1/noextension", KindDownloadOnly},
		{"http://backend:8000/static-results/s1/UPPER.DOCX", KindOfficeViewer},
	}

	for _, test := range tests {
		target := Resolve(test.fileURL)
		if target.Kind != test.expected {
			t.Errorf("Resolve(%s).Kind = %s, expected %s", test.fileURL, target.Kind, test.expected)
		}
	}
}

func TestResolve_OfficeViewerEncodesURL(t *testing.T) {
	fileURL := "http://backend:8000/static-results/s 1/summary.docx"
	target := Resolve(fileURL)

	if !strings.HasPrefix(target.URL, OfficeViewerBase) {
		t.Fatalf("viewer URL = %q, expected %q prefix", target.URL, OfficeViewerBase)
	}

	encoded := strings.TrimPrefix(target.URL, OfficeViewerBase)
	decoded, err := url.QueryUnescape(encoded)
	if err != nil {
		t.Fatalf("src parameter is not query-encoded: %v", err)
	}
	if decoded != fileURL {
		t.Errorf("decoded src = %q, expected %q", decoded, fileURL)
	}
}

func TestResolve_DirectKeepsURL(t *testing.T) {
	fileURL := "http://backend:8000/static-results/s1/paper.pdf"
	target := Resolve(fileURL)
	if target.URL != fileURL {
		t.Errorf("direct URL = %q, expected unchanged", target.URL)
	}
}

func TestResolve_DownloadOnlyHasNoURL(t *testing.T) {
	target := Resolve("http://backend:8000/static-results/s1/raw.dat")
	if target.URL != "" {
		t.Errorf("download-only URL = %q, expected empty", target.URL)
	}
}

func TestResolve_QueryDoesNotConfuseExtension(t *testing.T) {
	target := Resolve("http://backend:8000/static-results/s1/paper.pdf?token=a.docx")
	if target.Kind != KindDirect {
		t.Errorf("Kind = %s, expected direct for .pdf path", target.Kind)
	}
}
