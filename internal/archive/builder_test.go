package archive

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/docforge/docforge/internal/model"
)

func readEntries(t *testing.T, data []byte) map[string]string {
	t.Helper()
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("failed to open produced archive: %v", err)
	}

	entries := make(map[string]string)
	for _, file := range reader.File {
		rc, err := file.Open()
		if err != nil {
			t.Fatalf("failed to open entry %s: %v", file.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read entry %s: %v", file.Name, err)
		}
		entries[file.Name] = string(content)
	}
	return entries
}

func TestBuild_MirrorsFoldersAndSkipsMissingArtifacts(t *testing.T) {
	forest := []*model.ArchiveNode{
		{
			Name: "reports",
			Kind: model.NodeFolder,
			Children: []*model.ArchiveNode{
				{
					Name: "summary.docx",
					Kind: model.NodeFile,
					Artifact: &model.Artifact{
						ID:   "a1",
						Name: "summary.docx",
						Kind: model.ArtifactDocx,
						HTML: "<h1>Summary</h1>",
					},
				},
				{Name: "orphan.docx", Kind: model.NodeFile}, // no artifact: skipped
				{
					Name: "nested",
					Kind: model.NodeFolder,
					Children: []*model.ArchiveNode{
						{
							Name: "deck.pptx",
							Kind: model.NodeFile,
							Artifact: &model.Artifact{
								ID:     "a2",
								Name:   "deck.pptx",
								Kind:   model.ArtifactPptx,
								Slides: []model.Slide{{Title: "Intro", Body: "Hello"}},
							},
						},
					},
				},
			},
		},
		{
			Name: "comparison.xlsx",
			Kind: model.NodeFile,
			Artifact: &model.Artifact{
				ID:   "a3",
				Name: "comparison.xlsx",
				Kind: model.ArtifactXlsx,
				Grid: [][]string{{"metric", "value"}},
			},
		},
		{Name: "empty", Kind: model.NodeFolder},
	}

	data, err := Build(forest)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	entries := readEntries(t, data)
	if len(entries) != 3 {
		t.Fatalf("expected exactly 3 entries, got %d: %v", len(entries), entryNames(entries))
	}

	expected := []string{
		"reports/summary.html",
		"reports/nested/deck.txt",
		"comparison.csv",
	}
	for _, name := range expected {
		if _, ok := entries[name]; !ok {
			t.Errorf("missing entry %s, have %v", name, entryNames(entries))
		}
	}

	if entries["reports/summary.html"] != "<h1>Summary</h1>" {
		t.Errorf("docx entry content = %q", entries["reports/summary.html"])
	}
}

func entryNames(entries map[string]string) []string {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	return names
}

func TestRenderSlides(t *testing.T) {
	slides := []model.Slide{
		{Title: "Background", Body: "Prior work."},
		{Title: "Method", Body: "Our approach."},
	}

	expected := "Slide 1: Background\nPrior work.\n" +
		"---\n" +
		"Slide 2: Method\nOur approach.\n"

	if got := string(renderSlides(slides)); got != expected {
		t.Errorf("renderSlides() = %q, expected %q", got, expected)
	}

	if got := string(renderSlides(nil)); got != "" {
		t.Errorf("renderSlides(nil) = %q, expected empty", got)
	}
}

func TestRenderGrid_CSVRoundTrip(t *testing.T) {
	grid := [][]string{
		{"name", "quote", "multi"},
		{`plain`, `say "hi"`, "line1\nline2"},
		{`comma, inside`, `""`, ""},
	}

	raw := renderGrid(grid)

	// Every cell must be quoted
	firstLine := strings.SplitN(string(raw), "\n", 2)[0]
	if firstLine != `"name","quote","multi"` {
		t.Errorf("header line = %q, expected every cell quoted", firstLine)
	}

	parsed, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	if err != nil {
		t.Fatalf("standard CSV decoder rejected output: %v", err)
	}
	if !reflect.DeepEqual(parsed, grid) {
		t.Errorf("round trip mismatch:\n got %q\nwant %q", parsed, grid)
	}
}

func TestRenderGrid_MissingCellsSerializeEmpty(t *testing.T) {
	// A JSON null cell decodes to the empty string
	var grid [][]string
	if err := json.Unmarshal([]byte(`[["a",null],["b"]]`), &grid); err != nil {
		t.Fatalf("failed to decode grid: %v", err)
	}

	if got := string(renderGrid(grid)); got != "\"a\",\"\"\n\"b\"\n" {
		t.Errorf("renderGrid() = %q", got)
	}
}

func TestRewriteExtension(t *testing.T) {
	tests := []struct {
		name     string
		ext      string
		expected string
	}{
		{"summary.docx", ".html", "summary.html"},
		{"deck.pptx", ".txt", "deck.txt"},
		{"comparison.xlsx", ".csv", "comparison.csv"},
		{"noext", ".html", "noext.html"},
		{"two.dots.docx", ".html", "two.dots.html"},
	}

	for _, test := range tests {
		if got := rewriteExtension(test.name, test.ext); got != test.expected {
			t.Errorf("rewriteExtension(%s, %s) = %s, expected %s", test.name, test.ext, got, test.expected)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	forest := []*model.ArchiveNode{
		{
			Name: "out.xlsx",
			Kind: model.NodeFile,
			Artifact: &model.Artifact{
				Kind: model.ArtifactXlsx,
				Grid: [][]string{{"a", "b"}, {"c", "d"}},
			},
		},
	}

	first, err := Build(forest)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	second, err := Build(forest)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("Build is not deterministic for identical input")
	}
}

func TestLoadBundle(t *testing.T) {
	payload := `[
		{"name":"reports","type":"folder","children":[
			{"name":"summary.docx","type":"file","artifact":{"id":"a1","name":"summary.docx","kind":"docx","html":"<p>x</p>"}}
		]}
	]`

	nodes, err := LoadBundle(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("LoadBundle returned error: %v", err)
	}
	if len(nodes) != 1 || !nodeIsFolder(nodes[0]) {
		t.Fatalf("unexpected forest: %+v", nodes)
	}
	child := nodes[0].Children[0]
	if child.Artifact == nil || child.Artifact.Kind != model.ArtifactDocx {
		t.Errorf("child artifact = %+v, expected docx artifact", child.Artifact)
	}

	if _, err := LoadBundle(strings.NewReader("not json")); err == nil {
		t.Error("expected error for invalid bundle")
	}
}

func nodeIsFolder(n *model.ArchiveNode) bool {
	return n.Kind == model.NodeFolder
}
