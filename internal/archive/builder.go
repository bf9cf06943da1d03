package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/docforge/docforge/internal/model"
)

// Output naming and serialization constants
const (
	// BundleFileName is the fixed name offered for the artifact bundle
	BundleFileName = "docforge-artifacts.zip"

	// BundleMIMEType is the MIME type of the produced archive
	BundleMIMEType = "application/zip"

	// SlideHeaderFormat renders the per-slide header of a pptx artifact
	SlideHeaderFormat = "Slide %d: %s\n"

	// SlideSeparator is the fixed line between two serialized slides
	SlideSeparator = "---\n"

	// Extensions the serializers rewrite artifact names to
	ExtensionHTML = ".html"
	ExtensionTxt  = ".txt"
	ExtensionCSV  = ".csv"
)

// Build converts a forest of archive nodes holding already-generated
// artifacts into a single in-memory zip, recursively mirroring the folder
// structure. File nodes without an artifact are skipped silently. The
// transform is pure: the same tree always produces the same bytes.
func Build(nodes []*model.ArchiveNode) ([]byte, error) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	if err := addNodes(writer, "", nodes); err != nil {
		writer.Close()
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// addNodes writes one tree level into the archive
func addNodes(writer *zip.Writer, prefix string, nodes []*model.ArchiveNode) error {
	for _, node := range nodes {
		if node.Kind == model.NodeFolder {
			if err := addNodes(writer, path.Join(prefix, node.Name), node.Children); err != nil {
				return err
			}
			continue
		}
		if node.Artifact == nil {
			// Defensive default: a file node with nothing to serialize is
			// not an error, it just produces no entry.
			continue
		}

		name, data := serializeArtifact(node.Name, node.Artifact)
		if name == "" {
			continue
		}
		entry, err := writer.Create(path.Join(prefix, name))
		if err != nil {
			return fmt.Errorf("failed to create archive entry %s: %w", name, err)
		}
		if _, err := entry.Write(data); err != nil {
			return fmt.Errorf("failed to write archive entry %s: %w", name, err)
		}
	}
	return nil
}

// serializeArtifact converts one artifact to its concrete file-format
// substitute and the entry name it should be stored under. Unknown kinds
// yield an empty name and are skipped by the caller.
func serializeArtifact(nodeName string, artifact *model.Artifact) (string, []byte) {
	name := nodeName
	if name == "" {
		name = artifact.Name
	}

	switch artifact.Kind {
	case model.ArtifactDocx:
		return rewriteExtension(name, ExtensionHTML), []byte(artifact.HTML)
	case model.ArtifactPptx:
		return rewriteExtension(name, ExtensionTxt), renderSlides(artifact.Slides)
	case model.ArtifactXlsx:
		return rewriteExtension(name, ExtensionCSV), renderGrid(artifact.Grid)
	default:
		return "", nil
	}
}

// renderSlides produces the plain-text substitute of a pptx artifact: a
// fixed header per slide and a fixed separator line between slides.
func renderSlides(slides []model.Slide) []byte {
	var b strings.Builder
	for i, slide := range slides {
		if i > 0 {
			b.WriteString(SlideSeparator)
		}
		fmt.Fprintf(&b, SlideHeaderFormat, i+1, slide.Title)
		b.WriteString(slide.Body)
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// renderGrid produces the CSV substitute of an xlsx artifact. Every cell is
// quoted and embedded quotes are doubled, so any standard CSV decoder
// reproduces the original cells exactly. Missing cells serialize empty.
func renderGrid(grid [][]string) []byte {
	var b strings.Builder
	for _, row := range grid {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// rewriteExtension replaces the file extension of name with ext
func rewriteExtension(name, ext string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}
