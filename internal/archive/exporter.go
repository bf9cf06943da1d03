package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"path"

	"github.com/docforge/docforge/internal/backend"
	"github.com/docforge/docforge/internal/model"
)

// ResultsBundleName is the fixed name offered for an exported result tree
const ResultsBundleName = "docforge-results.zip"

// Exporter packages a completed session's result tree into one zip by
// fetching every file node from the backend's static surface. Individual
// fetch failures are collected and reported, never fatal; the entry layout
// mirrors the tree's folder nesting.
type Exporter struct {
	client *backend.Client
}

// NewExporter creates a results exporter backed by the given client
func NewExporter(client *backend.Client) *Exporter {
	return &Exporter{client: client}
}

// Export downloads every file of the tree and returns the zip bytes plus a
// list of files that could not be fetched.
func (e *Exporter) Export(ctx context.Context, nodes []*model.ResultNode) ([]byte, []string, error) {
	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)

	var failed []string
	if err := e.addNodes(ctx, writer, "", nodes, &failed); err != nil {
		writer.Close()
		return nil, failed, err
	}
	if err := writer.Close(); err != nil {
		return nil, failed, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), failed, nil
}

func (e *Exporter) addNodes(ctx context.Context, writer *zip.Writer, prefix string, nodes []*model.ResultNode, failed *[]string) error {
	for _, node := range nodes {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if node.IsFolder() {
			if err := e.addNodes(ctx, writer, path.Join(prefix, node.Name), node.Children, failed); err != nil {
				return err
			}
			continue
		}
		if node.Path == "" {
			continue
		}

		body, err := e.client.FetchFile(ctx, node.Path)
		if err != nil {
			log.Printf("Export: skipping %s: %v", node.Path, err)
			*failed = append(*failed, fmt.Sprintf("%s (%v)", node.Path, err))
			continue
		}

		entry, err := writer.Create(path.Join(prefix, node.Name))
		if err != nil {
			body.Close()
			return fmt.Errorf("failed to create archive entry %s: %w", node.Name, err)
		}
		_, err = io.Copy(entry, body)
		body.Close()
		if err != nil {
			*failed = append(*failed, fmt.Sprintf("%s (copy error: %v)", node.Path, err))
			continue
		}
	}
	return nil
}
