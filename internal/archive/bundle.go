package archive

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/docforge/docforge/internal/model"
)

// LoadBundle decodes an artifact bundle produced by the local generation
// path: a JSON forest of archive nodes whose file nodes embed their
// artifacts.
func LoadBundle(r io.Reader) ([]*model.ArchiveNode, error) {
	var nodes []*model.ArchiveNode
	if err := json.NewDecoder(r).Decode(&nodes); err != nil {
		return nil, fmt.Errorf("invalid artifact bundle: %w", err)
	}
	return nodes, nil
}
