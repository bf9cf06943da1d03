package model

// NodeKind discriminates file and folder nodes in result and archive trees
type NodeKind string

const (
	NodeFile   NodeKind = "file"
	NodeFolder NodeKind = "folder"
)

// ResultNode is one node of the file tree the backend produces for a
// completed session. The JSON shape comes from the tree endpoint verbatim:
// a file node carries a path and never children, a folder node carries
// children and never a path. The tree is read-only after decoding.
type ResultNode struct {
	Name     string        `json:"name"`
	Kind     NodeKind      `json:"type"`
	Path     string        `json:"path,omitempty"`
	Children []*ResultNode `json:"children,omitempty"`
}

// IsFolder returns true for folder nodes
func (n *ResultNode) IsFolder() bool {
	return n.Kind == NodeFolder
}

// Walk visits every node of the subtree in depth-first order
func (n *ResultNode) Walk(visit func(*ResultNode)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// CountFiles returns the number of file nodes in a forest
func CountFiles(nodes []*ResultNode) int {
	count := 0
	for _, node := range nodes {
		node.Walk(func(n *ResultNode) {
			if n.Kind == NodeFile {
				count++
			}
		})
	}
	return count
}
