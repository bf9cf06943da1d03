package model

// ArtifactKind identifies the document type a generated artifact stands for
type ArtifactKind string

const (
	ArtifactDocx ArtifactKind = "docx"
	ArtifactPptx ArtifactKind = "pptx"
	ArtifactXlsx ArtifactKind = "xlsx"
)

// Slide is one slide record of a pptx artifact
type Slide struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Artifact is an already-generated in-memory document from the local
// generation path. Exactly one content field is meaningful, selected by
// Kind: HTML for docx, Slides for pptx, Grid for xlsx.
type Artifact struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Kind   ArtifactKind `json:"kind"`
	HTML   string       `json:"html,omitempty"`
	Slides []Slide      `json:"slides,omitempty"`
	Grid   [][]string   `json:"grid,omitempty"`
}

// ArchiveNode mirrors ResultNode for the local-generation path: a file node
// references its artifact, a folder node nests children.
type ArchiveNode struct {
	Name     string         `json:"name"`
	Kind     NodeKind       `json:"type"`
	Children []*ArchiveNode `json:"children,omitempty"`
	Artifact *Artifact      `json:"artifact,omitempty"`
}
