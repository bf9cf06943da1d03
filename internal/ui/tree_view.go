package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/docforge/docforge/internal/model"
)

// ResultTreeView renders a session's result tree. Node identifiers are
// slash-joined child indexes ("0/2/1"); the index maps are rebuilt whenever
// the tree is replaced so stale identifiers never resolve.
type ResultTreeView struct {
	tree *widget.Tree

	nodes    map[widget.TreeNodeID]*model.ResultNode
	children map[widget.TreeNodeID][]widget.TreeNodeID

	// Callback for file node selection
	onFileSelected func(node *model.ResultNode)
}

// NewResultTreeView creates an empty result tree view
func NewResultTreeView() *ResultTreeView {
	tv := &ResultTreeView{
		nodes:    make(map[widget.TreeNodeID]*model.ResultNode),
		children: make(map[widget.TreeNodeID][]widget.TreeNodeID),
	}

	tv.tree = widget.NewTree(
		func(uid widget.TreeNodeID) []widget.TreeNodeID {
			return tv.children[uid]
		},
		func(uid widget.TreeNodeID) bool {
			node, ok := tv.nodes[uid]
			return !ok || node.IsFolder()
		},
		func(branch bool) fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(uid widget.TreeNodeID, branch bool, obj fyne.CanvasObject) {
			node, ok := tv.nodes[uid]
			if !ok {
				return
			}
			label, ok := obj.(*widget.Label)
			if !ok {
				return
			}
			icon := IconFile
			if node.IsFolder() {
				icon = IconFolder
			}
			label.SetText(icon + " " + node.Name)
		},
	)

	tv.tree.OnSelected = func(uid widget.TreeNodeID) {
		node, ok := tv.nodes[uid]
		if !ok {
			return
		}
		if node.IsFolder() {
			tv.tree.ToggleBranch(uid)
			return
		}
		if tv.onFileSelected != nil {
			tv.onFileSelected(node)
		}
	}

	return tv
}

// SetOnFileSelected sets the callback invoked when a file node is selected
func (tv *ResultTreeView) SetOnFileSelected(callback func(node *model.ResultNode)) {
	tv.onFileSelected = callback
}

// SetTree replaces the displayed tree. A nil forest clears the view.
func (tv *ResultTreeView) SetTree(forest []*model.ResultNode) {
	tv.nodes = make(map[widget.TreeNodeID]*model.ResultNode)
	tv.children = make(map[widget.TreeNodeID][]widget.TreeNodeID)

	tv.indexNodes("", forest)

	tv.tree.UnselectAll()
	tv.tree.Refresh()
	tv.tree.OpenAllBranches()
}

// indexNodes walks the forest assigning index-based identifiers
func (tv *ResultTreeView) indexNodes(parent widget.TreeNodeID, nodes []*model.ResultNode) {
	for i, node := range nodes {
		uid := strconv.Itoa(i)
		if parent != "" {
			uid = parent + "/" + uid
		}

		tv.nodes[uid] = node
		tv.children[parent] = append(tv.children[parent], uid)

		if node.IsFolder() {
			tv.indexNodes(uid, node.Children)
		}
	}
}

// Container returns the scrollable container holding the tree
func (tv *ResultTreeView) Container() fyne.CanvasObject {
	return container.NewScroll(tv.tree)
}
