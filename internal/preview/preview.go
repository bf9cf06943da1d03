// Package preview decides how a result file is shown to the user. The
// decision is a closed tagged dispatch made once per file: office documents
// route through an external web viewer, natively renderable formats load
// directly, everything else is download-only. No content is inspected.
package preview

import (
	"net/url"
	"path"
	"strings"
)

// Kind is the closed set of preview strategies
type Kind int

const (
	// KindOfficeViewer routes the file through the external web viewer
	KindOfficeViewer Kind = iota

	// KindDirect loads the file URL as-is (browser-renderable formats)
	KindDirect

	// KindDownloadOnly offers no inline preview, only a download
	KindDownloadOnly
)

// String returns a human readable strategy name
func (k Kind) String() string {
	switch k {
	case KindOfficeViewer:
		return "office viewer"
	case KindDirect:
		return "direct"
	case KindDownloadOnly:
		return "download only"
	default:
		return "unknown"
	}
}

// OfficeViewerBase is the external viewer endpoint; the direct file URL is
// query-encoded into its src parameter.
const OfficeViewerBase = "https://view.officeapps.live.com/op/view.aspx?src="

// Extension sets per strategy
var (
	officeExtensions = map[string]bool{
		".docx": true,
		".pptx": true,
		".xlsx": true,
	}

	directExtensions = map[string]bool{
		".pdf":  true,
		".png":  true,
		".jpg":  true,
		".txt":  true,
		".json": true,
	}
)

// Target is the resolved preview decision for one file
type Target struct {
	Kind Kind
	URL  string // the URL to open; empty for download-only targets
}

// Resolve maps a direct file URL to its preview target by extension
func Resolve(fileURL string) Target {
	ext := strings.ToLower(path.Ext(pathOf(fileURL)))

	switch {
	case officeExtensions[ext]:
		return Target{
			Kind: KindOfficeViewer,
			URL:  OfficeViewerBase + url.QueryEscape(fileURL),
		}
	case directExtensions[ext]:
		return Target{Kind: KindDirect, URL: fileURL}
	default:
		return Target{Kind: KindDownloadOnly}
	}
}

// pathOf strips query and fragment so the extension check sees the path only
func pathOf(fileURL string) string {
	if parsed, err := url.Parse(fileURL); err == nil {
		return parsed.Path
	}
	return fileURL
}
