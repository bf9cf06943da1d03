package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/docforge/docforge/internal/model"
)

// Endpoint paths of the consumed backend surface
const (
	UploadPath       = "/upload-and-process/"
	StatusPathPrefix = "/status/"
	DownloadPrefix   = "/download-result/"
	StaticPrefix     = "/static-results/"

	UploadFieldName = "file"

	DefaultBaseURL = "http://localhost:8000"
)

// Job status values the backend reports. There is no failure value; a
// backend-side failure only ever surfaces as a non-2xx poll response.
const (
	StatusProcessing = "processing"
	StatusComplete   = "complete"
)

const (
	requestTimeout   = 60 * time.Second
	maxErrorBodySize = 8 * 1024
)

// UploadReceipt is the backend's response to a successful upload
type UploadReceipt struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	Filename  string `json:"filename"`
}

// StatusResponse is one poll result for a session
type StatusResponse struct {
	Status    string `json:"status"`
	SessionID string `json:"session_id"`
	ResultURL string `json:"result_url,omitempty"`
	TreeURL   string `json:"tree_url,omitempty"`
}

// Client is a thin single-shot client for the processing backend. It never
// retries; poll cadence is owned by the caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client for the given base URL
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// BaseURL returns the configured backend base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SubmitUpload sends the PDF as a multipart body and returns the receipt
// identifying the processing session. The backend starts processing
// asynchronously; completion is observed via Status.
func (c *Client) SubmitUpload(ctx context.Context, filename string, content io.Reader) (*UploadReceipt, error) {
	var body strings.Builder
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(UploadFieldName, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, fmt.Errorf("failed to read upload content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+UploadPath, strings.NewReader(body.String()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UploadError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UploadError{StatusCode: resp.StatusCode, Detail: errorDetail(resp)}
	}

	var receipt UploadReceipt
	if err := json.NewDecoder(resp.Body).Decode(&receipt); err != nil {
		return nil, &UploadError{StatusCode: resp.StatusCode, Detail: "invalid upload response: " + err.Error()}
	}
	return &receipt, nil
}

// Status polls the processing state of one session. Pure query; no side
// effect beyond the network call.
func (c *Client) Status(ctx context.Context, sessionID string) (*StatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+StatusPathPrefix+sessionID, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &StatusError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Detail: errorDetail(resp)}
	}

	var status StatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, &StatusError{StatusCode: resp.StatusCode, Detail: "invalid status response: " + err.Error()}
	}
	return &status, nil
}

// FetchTree retrieves the result file tree for a completed session. The
// tree URL comes from the status response and may be relative to the base.
func (c *Client) FetchTree(ctx context.Context, treeURL string) ([]*model.ResultNode, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolveURL(treeURL), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TreeError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TreeError{StatusCode: resp.StatusCode, Detail: errorDetail(resp)}
	}

	var tree []*model.ResultNode
	if err := json.NewDecoder(resp.Body).Decode(&tree); err != nil {
		return nil, &TreeError{StatusCode: resp.StatusCode, Detail: "invalid tree response: " + err.Error()}
	}
	return tree, nil
}

// FetchFile streams the raw bytes of one result file. The caller must close
// the returned reader.
func (c *Client) FetchFile(ctx context.Context, path string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.FileURL(path), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, fmt.Errorf("file fetch failed: %s", errorDetail(resp))
	}
	return resp.Body, nil
}

// DownloadURL builds the download URL for a session's primary result.
// Pure function, no I/O.
func (c *Client) DownloadURL(sessionID string) string {
	return c.baseURL + DownloadPrefix + sessionID
}

// FileURL builds the static URL for a result file path taken verbatim from
// a tree node. Pure function, no I/O.
func (c *Client) FileURL(path string) string {
	return c.baseURL + StaticPrefix + strings.TrimLeft(path, "/")
}

// resolveURL completes backend-relative URLs like "/results-tree/<id>"
func (c *Client) resolveURL(raw string) string {
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return c.baseURL + raw
}
