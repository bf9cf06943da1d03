package backend

import (
	"context"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/docforge/docforge/internal/model"
)

func TestSubmitUpload_Success(t *testing.T) {
	var gotField, gotFilename, gotContent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != UploadPath {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		mediaType, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != "multipart/form-data" {
			t.Fatalf("expected multipart/form-data, got %q (%v)", mediaType, err)
		}
		_ = params

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("failed to parse multipart form: %v", err)
		}
		file, header, err := r.FormFile(UploadFieldName)
		if err != nil {
			t.Fatalf("missing %q field: %v", UploadFieldName, err)
		}
		defer file.Close()

		gotField = UploadFieldName
		gotFilename = header.Filename
		data, _ := io.ReadAll(file)
		gotContent = string(data)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"File upload successful. Processing started.","session_id":"aB3xK9Lm","filename":"paper.pdf"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	receipt, err := client.SubmitUpload(context.Background(), "paper.pdf", strings.NewReader("%PDF-1.7 fake"))
	if err != nil {
		t.Fatalf("SubmitUpload returned error: %v", err)
	}

	if receipt.SessionID != "aB3xK9Lm" {
		t.Errorf("SessionID = %q, expected aB3xK9Lm", receipt.SessionID)
	}
	if receipt.Filename != "paper.pdf" {
		t.Errorf("Filename = %q, expected paper.pdf", receipt.Filename)
	}
	if gotField != UploadFieldName || gotFilename != "paper.pdf" || gotContent != "%PDF-1.7 fake" {
		t.Errorf("server saw field=%q filename=%q content=%q", gotField, gotFilename, gotContent)
	}
}

func TestSubmitUpload_BackendDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"Failed to save file: disk full"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.SubmitUpload(context.Background(), "paper.pdf", strings.NewReader("x"))

	var uploadErr *UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("expected *UploadError, got %T (%v)", err, err)
	}
	if uploadErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, expected 500", uploadErr.StatusCode)
	}
	if uploadErr.Detail != "Failed to save file: disk full" {
		t.Errorf("Detail = %q, expected backend message verbatim", uploadErr.Detail)
	}
}

func TestSubmitUpload_StatusDerivedMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.SubmitUpload(context.Background(), "paper.pdf", strings.NewReader("x"))

	var uploadErr *UploadError
	if !errors.As(err, &uploadErr) {
		t.Fatalf("expected *UploadError, got %T (%v)", err, err)
	}
	if !strings.Contains(uploadErr.Detail, "502") {
		t.Errorf("Detail = %q, expected HTTP-status-derived message", uploadErr.Detail)
	}
}

func TestStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != StatusPathPrefix+"aB3xK9Lm" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"complete","session_id":"aB3xK9Lm","result_url":"/download-result/aB3xK9Lm","tree_url":"/results-tree/aB3xK9Lm"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	status, err := client.Status(context.Background(), "aB3xK9Lm")
	if err != nil {
		t.Fatalf("Status returned error: %v", err)
	}

	if status.Status != StatusComplete {
		t.Errorf("Status = %q, expected %q", status.Status, StatusComplete)
	}
	if status.TreeURL != "/results-tree/aB3xK9Lm" {
		t.Errorf("TreeURL = %q, expected /results-tree/aB3xK9Lm", status.TreeURL)
	}
}

func TestStatus_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Session ID not found."}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Status(context.Background(), "missing0")

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %T (%v)", err, err)
	}
	if statusErr.Detail != "Session ID not found." {
		t.Errorf("Detail = %q, expected backend message verbatim", statusErr.Detail)
	}
}

func TestFetchTree(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/results-tree/aB3xK9Lm" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name":"comparison.xlsx","type":"file","path":"aB3xK9Lm/comparison.xlsx"},
			{"name":"paper","type":"folder","children":[
				{"name":"summary.docx","type":"file","path":"aB3xK9Lm/paper/summary.docx"}
			]}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	tree, err := client.FetchTree(context.Background(), "/results-tree/aB3xK9Lm")
	if err != nil {
		t.Fatalf("FetchTree returned error: %v", err)
	}

	if len(tree) != 2 {
		t.Fatalf("expected 2 root nodes, got %d", len(tree))
	}
	if tree[0].Kind != model.NodeFile || tree[0].Path != "aB3xK9Lm/comparison.xlsx" {
		t.Errorf("first node = %+v, expected file with path", tree[0])
	}
	if !tree[1].IsFolder() || len(tree[1].Children) != 1 {
		t.Errorf("second node should be folder with one child, got %+v", tree[1])
	}
	if tree[1].Children[0].Name != "summary.docx" {
		t.Errorf("child name = %q, expected summary.docx", tree[1].Children[0].Name)
	}
}

func TestFetchTree_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Session ID not found."}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchTree(context.Background(), "/results-tree/missing0")

	var treeErr *TreeError
	if !errors.As(err, &treeErr) {
		t.Fatalf("expected *TreeError, got %T (%v)", err, err)
	}
}

func TestPureURLBuilders(t *testing.T) {
	client := NewClient("http://backend:8000/")

	if got := client.DownloadURL("aB3xK9Lm"); got != "http://backend:8000/download-result/aB3xK9Lm" {
		t.Errorf("DownloadURL = %q", got)
	}
	if got := client.FileURL("aB3xK9Lm/paper/summary.docx"); got != "http://backend:8000/static-results/aB3xK9Lm/paper/summary.docx" {
		t.Errorf("FileURL = %q", got)
	}
	// Determinism: same input, same output
	if client.DownloadURL("aB3xK9Lm") != client.DownloadURL("aB3xK9Lm") {
		t.Error("DownloadURL should be deterministic")
	}
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client := NewClient("")
	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL = %q, expected %q", client.BaseURL(), DefaultBaseURL)
	}
}
