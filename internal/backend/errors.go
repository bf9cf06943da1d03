package backend

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// The backend reports failures as a non-2xx status with a JSON body of the
// form {"detail": "..."}. Each operation surfaces that detail verbatim when
// present, otherwise a message derived from the HTTP status. All failures
// are terminal for their operation; there are no retries.

// UploadError reports a failed upload submission
type UploadError struct {
	StatusCode int
	Detail     string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed: %s", e.Detail)
}

// StatusError reports a failed status poll
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status check failed: %s", e.Detail)
}

// TreeError reports a failed result-tree fetch. Once a job is otherwise
// complete this is advisory only and must not fail the job.
type TreeError struct {
	StatusCode int
	Detail     string
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("result tree fetch failed: %s", e.Detail)
}

// errorDetail extracts the backend's {"detail": ...} message from an error
// response body, falling back to the HTTP status text.
func errorDetail(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err == nil && len(body) > 0 {
		var payload struct {
			Detail string `json:"detail"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Detail != "" {
			return payload.Detail
		}
	}
	return fmt.Sprintf("HTTP %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
