package http

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strings"

	apperrors "turismo/pkg/errors"
)

const (
	contentTypeText = "text/plain; charset=utf-8"
	contentTypeJSON = "application/json"
)

func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError answers with the user facing message as plain text. Failures are
// reported with 200 so the browser shows the message as the page body.
func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(http.StatusOK)
	_, writeErr := io.WriteString(w, appErr.Message)
	return writeErr
}

// Redirect sends the browser to target after a successful form post.
func Redirect(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusFound)
}

func WriteBlob(w http.ResponseWriter, contentType string, data []byte) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, err := w.Write(data)
	return err
}

// WriteUpload serves bytes whose content type was declared by whoever
// uploaded them. The browser may not sniff or script them, and anything
// that is not an image is offered as a download.
func WriteUpload(w http.ResponseWriter, contentType, filename string, data []byte) error {
	h := w.Header()
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Content-Security-Policy", "sandbox")
	if !isImage(contentType) {
		h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	}
	return WriteBlob(w, contentType, data)
}

func isImage(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.HasPrefix(mediaType, "image/")
}
