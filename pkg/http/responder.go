package http

import (
	"bytes"
	"net/http"
	"net/url"
	"strings"

	apperrors "turismo/pkg/errors"
	"turismo/pkg/logger"
	"turismo/pkg/view"
)

const contentTypeHTML = "text/html; charset=utf-8"

// WriteHTML renders page fully before touching w, so a failed render can
// still be answered with an error message.
func WriteHTML(w http.ResponseWriter, renderer view.Renderer, page string, data any) error {
	var buf bytes.Buffer
	if err := renderer.Render(&buf, page, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	_, err := buf.WriteTo(w)
	return err
}

// Responder bundles the response helpers shared by the entity handlers.
type Responder struct {
	View      view.Renderer
	Log       *logger.Logger
	MaxMemory int64
}

// Fail answers with err's user facing message and logs if even that fails.
func (rs Responder) Fail(w http.ResponseWriter, handler string, err error) {
	if writeErr := WriteError(w, err); writeErr != nil {
		rs.Log.Error("failed to write error response", "handler", handler, "operation", "WriteError", "error", writeErr)
	}
}

// Page renders a view. A render failure becomes failMsg.
func (rs Responder) Page(w http.ResponseWriter, handler, page string, data any, failMsg string) {
	if err := WriteHTML(w, rs.View, page, data); err != nil {
		rs.Log.Error("failed to render page", "handler", handler, "page", page, "error", err)
		rs.Fail(w, handler, apperrors.Internal(failMsg, err))
	}
}

// FormID parses the form and returns the trimmed value of field.
func (rs Responder) FormID(r *http.Request, field string) (string, error) {
	if err := ParseForm(r, rs.MaxMemory); err != nil {
		return "", err
	}
	return strings.TrimSpace(r.Form.Get(field)), nil
}

// EditPath builds the edit form URL for id under base, e.g. /hoteles/editar/{id}.
func EditPath(base, id string) string {
	return base + "/editar/" + url.PathEscape(id)
}
