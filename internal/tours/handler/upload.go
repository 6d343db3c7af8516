package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	httputil "turismo/pkg/http"
	"turismo/pkg/model"
)

const imageField = "image"

// readImage returns the uploaded file of the image field with its declared
// content type, or nil when none was sent. The form must already be parsed.
func readImage(r *http.Request) (*model.Image, error) {
	if !httputil.IsMultipart(r) || r.MultipartForm == nil {
		return nil, nil
	}

	file, header, err := r.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded image: %w", err)
	}
	defer file.Close()

	if header.Size == 0 && header.Filename == "" {
		return nil, nil
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded image: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	return &model.Image{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
	}, nil
}
