package http

import (
	"fmt"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/form/v4"
)

// Layouts accepted for date inputs, in the order they are tried.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	time.RFC3339,
}

var formDecoder = newFormDecoder()

func newFormDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.RegisterCustomTypeFunc(func(vals []string) (any, error) {
		return ParseDate(vals[0])
	}, time.Time{})
	return d
}

// ParseDate accepts the values produced by HTML date and datetime-local
// inputs. An empty value is the zero time.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

func IsMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// ParseForm populates r.Form for urlencoded and multipart bodies alike.
func ParseForm(r *http.Request, maxMemory int64) error {
	if IsMultipart(r) {
		return r.ParseMultipartForm(maxMemory)
	}
	return r.ParseForm()
}

// DecodeForm parses the request body and decodes it into dst using `form` tags.
// Numeric fields left empty stay nil; unparsable numbers are an error.
func DecodeForm(r *http.Request, maxMemory int64, dst any) error {
	if err := ParseForm(r, maxMemory); err != nil {
		return fmt.Errorf("failed to parse form: %w", err)
	}
	if err := formDecoder.Decode(dst, r.Form); err != nil {
		return fmt.Errorf("failed to decode form: %w", err)
	}
	return nil
}
