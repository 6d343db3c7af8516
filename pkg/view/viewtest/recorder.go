// Package viewtest provides a Renderer double for handler tests.
package viewtest

import (
	"fmt"
	"io"
)

// Recorder remembers the last page rendered and writes its name as the body.
type Recorder struct {
	Page string
	Data any
	Err  error
}

func (r *Recorder) Render(w io.Writer, name string, data any) error {
	if r.Err != nil {
		return r.Err
	}
	r.Page = name
	r.Data = data
	_, err := fmt.Fprintf(w, "page:%s", name)
	return err
}
