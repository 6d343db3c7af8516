package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	apperrors "turismo/pkg/errors"
	"turismo/pkg/logger"
	"turismo/pkg/model"
	"turismo/pkg/view/viewtest"

	"github.com/julienschmidt/httprouter"
)

type mockTourService struct {
	createFunc func(ctx context.Context, in *model.TourInput) (string, error)
	updateFunc func(ctx context.Context, id string, in *model.TourInput) error
	imageFunc  func(ctx context.Context, id string) (*model.Image, error)
}

func (m *mockTourService) List(context.Context) ([]*model.Tour, error) {
	return []*model.Tour{}, nil
}

func (m *mockTourService) GetForEdit(_ context.Context, id string) (*model.Tour, error) {
	return &model.Tour{ID: id}, nil
}

func (m *mockTourService) Create(ctx context.Context, in *model.TourInput) (string, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, in)
	}
	return "x", nil
}

func (m *mockTourService) Update(ctx context.Context, id string, in *model.TourInput) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, in)
	}
	return nil
}

func (m *mockTourService) Delete(context.Context, string) error {
	return nil
}

func (m *mockTourService) Image(ctx context.Context, id string) (*model.Image, error) {
	if m.imageFunc != nil {
		return m.imageFunc(ctx, id)
	}
	return nil, apperrors.New(apperrors.CodeNotFound, "Imagen no encontrada")
}

func serve(svc *mockTourService, req *http.Request) *httptest.ResponseRecorder {
	router := httprouter.New()
	NewTourHandler(svc, &viewtest.Recorder{}, 1<<20, logger.Discard()).RegisterRoutes(router)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

type upload struct {
	contentType string
	data        []byte
}

func multipartRequest(t *testing.T, path string, fields map[string]string, file *upload) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="foto"`)
		h.Set("Content-Type", file.contentType)
		part, err := mw.CreatePart(h)
		if err != nil {
			t.Fatalf("create part: %v", err)
		}
		part.Write(file.data)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestCreate_WithImage(t *testing.T) {
	var got *model.TourInput
	svc := &mockTourService{createFunc: func(_ context.Context, in *model.TourInput) (string, error) {
		got = in
		return "x", nil
	}}

	req := multipartRequest(t, "/nuevo-tour",
		map[string]string{"nameTour": "Machu Picchu", "descripcion": "Full day"},
		&upload{contentType: "image/png", data: []byte{0x89, 0x50, 0x4e, 0x47}})
	rec := serve(svc, req)

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/tour" {
		t.Fatalf("expected redirect to /tour, got %d", rec.Code)
	}
	if *got.NameTour != "Machu Picchu" || got.Image == nil {
		t.Fatalf("unexpected input %+v", got)
	}
	if got.Image.ContentType != "image/png" || !bytes.Equal(got.Image.Data, []byte{0x89, 0x50, 0x4e, 0x47}) {
		t.Errorf("unexpected image %+v", got.Image)
	}
}

func TestUpdate_WithoutFileLeavesImageNil(t *testing.T) {
	var gotID string
	var got *model.TourInput
	svc := &mockTourService{updateFunc: func(_ context.Context, id string, in *model.TourInput) error {
		gotID, got = id, in
		return nil
	}}

	req := multipartRequest(t, "/actualizar-tour", map[string]string{"tourId": "abc", "nameTour": "Paracas"}, nil)
	rec := serve(svc, req)

	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if gotID != "abc" || got.Image != nil {
		t.Errorf("expected no image for id abc, got %q %+v", gotID, got.Image)
	}
}

func TestUpdate_UrlencodedHasNoImage(t *testing.T) {
	var got *model.TourInput
	svc := &mockTourService{updateFunc: func(_ context.Context, _ string, in *model.TourInput) error {
		got = in
		return nil
	}}

	form := url.Values{"tourId": {"abc"}, "descripcion": {"x"}}
	req := httptest.NewRequest(http.MethodPost, "/actualizar-tour", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	serve(svc, req)

	if got == nil || got.Image != nil {
		t.Errorf("unexpected input %+v", got)
	}
}

func TestImage_Streams(t *testing.T) {
	svc := &mockTourService{imageFunc: func(_ context.Context, id string) (*model.Image, error) {
		return &model.Image{Data: []byte("jpegdata"), ContentType: "image/jpeg"}, nil
	}}

	rec := serve(svc, httptest.NewRequest(http.MethodGet, "/tour/imagen/abc", nil))

	if rec.Header().Get("Content-Type") != "image/jpeg" || rec.Body.String() != "jpegdata" {
		t.Errorf("unexpected response %q %q", rec.Header().Get("Content-Type"), rec.Body.String())
	}
	if rec.Header().Get("Content-Disposition") != "" {
		t.Errorf("images are shown inline, got %q", rec.Header().Get("Content-Disposition"))
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected nosniff")
	}
}

func TestImage_HTMLUploadServedAsAttachment(t *testing.T) {
	svc := &mockTourService{imageFunc: func(_ context.Context, id string) (*model.Image, error) {
		return &model.Image{Data: []byte("<script>alert(1)</script>"), ContentType: "text/html"}, nil
	}}

	rec := serve(svc, httptest.NewRequest(http.MethodGet, "/tour/imagen/abc", nil))

	if rec.Body.String() != "<script>alert(1)</script>" {
		t.Errorf("stored bytes must be served unchanged, got %q", rec.Body.String())
	}
	if got := rec.Header().Get("Content-Disposition"); !strings.HasPrefix(got, "attachment") {
		t.Errorf("expected attachment, got %q", got)
	}
	if rec.Header().Get("Content-Security-Policy") != "sandbox" {
		t.Errorf("expected sandbox CSP, got %q", rec.Header().Get("Content-Security-Policy"))
	}
	if rec.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected nosniff")
	}
}

func TestImage_Missing(t *testing.T) {
	rec := serve(&mockTourService{}, httptest.NewRequest(http.MethodGet, "/tour/imagen/abc", nil))

	if rec.Body.String() != "Imagen no encontrada" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}
