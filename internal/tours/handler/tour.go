package handler

import (
	"net/http"

	"turismo/internal/tours/service"
	apperrors "turismo/pkg/errors"
	httputil "turismo/pkg/http"
	"turismo/pkg/logger"
	"turismo/pkg/model"
	"turismo/pkg/view"

	"github.com/julienschmidt/httprouter"
)

const (
	listPath = "/tour"
	idField  = "tourId"
)

type TourHandler struct {
	service service.TourService
	httputil.Responder
}

func NewTourHandler(service service.TourService, renderer view.Renderer, maxMemory int64, log *logger.Logger) *TourHandler {
	return &TourHandler{
		service: service,
		Responder: httputil.Responder{
			View:      renderer,
			Log:       log,
			MaxMemory: maxMemory,
		},
	}
}

func (h *TourHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET(listPath, h.List)
	router.POST("/nuevo-tour", h.Create)
	router.POST("/editar-tour", h.EditRequest)
	router.GET(listPath+"/editar/:id", h.EditForm)
	router.POST("/actualizar-tour", h.Update)
	router.POST("/eliminar-tour", h.Delete)
	router.GET(listPath+"/imagen/:id", h.Image)
}

func (h *TourHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	tours, err := h.service.List(r.Context())
	if err != nil {
		h.Fail(w, "List", err)
		return
	}

	h.Page(w, "List", "tour", struct{ Tours []*model.Tour }{tours}, "Error retrieving tours")
}

func (h *TourHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	in, err := h.decode(r)
	if err != nil {
		h.Fail(w, "Create", apperrors.Validation("Error creando nuevo tour", err))
		return
	}

	if _, err := h.service.Create(r.Context(), in); err != nil {
		h.Fail(w, "Create", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}

func (h *TourHandler) EditRequest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, err := h.FormID(r, idField)
	if err != nil || id == "" {
		h.Fail(w, "EditRequest", apperrors.InvalidInput("Error obteniendo tour para edición"))
		return
	}

	httputil.Redirect(w, r, httputil.EditPath(listPath, id))
}

func (h *TourHandler) EditForm(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tour, err := h.service.GetForEdit(r.Context(), ps.ByName("id"))
	if err != nil {
		h.Fail(w, "EditForm", err)
		return
	}

	h.Page(w, "EditForm", "tourEditar", struct{ Tour *model.Tour }{tour}, "Error obteniendo tour para edición")
}

func (h *TourHandler) Update(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	in, err := h.decode(r)
	if err != nil {
		h.Fail(w, "Update", apperrors.Validation("Error actualizando tour", err))
		return
	}

	if err := h.service.Update(r.Context(), r.Form.Get(idField), in); err != nil {
		h.Fail(w, "Update", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}

func (h *TourHandler) Delete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, err := h.FormID(r, idField)
	if err != nil {
		h.Fail(w, "Delete", apperrors.InvalidInput("Error eliminando tour"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.Fail(w, "Delete", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}

// Image streams the stored tour picture with its declared content type.
// Non image uploads are served as attachments.
func (h *TourHandler) Image(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	img, err := h.service.Image(r.Context(), ps.ByName("id"))
	if err != nil {
		h.Fail(w, "Image", err)
		return
	}

	if err := httputil.WriteUpload(w, img.ContentType, "tour-"+ps.ByName("id"), img.Data); err != nil {
		h.Log.Error("failed to write image", "handler", "Image", "error", err)
	}
}

func (h *TourHandler) decode(r *http.Request) (*model.TourInput, error) {
	var in model.TourInput
	if err := httputil.DecodeForm(r, h.MaxMemory, &in); err != nil {
		return nil, err
	}
	img, err := readImage(r)
	if err != nil {
		return nil, err
	}
	in.Image = img
	return &in, nil
}
