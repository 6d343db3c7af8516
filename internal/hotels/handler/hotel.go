package handler

import (
	"net/http"

	"turismo/internal/hotels/service"
	apperrors "turismo/pkg/errors"
	httputil "turismo/pkg/http"
	"turismo/pkg/logger"
	"turismo/pkg/model"
	"turismo/pkg/view"

	"github.com/julienschmidt/httprouter"
)

const (
	listPath = "/hoteles"
	idField  = "hotelId"
)

type HotelHandler struct {
	service service.HotelService
	httputil.Responder
}

func NewHotelHandler(service service.HotelService, renderer view.Renderer, maxMemory int64, log *logger.Logger) *HotelHandler {
	return &HotelHandler{
		service: service,
		Responder: httputil.Responder{
			View:      renderer,
			Log:       log,
			MaxMemory: maxMemory,
		},
	}
}

func (h *HotelHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET(listPath, h.List)
	router.POST("/nuevo-hotel", h.Create)
	router.POST("/editar-hotel", h.EditRequest)
	router.GET(listPath+"/editar/:id", h.EditForm)
	router.POST("/actualizar-hotel", h.Update)
	router.POST("/eliminar-hotel", h.Delete)
}

func (h *HotelHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	hotels, err := h.service.List(r.Context())
	if err != nil {
		h.Fail(w, "List", err)
		return
	}

	h.Page(w, "List", "hoteles", struct{ Hoteles []*model.Hotel }{hotels}, "Error retrieving hotels")
}

func (h *HotelHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in model.HotelInput
	if err := httputil.DecodeForm(r, h.MaxMemory, &in); err != nil {
		h.Fail(w, "Create", apperrors.Validation("Error creando nuevo hotel", err))
		return
	}

	if _, err := h.service.Create(r.Context(), &in); err != nil {
		h.Fail(w, "Create", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}

func (h *HotelHandler) EditRequest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, err := h.FormID(r, idField)
	if err != nil || id == "" {
		h.Fail(w, "EditRequest", apperrors.InvalidInput("Error obteniendo hotel para edición"))
		return
	}

	httputil.Redirect(w, r, httputil.EditPath(listPath, id))
}

func (h *HotelHandler) EditForm(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	hotel, err := h.service.GetForEdit(r.Context(), ps.ByName("id"))
	if err != nil {
		h.Fail(w, "EditForm", err)
		return
	}

	h.Page(w, "EditForm", "hotelesEditar", struct{ Hotel *model.Hotel }{hotel}, "Error obteniendo hotel para edición")
}

func (h *HotelHandler) Update(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in model.HotelInput
	if err := httputil.DecodeForm(r, h.MaxMemory, &in); err != nil {
		h.Fail(w, "Update", apperrors.Validation("Error actualizando hotel", err))
		return
	}

	if err := h.service.Update(r.Context(), r.Form.Get(idField), &in); err != nil {
		h.Fail(w, "Update", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}

func (h *HotelHandler) Delete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, err := h.FormID(r, idField)
	if err != nil {
		h.Fail(w, "Delete", apperrors.InvalidInput("Error eliminando hotel"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.Fail(w, "Delete", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}
