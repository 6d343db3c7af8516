package handler

import (
	"net/http"

	"turismo/internal/reservations/service"
	apperrors "turismo/pkg/errors"
	httputil "turismo/pkg/http"
	"turismo/pkg/logger"
	"turismo/pkg/model"
	"turismo/pkg/view"

	"github.com/julienschmidt/httprouter"
)

const (
	listPath = "/reservaciones"
	idField  = "reservacionId"
)

type ReservationHandler struct {
	service service.ReservationService
	httputil.Responder
}

func NewReservationHandler(service service.ReservationService, renderer view.Renderer, maxMemory int64, log *logger.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		Responder: httputil.Responder{
			View:      renderer,
			Log:       log,
			MaxMemory: maxMemory,
		},
	}
}

func (h *ReservationHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET(listPath, h.List)
	router.POST("/nueva-reservacion", h.Create)
	router.POST("/editar-reservacion", h.EditRequest)
	router.GET(listPath+"/editar/:id", h.EditForm)
	router.POST("/actualizar-reservacion", h.Update)
	router.POST("/eliminar-reservacion", h.Delete)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	listing, err := h.service.List(r.Context())
	if err != nil {
		h.Fail(w, "List", err)
		return
	}

	h.Page(w, "List", "reservaciones", listing, "Error retrieving reservations")
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in model.ReservationInput
	if err := httputil.DecodeForm(r, h.MaxMemory, &in); err != nil {
		h.Fail(w, "Create", apperrors.Validation("Error creando nueva reservación", err))
		return
	}

	if _, err := h.service.Create(r.Context(), &in); err != nil {
		h.Fail(w, "Create", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}

func (h *ReservationHandler) EditRequest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, err := h.FormID(r, idField)
	if err != nil || id == "" {
		h.Fail(w, "EditRequest", apperrors.InvalidInput("Error obteniendo reservación para edición"))
		return
	}

	httputil.Redirect(w, r, httputil.EditPath(listPath, id))
}

func (h *ReservationHandler) EditForm(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	edit, err := h.service.GetForEdit(r.Context(), ps.ByName("id"))
	if err != nil {
		h.Fail(w, "EditForm", err)
		return
	}

	h.Page(w, "EditForm", "reservacionesEditar", edit, "Error obteniendo reservación para edición")
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in model.ReservationInput
	if err := httputil.DecodeForm(r, h.MaxMemory, &in); err != nil {
		h.Fail(w, "Update", apperrors.Validation("Error actualizando reservación", err))
		return
	}

	if err := h.service.Update(r.Context(), r.Form.Get(idField), &in); err != nil {
		h.Fail(w, "Update", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, err := h.FormID(r, idField)
	if err != nil {
		h.Fail(w, "Delete", apperrors.InvalidInput("Error eliminando reservación"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.Fail(w, "Delete", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}
