package handler

import (
	"net/http"

	"turismo/internal/vuelos/service"
	apperrors "turismo/pkg/errors"
	httputil "turismo/pkg/http"
	"turismo/pkg/logger"
	"turismo/pkg/model"
	"turismo/pkg/view"

	"github.com/julienschmidt/httprouter"
)

const (
	listPath = "/vuelos"
	idField  = "vueloId"
)

type VueloHandler struct {
	service service.VueloService
	httputil.Responder
}

func NewVueloHandler(service service.VueloService, renderer view.Renderer, maxMemory int64, log *logger.Logger) *VueloHandler {
	return &VueloHandler{
		service: service,
		Responder: httputil.Responder{
			View:      renderer,
			Log:       log,
			MaxMemory: maxMemory,
		},
	}
}

func (h *VueloHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET(listPath, h.List)
	router.POST("/nuevo-vuelo", h.Create)
	router.POST("/editar-vuelo", h.EditRequest)
	router.GET(listPath+"/editar/:id", h.EditForm)
	router.POST("/actualizar-vuelo", h.Update)
	router.POST("/eliminar-vuelo", h.Delete)
}

func (h *VueloHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	vuelos, err := h.service.List(r.Context())
	if err != nil {
		h.Fail(w, "List", err)
		return
	}

	h.Page(w, "List", "vuelos", struct{ Vuelos []*model.Vuelo }{vuelos}, "Error retrieving vuelos")
}

func (h *VueloHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in model.VueloInput
	if err := httputil.DecodeForm(r, h.MaxMemory, &in); err != nil {
		h.Fail(w, "Create", apperrors.Validation("Error creando nuevo vuelo", err))
		return
	}

	if _, err := h.service.Create(r.Context(), &in); err != nil {
		h.Fail(w, "Create", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}

func (h *VueloHandler) EditRequest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, err := h.FormID(r, idField)
	if err != nil || id == "" {
		h.Fail(w, "EditRequest", apperrors.InvalidInput("Error obteniendo vuelo para edición"))
		return
	}

	httputil.Redirect(w, r, httputil.EditPath(listPath, id))
}

func (h *VueloHandler) EditForm(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	vuelo, err := h.service.GetForEdit(r.Context(), ps.ByName("id"))
	if err != nil {
		h.Fail(w, "EditForm", err)
		return
	}

	h.Page(w, "EditForm", "vuelosEditar", struct{ Vuelo *model.Vuelo }{vuelo}, "Error obteniendo vuelo para edición")
}

func (h *VueloHandler) Update(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in model.VueloInput
	if err := httputil.DecodeForm(r, h.MaxMemory, &in); err != nil {
		h.Fail(w, "Update", apperrors.Validation("Error actualizando vuelo", err))
		return
	}

	if err := h.service.Update(r.Context(), r.Form.Get(idField), &in); err != nil {
		h.Fail(w, "Update", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}

func (h *VueloHandler) Delete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, err := h.FormID(r, idField)
	if err != nil {
		h.Fail(w, "Delete", apperrors.InvalidInput("Error eliminando vuelo"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.Fail(w, "Delete", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}
