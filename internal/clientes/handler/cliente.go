package handler

import (
	"net/http"

	"turismo/internal/clientes/service"
	apperrors "turismo/pkg/errors"
	httputil "turismo/pkg/http"
	"turismo/pkg/logger"
	"turismo/pkg/model"
	"turismo/pkg/view"

	"github.com/julienschmidt/httprouter"
)

const (
	listPath = "/clientes"
	idField  = "clienteId"
)

type ClienteHandler struct {
	service service.ClienteService
	httputil.Responder
}

func NewClienteHandler(service service.ClienteService, renderer view.Renderer, maxMemory int64, log *logger.Logger) *ClienteHandler {
	return &ClienteHandler{
		service: service,
		Responder: httputil.Responder{
			View:      renderer,
			Log:       log,
			MaxMemory: maxMemory,
		},
	}
}

func (h *ClienteHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET(listPath, h.List)
	router.POST("/nuevo-cliente", h.Create)
	router.POST("/editar-cliente", h.EditRequest)
	router.GET(listPath+"/editar/:id", h.EditForm)
	router.POST("/actualizar-cliente", h.Update)
	router.POST("/eliminar-cliente", h.Delete)
}

func (h *ClienteHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	clientes, err := h.service.List(r.Context())
	if err != nil {
		h.Fail(w, "List", err)
		return
	}

	h.Page(w, "List", "clientes", struct{ Clientes []*model.Cliente }{clientes}, "Error retrieving clientes")
}

func (h *ClienteHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in model.ClienteInput
	if err := httputil.DecodeForm(r, h.MaxMemory, &in); err != nil {
		h.Fail(w, "Create", apperrors.Validation("Error creando nuevo cliente", err))
		return
	}

	if _, err := h.service.Create(r.Context(), &in); err != nil {
		h.Fail(w, "Create", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}

func (h *ClienteHandler) EditRequest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, err := h.FormID(r, idField)
	if err != nil || id == "" {
		h.Fail(w, "EditRequest", apperrors.InvalidInput("Error obteniendo cliente para edición"))
		return
	}

	httputil.Redirect(w, r, httputil.EditPath(listPath, id))
}

func (h *ClienteHandler) EditForm(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	cliente, err := h.service.GetForEdit(r.Context(), ps.ByName("id"))
	if err != nil {
		h.Fail(w, "EditForm", err)
		return
	}

	h.Page(w, "EditForm", "clientesEditar", struct{ Cliente *model.Cliente }{cliente}, "Error obteniendo cliente para edición")
}

func (h *ClienteHandler) Update(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in model.ClienteInput
	if err := httputil.DecodeForm(r, h.MaxMemory, &in); err != nil {
		h.Fail(w, "Update", apperrors.Validation("Error actualizando cliente", err))
		return
	}

	if err := h.service.Update(r.Context(), r.Form.Get(idField), &in); err != nil {
		h.Fail(w, "Update", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}

func (h *ClienteHandler) Delete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, err := h.FormID(r, idField)
	if err != nil {
		h.Fail(w, "Delete", apperrors.InvalidInput("Error eliminando cliente"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.Fail(w, "Delete", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}
