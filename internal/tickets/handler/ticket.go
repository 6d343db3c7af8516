package handler

import (
	"fmt"
	"net/http"

	"turismo/internal/tickets/service"
	apperrors "turismo/pkg/errors"
	httputil "turismo/pkg/http"
	"turismo/pkg/logger"
	"turismo/pkg/model"
	"turismo/pkg/view"

	"github.com/julienschmidt/httprouter"
)

const (
	listPath = "/tickets"
	idField  = "ticketId"

	contentTypePDF = "application/pdf"
)

type TicketHandler struct {
	service service.TicketService
	httputil.Responder
}

func NewTicketHandler(service service.TicketService, renderer view.Renderer, maxMemory int64, log *logger.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		Responder: httputil.Responder{
			View:      renderer,
			Log:       log,
			MaxMemory: maxMemory,
		},
	}
}

func (h *TicketHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET(listPath, h.List)
	router.POST("/nuevo-ticket", h.Create)
	router.POST("/editar-ticket", h.EditRequest)
	router.GET(listPath+"/editar/:id", h.EditForm)
	router.POST("/actualizar-ticket", h.Update)
	router.POST("/eliminar-ticket", h.Delete)
	router.GET(listPath+"/pdf/:id", h.ETicket)
}

func (h *TicketHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	listing, err := h.service.List(r.Context())
	if err != nil {
		h.Fail(w, "List", err)
		return
	}

	h.Page(w, "List", "tickets", listing, "Error retrieving tickets")
}

func (h *TicketHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in model.TicketInput
	if err := httputil.DecodeForm(r, h.MaxMemory, &in); err != nil {
		h.Fail(w, "Create", apperrors.Validation("Error creando nuevo ticket", err))
		return
	}

	if _, err := h.service.Create(r.Context(), &in); err != nil {
		h.Fail(w, "Create", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}

func (h *TicketHandler) EditRequest(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, err := h.FormID(r, idField)
	if err != nil || id == "" {
		h.Fail(w, "EditRequest", apperrors.InvalidInput("Error obteniendo ticket para edición"))
		return
	}

	httputil.Redirect(w, r, httputil.EditPath(listPath, id))
}

func (h *TicketHandler) EditForm(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	edit, err := h.service.GetForEdit(r.Context(), ps.ByName("id"))
	if err != nil {
		h.Fail(w, "EditForm", err)
		return
	}

	h.Page(w, "EditForm", "ticketsEditar", edit, "Error obteniendo ticket para edición")
}

func (h *TicketHandler) Update(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var in model.TicketInput
	if err := httputil.DecodeForm(r, h.MaxMemory, &in); err != nil {
		h.Fail(w, "Update", apperrors.Validation("Error actualizando ticket", err))
		return
	}

	if err := h.service.Update(r.Context(), r.Form.Get(idField), &in); err != nil {
		h.Fail(w, "Update", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}

func (h *TicketHandler) Delete(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	id, err := h.FormID(r, idField)
	if err != nil {
		h.Fail(w, "Delete", apperrors.InvalidInput("Error eliminando ticket"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.Fail(w, "Delete", err)
		return
	}

	httputil.Redirect(w, r, listPath)
}

// ETicket serves the ticket as an inline PDF.
func (h *TicketHandler) ETicket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	doc, err := h.service.ETicket(r.Context(), ps.ByName("id"))
	if err != nil {
		h.Fail(w, "ETicket", err)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, doc.Filename))
	if err := httputil.WriteBlob(w, contentTypePDF, doc.Data); err != nil {
		h.Log.Error("failed to write e-ticket", "handler", "ETicket", "error", err)
	}
}
