package roster

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// ErrorResponse is the JSON body of every failed roster request
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Handlers contains all HTTP handlers for names and saved lists
type Handlers struct {
	manager *Manager
}

// NewHandlers creates a new roster handlers instance
func NewHandlers(manager *Manager) *Handlers {
	return &Handlers{
		manager: manager,
	}
}

// RegisterRoutes registers all name and list routes
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Route("/names", func(r chi.Router) {
		r.Get("/", h.ListNames)
		r.Post("/", h.AddName)
		r.Delete("/", h.ClearNames)
		r.Post("/import", h.ImportNames)
		r.Put("/{nameID}", h.EditName)
		r.Delete("/{nameID}", h.RemoveName)
	})

	r.Route("/lists", func(r chi.Router) {
		r.Get("/", h.ListLists)
		r.Post("/", h.SaveList)
		r.Get("/{listID}", h.GetList)
		r.Put("/{listID}", h.UpdateList)
		r.Delete("/{listID}", h.RemoveList)
		r.Post("/{listID}/load", h.LoadList)
	})
}

// ListNames returns the loose roster
func (h *Handlers) ListNames(w http.ResponseWriter, r *http.Request) {
	names, err := h.manager.ListNames(r.Context())
	if err != nil {
		writeError(w, r, err, "failed to list names")
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"names": names,
		"count": len(names),
	})
}

// AddName appends a name to the loose roster
func (h *Handlers) AddName(w http.ResponseWriter, r *http.Request) {
	var req NameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, r, "invalid request body", http.StatusBadRequest)
		return
	}

	name, err := h.manager.AddName(r.Context(), req.Value)
	if err != nil {
		writeError(w, r, err, "failed to add name")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, name)
}

// EditName changes the value of a loose name
func (h *Handlers) EditName(w http.ResponseWriter, r *http.Request) {
	var req NameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, r, "invalid request body", http.StatusBadRequest)
		return
	}

	name, err := h.manager.EditName(r.Context(), chi.URLParam(r, "nameID"), req.Value)
	if err != nil {
		writeError(w, r, err, "failed to edit name")
		return
	}

	render.JSON(w, r, name)
}

// RemoveName deletes a loose name
func (h *Handlers) RemoveName(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.RemoveName(r.Context(), chi.URLParam(r, "nameID")); err != nil {
		writeError(w, r, err, "failed to remove name")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearNames removes every loose name
func (h *Handlers) ClearNames(w http.ResponseWriter, r *http.Request) {
	removed, err := h.manager.ClearNames(r.Context())
	if err != nil {
		writeError(w, r, err, "failed to clear names")
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"removed": removed,
	})
}

// ImportNames appends names parsed from free text
func (h *Handlers) ImportNames(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, r, "invalid request body", http.StatusBadRequest)
		return
	}

	added, err := h.manager.ImportNames(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, err, "failed to import names")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]interface{}{
		"names": added,
		"count": len(added),
	})
}

// ListLists returns every saved list without names
func (h *Handlers) ListLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.manager.ListLists(r.Context())
	if err != nil {
		writeError(w, r, err, "failed to list saved lists")
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"lists": lists,
		"count": len(lists),
	})
}

// SaveList stores a saved list, snapshotting the roster when no names are given
func (h *Handlers) SaveList(w http.ResponseWriter, r *http.Request) {
	var req SaveListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, r, "invalid request body", http.StatusBadRequest)
		return
	}

	var (
		list *List
		err  error
	)
	if req.Names != nil {
		list, err = h.manager.CreateList(r.Context(), req.Title, *req.Names)
	} else {
		list, err = h.manager.SaveList(r.Context(), req.Title)
	}
	if err != nil {
		writeError(w, r, err, "failed to save list")
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, list)
}

// GetList returns a saved list with its names
func (h *Handlers) GetList(w http.ResponseWriter, r *http.Request) {
	list, err := h.manager.GetList(r.Context(), chi.URLParam(r, "listID"))
	if err != nil {
		writeError(w, r, err, "failed to get list")
		return
	}

	render.JSON(w, r, list)
}

// UpdateList replaces a saved list's title and names
func (h *Handlers) UpdateList(w http.ResponseWriter, r *http.Request) {
	var req UpdateListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, r, "invalid request body", http.StatusBadRequest)
		return
	}

	list, err := h.manager.UpdateList(r.Context(), chi.URLParam(r, "listID"), req.Title, req.Names)
	if err != nil {
		writeError(w, r, err, "failed to update list")
		return
	}

	render.JSON(w, r, list)
}

// RemoveList deletes a saved list
func (h *Handlers) RemoveList(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.RemoveList(r.Context(), chi.URLParam(r, "listID")); err != nil {
		writeError(w, r, err, "failed to remove list")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// LoadList appends a saved list to the loose roster
func (h *Handlers) LoadList(w http.ResponseWriter, r *http.Request) {
	added, err := h.manager.LoadList(r.Context(), chi.URLParam(r, "listID"))
	if err != nil {
		writeError(w, r, err, "failed to load list")
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"names": added,
		"count": len(added),
	})
}

// writeError maps a manager error to its HTTP status
func writeError(w http.ResponseWriter, r *http.Request, err error, message string) {
	switch {
	case errors.Is(err, ErrNameNotFound), errors.Is(err, ErrListNotFound):
		writeErrorResponse(w, r, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrEmptyName), errors.Is(err, ErrEmptyTitle):
		writeErrorResponse(w, r, err.Error(), http.StatusBadRequest)
	default:
		log.Error(message, "error", err)
		writeErrorResponse(w, r, "Internal server error", http.StatusInternalServerError)
	}
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, message string, status int) {
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{
		Error:   message,
		Code:    status,
		Message: message,
	})
}
