package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/render"

	"github.com/sorteio/api/internal/draw"
	"github.com/sorteio/api/internal/prefs"
	"github.com/sorteio/api/internal/roster"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Handler struct {
	drawService  *draw.Service
	prefsManager *prefs.Manager
}

func NewHandler(drawService *draw.Service, prefsManager *prefs.Manager) *Handler {
	return &Handler{
		drawService:  drawService,
		prefsManager: prefsManager,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
		"service":   "sorteio-api",
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, response)
}

func (h *Handler) DrawNames(w http.ResponseWriter, r *http.Request) {
	var req draw.NamesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.drawService.DrawNames(r.Context(), req)
	if err != nil {
		h.renderDrawError(w, r, "failed to draw names", err)
		return
	}

	if result.Truncated {
		log.Debug("name draw truncated to pool size", "requested", result.Requested, "pool_size", result.PoolSize)
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

func (h *Handler) DrawNumbers(w http.ResponseWriter, r *http.Request) {
	var req draw.NumbersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.drawService.DrawNumbers(r.Context(), req)
	if err != nil {
		h.renderDrawError(w, r, "failed to draw numbers", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

func (h *Handler) DrawSequence(w http.ResponseWriter, r *http.Request) {
	var req draw.SequenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.drawService.DrawSequence(r.Context(), req)
	if err != nil {
		h.renderDrawError(w, r, "failed to generate sequence", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

func (h *Handler) DrawGroups(w http.ResponseWriter, r *http.Request) {
	var req draw.GroupsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.drawService.DrawGroups(r.Context(), req)
	if err != nil {
		h.renderDrawError(w, r, "failed to draw groups", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

// DrawWeighted picks a single winner with weighted odds.
func (h *Handler) DrawWeighted(w http.ResponseWriter, r *http.Request) {
	var req draw.WeightedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.drawService.DrawWeighted(r.Context(), req)
	if err != nil {
		h.renderDrawError(w, r, "failed to draw weighted raffle", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

func (h *Handler) DrawElimination(w http.ResponseWriter, r *http.Request) {
	var req draw.EliminationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.drawService.DrawElimination(r.Context(), req)
	if err != nil {
		h.renderDrawError(w, r, "failed to draw elimination raffle", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

// PlanGroups previews how a participant count divides, without drawing.
func (h *Handler) PlanGroups(w http.ResponseWriter, r *http.Request) {
	participants, err := strconv.Atoi(r.URL.Query().Get("participants"))
	if err != nil || participants < 0 {
		h.renderError(w, r, http.StatusBadRequest, "participants must be a non-negative integer", err)
		return
	}

	membersPerGroup, err := strconv.Atoi(r.URL.Query().Get("members_per_group"))
	if err != nil || membersPerGroup < 1 {
		h.renderError(w, r, http.StatusBadRequest, draw.ErrInvalidGroupSize.Error(), err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, draw.PlanGroups(participants, membersPerGroup))
}

func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	preferences, err := h.prefsManager.Get(r.Context())
	if err != nil {
		h.renderError(w, r, http.StatusInternalServerError, "failed to load preferences", err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, preferences)
}

func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Theme    *prefs.Theme    `json:"theme"`
		Language *prefs.Language `json:"language"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderError(w, r, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if req.Theme != nil && !req.Theme.Valid() {
		h.renderError(w, r, http.StatusBadRequest, prefs.ErrInvalidTheme.Error(), nil)
		return
	}
	if req.Language != nil && !req.Language.Valid() {
		h.renderError(w, r, http.StatusBadRequest, prefs.ErrInvalidLanguage.Error(), nil)
		return
	}

	if req.Theme != nil {
		if err := h.prefsManager.SetTheme(r.Context(), *req.Theme); err != nil {
			h.renderError(w, r, http.StatusInternalServerError, "failed to update theme", err)
			return
		}
	}
	if req.Language != nil {
		if err := h.prefsManager.SetLanguage(r.Context(), *req.Language); err != nil {
			h.renderError(w, r, http.StatusInternalServerError, "failed to update language", err)
			return
		}
	}

	h.GetPreferences(w, r)
}

// renderDrawError maps draw validation and lookup failures to client errors.
func (h *Handler) renderDrawError(w http.ResponseWriter, r *http.Request, message string, err error) {
	switch {
	case errors.Is(err, draw.ErrInvalidQuantity),
		errors.Is(err, draw.ErrQuantityTooLarge),
		errors.Is(err, draw.ErrInvalidRange),
		errors.Is(err, draw.ErrInsufficientRange),
		errors.Is(err, draw.ErrInvalidGroupSize),
		errors.Is(err, draw.ErrEmptySource),
		errors.Is(err, draw.ErrBoundOutOfRange),
		errors.Is(err, draw.ErrTooFewParticipants),
		errors.Is(err, draw.ErrWeightTooLarge):
		h.renderError(w, r, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, roster.ErrListNotFound):
		h.renderError(w, r, http.StatusNotFound, roster.ErrListNotFound.Error(), nil)
	default:
		h.renderError(w, r, http.StatusInternalServerError, message, err)
	}
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	errorResponse := ErrorResponse{
		Error:   message,
		Code:    status,
		Message: message,
	}

	if err != nil {
		log.Error("API error", "error", err, "message", message, "status", status)
		// Don't expose internal errors to the client
		if status >= 500 {
			errorResponse.Error = "Internal server error"
		}
	}

	render.Status(r, status)
	render.JSON(w, r, errorResponse)
}
