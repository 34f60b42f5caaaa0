package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/benvon/youthwell/internal/models"
	"github.com/benvon/youthwell/internal/request"
	"github.com/benvon/youthwell/internal/services/ai"
	"github.com/benvon/youthwell/internal/validation"
)

// WellnessHandler serves the model backed routes. The service resolves every
// model failure to a fallback, so these routes only fail on bad input.
type WellnessHandler struct {
	service *ai.WellnessService
	logger  *zap.Logger
}

// NewWellnessHandler creates a new wellness handler
func NewWellnessHandler(service *ai.WellnessService, logger *zap.Logger) *WellnessHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WellnessHandler{service: service, logger: logger}
}

// RegisterRoutes registers the chat, wellness, analytics and reminders routes
func (h *WellnessHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/chat", h.Chat).Methods("POST")
	r.HandleFunc("/wellness", h.Wellness).Methods("POST")
	r.HandleFunc("/analytics", h.Analytics).Methods("POST")
	r.HandleFunc("/reminders", h.Reminders).Methods("POST")
}

func contextOrEmpty(uc *models.UserContext) models.UserContext {
	if uc == nil {
		return models.UserContext{}
	}
	return *uc
}

// Chat handles POST /api/chat
func (h *WellnessHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidBody(w, r, err)
		return
	}

	message := validation.SanitizeText(req.Message)
	if message == "" {
		respondJSONError(w, http.StatusBadRequest, "Message is required", h.logger)
		return
	}

	reply := h.service.GenerateChatResponse(r.Context(), message, contextOrEmpty(req.Context))
	respondJSON(w, http.StatusOK, models.ChatResponse{Response: reply}, h.logger)
}

// Wellness handles POST /api/wellness
func (h *WellnessHandler) Wellness(w http.ResponseWriter, r *http.Request) {
	var req models.WellnessRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidBody(w, r, err)
		return
	}

	mood := strings.TrimSpace(req.Mood)
	if mood == "" {
		respondJSONError(w, http.StatusBadRequest, "Mood is required", h.logger)
		return
	}

	plan := h.service.GenerateWellnessPlan(r.Context(), mood, contextOrEmpty(req.Context))
	respondJSON(w, http.StatusOK, models.WellnessResponse{WellnessPlan: plan}, h.logger)
}

// Analytics handles POST /api/analytics
func (h *WellnessHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	var req models.ContextRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidBody(w, r, err)
		return
	}

	insights := h.service.GenerateAnalyticsInsights(r.Context(), contextOrEmpty(req.Context))
	respondJSON(w, http.StatusOK, models.AnalyticsResponse{Insights: insights}, h.logger)
}

// Reminders handles POST /api/reminders
func (h *WellnessHandler) Reminders(w http.ResponseWriter, r *http.Request) {
	var req models.ContextRequest
	if err := decodeJSON(r, &req); err != nil {
		h.invalidBody(w, r, err)
		return
	}

	suggestions := h.service.GenerateReminderSuggestions(r.Context(), contextOrEmpty(req.Context))
	respondJSON(w, http.StatusOK, models.RemindersResponse{Suggestions: suggestions}, h.logger)
}

func (h *WellnessHandler) invalidBody(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Debug("invalid_request_body",
		zap.String("request_id", request.RequestID(r.Context())),
		zap.Error(err),
	)
	respondJSONError(w, http.StatusBadRequest, "Invalid request body", h.logger)
}
