package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bahuan-coding/carla-ops-api/internal/middleware"
	"github.com/bahuan-coding/carla-ops-api/internal/service"
	"github.com/bahuan-coding/carla-ops-api/pkg/logger"
)

// InsightHandler handles conversation insight endpoints.
type InsightHandler struct {
	service *service.InsightService
	logger  *logger.Logger
}

// NewInsightHandler creates a new insight handler.
func NewInsightHandler(svc *service.InsightService, log *logger.Logger) *InsightHandler {
	return &InsightHandler{
		service: svc,
		logger:  log,
	}
}

// Get handles GET /api/v1/conversations/:id/insight
func (h *InsightHandler) Get(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "id")

	if err := middleware.ValidateConversationID(conversationID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.service.Enabled() {
		writeError(w, http.StatusServiceUnavailable, "insight provider not configured")
		return
	}

	insight, err := h.service.Generate(r.Context(), conversationID)
	if err != nil {
		h.logger.Error("failed to generate insight")
		writeError(w, http.StatusBadGateway, "failed to generate insight")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"conversation_id": conversationID,
		"insight":         insight,
	})
}
