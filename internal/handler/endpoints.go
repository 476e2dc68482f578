package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bahuan-coding/carla-ops-api/internal/catalog"
	"github.com/bahuan-coding/carla-ops-api/internal/middleware"
	"github.com/bahuan-coding/carla-ops-api/internal/model"
	"github.com/bahuan-coding/carla-ops-api/internal/service"
	"github.com/bahuan-coding/carla-ops-api/pkg/logger"
)

// EndpointHandler handles the admin endpoint catalog and invocations.
type EndpointHandler struct {
	service *service.InvocationService
	logger  *logger.Logger
}

// NewEndpointHandler creates a new endpoint handler.
func NewEndpointHandler(svc *service.InvocationService, log *logger.Logger) *EndpointHandler {
	return &EndpointHandler{
		service: svc,
		logger:  log,
	}
}

// List handles GET /api/v1/admin/endpoints
func (h *EndpointHandler) List(w http.ResponseWriter, r *http.Request) {
	endpoints := catalog.All()
	writeJSON(w, http.StatusOK, model.ListEndpointsResponse{
		Endpoints: endpoints,
		Total:     len(endpoints),
	})
}

// Invoke handles POST /api/v1/admin/endpoints/:id/invoke
func (h *EndpointHandler) Invoke(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	endpointID := chi.URLParam(r, "id")

	if err := middleware.ValidateEndpointID(endpointID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req model.InvokeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Values == nil {
		req.Values = map[string]string{}
	}

	resp, err := h.service.Invoke(ctx, endpointID, req)
	if err != nil {
		if errors.Is(err, service.ErrEndpointNotFound) {
			writeError(w, http.StatusNotFound, "endpoint not found")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if resp.Armed {
		writeJSON(w, http.StatusAccepted, resp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
