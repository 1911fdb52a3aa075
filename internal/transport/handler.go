package transport

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tracefield/traceanchor-backend/internal/model"
	"github.com/tracefield/traceanchor-backend/internal/service"
)

// Handler serves the traceability API.
type Handler struct {
	pipeline PipelineService
	track    TrackService
	status   StatusService
	logger   *zap.Logger
}

func NewHandler(pipeline PipelineService, track TrackService, status StatusService, logger *zap.Logger) *Handler {
	return &Handler{
		pipeline: pipeline,
		track:    track,
		status:   status,
		logger:   logger,
	}
}

// Router mounts the API routes.
func (h *Handler) Router() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /v1/products/{id}/stages/{stageID}", h.completeStage)
	mux.HandleFunc("GET /v1/track/{id}", h.timeline)
	mux.HandleFunc("GET /v1/blockchain/status", h.blockchainStatus)
	mux.HandleFunc("GET /v1/health", h.health)
	return mux
}

func (h *Handler) completeStage(w http.ResponseWriter, r *http.Request) {
	var req completeStageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, &model.ValidationError{Field: "body", Reason: "malformed json"})
		return
	}

	result, err := h.pipeline.CompleteStage(r.Context(), service.CompleteStageInput{
		ProductID: r.PathValue("id"),
		StageID:   r.PathValue("stageID"),
		StageName: req.StageName,
		ImageData: req.ImageData,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Metadata:  req.Metadata,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, completeStageResponse{
		StageData:  toStageData(result.Stage),
		Blockchain: result.Receipt,
		IPFS: ipfsResponse{
			ImageCID:    result.ImageCID,
			MetadataCID: result.MetadataCID,
			ImageURL:    result.ImageURL,
		},
	})
}

func (h *Handler) timeline(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")

	timeline, err := h.track.Timeline(r.Context(), productID, model.ProductScan{
		ProductID: productID,
		ScannedAt: time.Now().UTC(),
		Referrer:  r.Header.Get("Referer"),
		UserAgent: r.UserAgent(),
		ClientIP:  clientIP(r),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toTimelineResponse(timeline))
}

func (h *Handler) blockchainStatus(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.status.Status(r.Context()))
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// clientIP prefers the first forwarded address so scans keep the caller's
// address behind a proxy.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ip, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(ip)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("write response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var (
		valErr       *model.ValidationError
		upErr        *model.UploadError
		retrErr      *model.RetrievalError
		transientErr *model.TransientChainError
	)
	switch {
	case errors.As(err, &valErr):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrStageNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrStageAlreadyCompleted):
		status = http.StatusConflict
	case errors.As(err, &upErr),
		errors.As(err, &retrErr),
		errors.As(err, &transientErr),
		errors.Is(err, model.ErrInsufficientFunds),
		errors.Is(err, model.ErrTransactionRejected):
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}
