package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	appservices "github.com/feisong354/AIImageTools/internal/application/services"
	"github.com/feisong354/AIImageTools/internal/application/usecases"
	"github.com/feisong354/AIImageTools/internal/domain/entities"
	"github.com/feisong354/AIImageTools/internal/domain/repositories"
	domainservices "github.com/feisong354/AIImageTools/internal/domain/services"
	"github.com/feisong354/AIImageTools/internal/domain/tools"
	"github.com/feisong354/AIImageTools/internal/domain/valueobjects"
)

// Handler serves the image tools HTTP API.
type Handler struct {
	sessions       *usecases.SessionUseCase
	generator      *usecases.GenerateUseCase
	parameters     *appservices.ParameterService
	maxUploadBytes int64
	logger         *zap.Logger
}

func NewHandler(
	sessions *usecases.SessionUseCase,
	generator *usecases.GenerateUseCase,
	parameters *appservices.ParameterService,
	maxUploadBytes int64,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		sessions:       sessions,
		generator:      generator,
		parameters:     parameters,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// NewRouter wires every endpoint. Kept separate from the handler so
// tests can serve the full route table through httptest.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/tools", h.HandleListTools).Methods("GET")
	api.HandleFunc("/tools/{tool}/generate", h.HandleGenerateOnce).Methods("POST")

	api.HandleFunc("/sessions", h.HandleCreateSession).Methods("POST")
	api.HandleFunc("/sessions/{id}", h.HandleGetSession).Methods("GET")
	api.HandleFunc("/sessions/{id}", h.HandleDeleteSession).Methods("DELETE")
	api.HandleFunc("/sessions/{id}/images/{slot}", h.HandleAttachImage).Methods("POST")
	api.HandleFunc("/sessions/{id}/images/{slot}", h.HandleClearImage).Methods("DELETE")
	api.HandleFunc("/sessions/{id}/generate", h.HandleGenerateSession).Methods("POST")
	api.HandleFunc("/sessions/{id}/result", h.HandleResult).Methods("GET")
	api.HandleFunc("/sessions/{id}/download", h.HandleDownload).Methods("GET")

	r.HandleFunc("/health", h.HandleHealth).Methods("GET")
	return r
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

type toolView struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Slots       []tools.SlotSpec  `json:"slots"`
	Params      []tools.ParamSpec `json:"params"`
	Variant     string            `json:"variant"`
}

// HandleListTools returns the tool catalog: everything a front-end
// needs to render the six tool forms.
func (h *Handler) HandleListTools(w http.ResponseWriter, r *http.Request) {
	defs := tools.All()
	views := make([]toolView, 0, len(defs))
	for _, def := range defs {
		views = append(views, toolView{
			ID:          string(def.ID),
			Name:        def.Name,
			Description: def.Description,
			Slots:       def.Slots,
			Params:      def.Params,
			Variant:     string(def.Variant),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if err := json.NewEncoder(w).Encode(map[string]any{"success": true, "tools": views}); err != nil {
		h.logger.Error("failed to encode tool catalog", zap.Error(err))
	}
}

// statusForError maps the error taxonomy onto HTTP statuses. Anything
// unclassified is treated as an upstream transport failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, valueobjects.ErrUnsupportedImageType),
		errors.Is(err, tools.ErrMissingInput),
		errors.Is(err, tools.ErrUnknownSlot):
		return http.StatusBadRequest
	case errors.Is(err, tools.ErrUnknownTool),
		errors.Is(err, repositories.ErrSessionNotFound),
		errors.Is(err, usecases.ErrNoResult),
		errors.Is(err, entities.ErrNoSuchOption):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrGenerationInFlight):
		return http.StatusConflict
	case errors.Is(err, repositories.ErrNoImageReturned):
		return http.StatusUnprocessableEntity
	case errors.Is(err, repositories.ErrQuotaExhausted):
		return http.StatusTooManyRequests
	default:
		return http.StatusBadGateway
	}
}

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.Error(err))
	} else {
		h.logger.Warn("request refused", zap.Int("status", status), zap.Error(err))
	}
	h.sendError(w, apiMessage(err), status)
}

// apiMessage picks the response text: addressing mistakes (bad tool,
// slot, session, option) keep their own wording, generation errors get
// the user-facing message.
func apiMessage(err error) string {
	switch {
	case errors.Is(err, tools.ErrUnknownTool),
		errors.Is(err, tools.ErrUnknownSlot),
		errors.Is(err, repositories.ErrSessionNotFound),
		errors.Is(err, usecases.ErrNoResult),
		errors.Is(err, entities.ErrNoSuchOption):
		return err.Error()
	default:
		return domainservices.UserFacingMessage(err)
	}
}

func (h *Handler) sendError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (h *Handler) sendJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store, max-age=0")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response", zap.Error(err))
	}
}

func imageViews(images []*valueobjects.ImageData, names []string) []map[string]string {
	views := make([]map[string]string, 0, len(images))
	for i, image := range images {
		if image == nil || len(image.Data()) == 0 {
			continue
		}

		name := ""
		if i < len(names) {
			name = names[i]
		}
		views = append(views, map[string]string{
			"id":   fmt.Sprintf("image_%d", i),
			"name": name,
			"data": image.ToBase64(),
			"type": image.MimeType(),
		})
	}
	return views
}

func resultEnvelope(result *entities.GenerationResult) map[string]any {
	names := make([]string, result.ImageCount())
	for i := range names {
		names[i] = result.ArtifactName(i)
	}

	envelope := map[string]any{
		"success": true,
		"images":  imageViews(result.Images(), names),
	}
	if result.Text() != "" {
		envelope["text"] = result.Text()
	}
	return envelope
}
