package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/feisong354/AIImageTools/internal/domain/entities"
)

type sessionView struct {
	ID          string            `json:"id"`
	Tool        string            `json:"tool"`
	State       string            `json:"state"`
	Error       string            `json:"error,omitempty"`
	Images      map[string]string `json:"images"`
	ResultCount int               `json:"resultCount"`
}

func sessionEnvelope(session *entities.ToolSession) map[string]any {
	images := make(map[string]string)
	for slot, image := range session.Images() {
		images[string(slot)] = image.FileName()
	}

	resultCount := 0
	if result, ok := session.Result(); ok {
		resultCount = result.ImageCount()
	}

	return map[string]any{
		"success": true,
		"session": sessionView{
			ID:          string(session.ID()),
			Tool:        string(session.Tool()),
			State:       string(session.State()),
			Error:       session.ErrorMessage(),
			Images:      images,
			ResultCount: resultCount,
		},
	}
}

func uploadTooLargeMessage(maxUploadBytes int64) string {
	return fmt.Sprintf("The image is too large (up to %dMB).", maxUploadBytes/(1<<20))
}

func (h *Handler) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tool string `json:"tool"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.sendError(w, "request body must be JSON with a tool field", http.StatusBadRequest)
		return
	}

	session, err := h.sessions.Create(r.Context(), body.Tool)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.sendJSON(w, http.StatusCreated, sessionEnvelope(session))
}

func (h *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.sendJSON(w, http.StatusOK, sessionEnvelope(session))
}

func (h *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		h.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleAttachImage uploads one file into a named session slot. The
// file travels in the "image" multipart field.
func (h *Handler) HandleAttachImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			h.sendError(w, "Please choose an image file.", http.StatusBadRequest)
		} else {
			h.sendError(w, uploadTooLargeMessage(h.maxUploadBytes), http.StatusRequestEntityTooLarge)
		}
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.sendError(w, "Please choose an image file.", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.sendError(w, "Failed to read the uploaded image.", http.StatusInternalServerError)
		return
	}

	vars := mux.Vars(r)
	session, err := h.sessions.AttachImage(r.Context(), vars["id"], vars["slot"],
		data, header.Header.Get("Content-Type"), header.Filename)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.sendJSON(w, http.StatusOK, sessionEnvelope(session))
}

func (h *Handler) HandleClearImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	session, err := h.sessions.ClearImage(r.Context(), vars["id"], vars["slot"])
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.sendJSON(w, http.StatusOK, sessionEnvelope(session))
}

// HandleGenerateSession runs the session's tool synchronously with the
// submitted parameter fields. A second submission while one is running
// is refused with 409.
func (h *Handler) HandleGenerateSession(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.sendError(w, "Failed to read the submitted form.", http.StatusBadRequest)
		return
	}

	id := mux.Vars(r)["id"]
	h.logger.Info("generation requested", zap.String("session", id))

	result, err := h.sessions.Generate(r.Context(), id, r.Form)
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.sendJSON(w, http.StatusOK, resultEnvelope(result))
}

func (h *Handler) HandleResult(w http.ResponseWriter, r *http.Request) {
	result, err := h.sessions.Result(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, err)
		return
	}
	h.sendJSON(w, http.StatusOK, resultEnvelope(result))
}

// HandleDownload streams one result image as a PNG attachment. The
// 1-based option query selects among multi-image results.
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	option := 1
	if raw := r.URL.Query().Get("option"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			h.sendError(w, "option must be a positive number", http.StatusBadRequest)
			return
		}
		option = parsed
	}

	name, image, err := h.sessions.Artifact(r.Context(), mux.Vars(r)["id"], option-1)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", image.MimeType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(len(image.Data())))
	w.Write(image.Data())
}
