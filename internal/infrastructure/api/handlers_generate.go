package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/feisong354/AIImageTools/internal/application/usecases"
	"github.com/feisong354/AIImageTools/internal/domain/tools"
)

// HandleGenerateOnce runs a tool in a single stateless call: image
// files under their slot names plus parameter fields, one multipart
// request, the result envelope straight back.
func (h *Handler) HandleGenerateOnce(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		h.sendError(w, uploadTooLargeMessage(h.maxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	toolID := mux.Vars(r)["tool"]
	def, err := tools.Get(tools.ToolID(toolID))
	if err != nil {
		h.handleError(w, err)
		return
	}

	params, err := h.parameters.ParseFromRequest(def, r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var uploads []usecases.SlotUpload
	if r.MultipartForm != nil {
		for _, spec := range def.Slots {
			file, header, err := r.FormFile(string(spec.Name))
			if errors.Is(err, http.ErrMissingFile) {
				continue
			}
			if err != nil {
				h.sendError(w, fmt.Sprintf("failed to read the %s image", spec.Name), http.StatusBadRequest)
				return
			}

			data, readErr := io.ReadAll(file)
			file.Close()
			if readErr != nil {
				h.sendError(w, fmt.Sprintf("failed to read the %s image", spec.Name), http.StatusInternalServerError)
				return
			}

			uploads = append(uploads, usecases.SlotUpload{
				Slot:     spec.Name,
				Data:     data,
				MimeType: header.Header.Get("Content-Type"),
				FileName: header.Filename,
			})
		}
	}

	output, err := h.generator.Execute(r.Context(), usecases.GenerateInput{
		Tool:    toolID,
		Uploads: uploads,
		Params:  params,
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	envelope := map[string]any{
		"success": true,
		"images":  imageViews(output.Images, output.ArtifactNames),
	}
	if output.Text != "" {
		envelope["text"] = output.Text
	}
	h.sendJSON(w, http.StatusOK, envelope)
}
