package services

import (
	"net/http"

	"github.com/feisong354/AIImageTools/internal/domain/tools"
)

// ParameterService turns submitted form fields into a tool's typed
// parameter record. Parsing is delegated to the tool definition so
// every tool applies its own defaults and clamping.
type ParameterService struct{}

func NewParameterService() *ParameterService {
	return &ParameterService{}
}

// ParseFromRequest reads the request form. The handler must have parsed
// the body (ParseForm or ParseMultipartForm) before calling this.
func (s *ParameterService) ParseFromRequest(def *tools.Definition, r *http.Request) (tools.Parameters, error) {
	return def.ParseParameters(r.Form)
}
