package http

import (
	"encoding/json"
	"net/http"

	"github.com/stafftrack/attendance-backend-go/internal/domain/ingest"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/response"
)

type DeviceHandler interface {
	IngestPunches(w http.ResponseWriter, r *http.Request)
}

type deviceHandlerImpl struct {
	ingestService ingest.IngestService
}

func NewDeviceHandler(ingestService ingest.IngestService) DeviceHandler {
	return &deviceHandlerImpl{
		ingestService: ingestService,
	}
}

// IngestPunches implements DeviceHandler.
func (h *deviceHandlerImpl) IngestPunches(w http.ResponseWriter, r *http.Request) {
	var req ingest.IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ingestService.Ingest(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch batch processed", result)
}
