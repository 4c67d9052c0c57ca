package delivery

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/archie-app/archie-ai-gateway/internal/gwerr"
	"github.com/archie-app/archie-ai-gateway/internal/summary"
)

type SummaryService interface {
	Summarize(ctx context.Context, req summary.Request) (*summary.Result, *gwerr.Error)
}

type SummaryHandler struct {
	service SummaryService
	log     *logger.ZapLogger
}

func NewSummaryHandler(service SummaryService, log *logger.ZapLogger) *SummaryHandler {
	return &SummaryHandler{
		service: service,
		log:     log,
	}
}

func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req summary.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, gwerr.Invalid("invalid json: "+err.Error()))
		return
	}

	identity, _ := IdentityFrom(r.Context())

	result, gerr := h.service.Summarize(r.Context(), req)
	if gerr != nil {
		h.log.Log(logger.LogEntry{
			Level:   "warn",
			Message: fmt.Sprintf("summary generation failed user=%s rid=%s", identity.Subject, RequestIDFrom(r.Context())),
			Service: "summary",
			Error:   gerr,
		})
		writeError(w, gerr)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: fmt.Sprintf("summary generated user=%s", identity.Subject),
		Service: "summary",
	})
	writeJSON(w, http.StatusOK, result)
}
