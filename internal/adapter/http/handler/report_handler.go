package handler

import (
	"context"
	"net/http"

	"github.com/iho/gojournal/internal/adapter/http/dto"
	"github.com/iho/gojournal/internal/domain"
)

// reportService is the slice of ReportUseCase the handler needs.
type reportService interface {
	ProfitAndLoss(ctx context.Context) (domain.ProfitAndLoss, error)
	AllLines(ctx context.Context) ([]domain.JournalLine, error)
}

// ReportHandler handles report HTTP requests.
type ReportHandler struct {
	reportUC reportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportUC reportService) *ReportHandler {
	return &ReportHandler{reportUC: reportUC}
}

// ProfitAndLoss returns the profit and loss report.
func (h *ReportHandler) ProfitAndLoss(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUC.ProfitAndLoss(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to build profit and loss report", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ProfitAndLossFromDomain(report))
}

// Lines returns every stored journal line, newest entries first.
func (h *ReportHandler) Lines(w http.ResponseWriter, r *http.Request) {
	lines, err := h.reportUC.AllLines(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list journal lines", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LinesFromDomain(lines))
}
