package usecase

import (
	"context"

	"github.com/iho/gojournal/internal/domain"
)

// ReportUseCase builds read models over the stored journal lines.
type ReportUseCase struct {
	snapshots SnapshotRepository
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(snapshots SnapshotRepository) *ReportUseCase {
	return &ReportUseCase{snapshots: snapshots}
}

// ProfitAndLoss nets every stored line into the profit-and-loss report.
func (uc *ReportUseCase) ProfitAndLoss(ctx context.Context) (domain.ProfitAndLoss, error) {
	lines, err := uc.snapshots.ListAllLines(ctx)
	if err != nil {
		return domain.ProfitAndLoss{}, err
	}
	return domain.ProfitAndLossFrom(lines), nil
}

// AllLines returns every stored journal line, newest entry first.
func (uc *ReportUseCase) AllLines(ctx context.Context) ([]domain.JournalLine, error) {
	return uc.snapshots.ListAllLines(ctx)
}
