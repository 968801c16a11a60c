package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gojournal/internal/adapter/http/dto"
	"github.com/iho/gojournal/internal/domain"
	"github.com/iho/gojournal/internal/usecase"
)

// journalService is the slice of JournalUseCase the handler needs.
type journalService interface {
	Register(ctx context.Context, input usecase.RegisterJournalInput) (*domain.JournalSnapshot, error)
	Correct(ctx context.Context, input usecase.CorrectJournalInput) (*domain.JournalSnapshot, error)
	Approve(ctx context.Context, journalID string) (*domain.JournalSnapshot, error)
	Get(ctx context.Context, journalID string) (*domain.JournalSnapshot, error)
	List(ctx context.Context) ([]*domain.JournalSnapshot, error)
	History(ctx context.Context, journalID string) ([]usecase.JournalEventRecord, error)
}

// JournalHandler handles journal entry HTTP requests.
type JournalHandler struct {
	journalUC journalService
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journalUC journalService) *JournalHandler {
	return &JournalHandler{journalUC: journalUC}
}

// Register registers a new journal entry.
func (h *JournalHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	snapshot, err := h.journalUC.Register(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to register journal entry", err.Error())

		return
	}

	writeJSON(w, http.StatusCreated, dto.JournalFromDomain(snapshot))
}

// Correct replaces a journal entry's date and lines.
func (h *JournalHandler) Correct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing journal ID", "")
		return
	}

	var req dto.CorrectJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	snapshot, err := h.journalUC.Correct(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to correct journal entry", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.JournalFromDomain(snapshot))
}

// Approve marks a journal entry approved.
func (h *JournalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing journal ID", "")
		return
	}

	snapshot, err := h.journalUC.Approve(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to approve journal entry", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.JournalFromDomain(snapshot))
}

// Get retrieves a journal entry by ID.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing journal ID", "")
		return
	}

	snapshot, err := h.journalUC.Get(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get journal entry", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.JournalFromDomain(snapshot))
}

// List lists all journal entries.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.journalUC.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list journal entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.JournalsFromDomain(snapshots))
}

// History lists a journal entry's event history.
func (h *JournalHandler) History(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing journal ID", "")
		return
	}

	records, err := h.journalUC.History(r.Context(), id)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get journal history", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.HistoryFromRecords(records))
}
