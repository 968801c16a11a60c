package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gojournal/internal/adapter/http/dto"
	"github.com/iho/gojournal/internal/domain"
	"github.com/iho/gojournal/internal/usecase"
)

// AccountHandler serves the static account directory.
type AccountHandler struct {
	directory usecase.AccountDirectory
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(directory usecase.AccountDirectory) *AccountHandler {
	return &AccountHandler{directory: directory}
}

// List lists every account in the directory.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.AccountsFromDomain(h.directory.All()))
}

// Get retrieves an account by code.
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	rawCode := chi.URLParam(r, "code")

	code, err := domain.NewNonEmptyString(rawCode)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account code", err.Error())
		return
	}

	account, err := h.directory.FindByCode(code)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get account", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.AccountFromDomain(account))
}
