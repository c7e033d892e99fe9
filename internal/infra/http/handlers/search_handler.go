package handlers

import (
	"net/http"

	"github.com/purva-galani/Everest-main-live-sub001/internal/infra/http/middleware"
	"github.com/purva-galani/Everest-main-live-sub001/internal/usecase"
)

type SearchHandler struct {
	uc *usecase.SearchUseCase
}

func NewSearchHandler(uc *usecase.SearchUseCase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

func (h *SearchHandler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "query parameter q is required")
		return
	}

	middleware.RecordSearchQuery()

	out, err := h.uc.Execute(r.Context(), q)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
