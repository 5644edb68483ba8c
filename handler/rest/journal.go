package rest

import (
	"errors"
	"net/http"

	"anchor/core"
	"anchor/handler/param"
	"anchor/handler/render"
)

func journalHandler(journal core.IJournalStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			UserID string `json:"user"`
		}

		if err := param.Binding(r, &params); err != nil || params.UserID == "" {
			render.BadRequest(w, errors.New("user required"))
			return
		}

		limit := param.Int(r, "limit", 100)
		entries, err := journal.ListByUser(r.Context(), params.UserID, limit)
		if err != nil {
			render.Error(w, err)
			return
		}

		render.JSON(w, entries)
	}
}
