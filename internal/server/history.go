package server

import (
	"net/http"
	"shifter/internal/ctxlog"
	"shifter/internal/db"
	"strconv"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 1000
)

func historyHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := defaultHistoryLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 || n > maxHistoryLimit {
				writeText(w, r, http.StatusBadRequest, "limit must be between 1 and "+strconv.Itoa(maxHistoryLimit)+"\n")
				return
			}
			limit = n
		}

		conversions, err := db.Recent(limit)
		if err != nil {
			log := ctxlog.Get(r.Context())
			log.Error("failed to load history", "error", err)
			internalServerErrorHandler.ServeHTTP(w, r)
			return
		}
		if conversions == nil {
			conversions = []db.Conversion{}
		}

		writeJSON(w, r, http.StatusOK, conversions)
	})
}
