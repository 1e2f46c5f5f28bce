package server

import (
	"encoding/json"
	"net/http"
	"shifter/internal/ctxlog"
	"strconv"
)

const (
	ctText = "text/plain; charset=utf-8"
	ctJSON = "application/json"
)

func writeText(w http.ResponseWriter, r *http.Request, status int, text string) {
	w.Header().Set("Content-Type", ctText)
	w.Header().Set("Content-Length", strconv.Itoa(len(text)))
	w.WriteHeader(status)
	if _, err := w.Write([]byte(text)); err != nil {
		log := ctxlog.Get(r.Context())
		log.Error("failed to write response", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	content, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	w.Header().Set("Content-Type", ctJSON)
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(status)
	if _, err := w.Write(content); err != nil {
		log := ctxlog.Get(r.Context())
		log.Error("failed to write response", "error", err)
	}
}

func statusHandler(status int) http.Handler {
	text := http.StatusText(status) + "\n"
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeText(w, r, status, text)
	})
}

var (
	notFoundHandler            = statusHandler(http.StatusNotFound)
	internalServerErrorHandler = statusHandler(http.StatusInternalServerError)
)
