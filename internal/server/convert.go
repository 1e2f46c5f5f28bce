package server

import (
	"errors"
	"io"
	"net/http"
	"shifter/internal/ctxlog"
	"shifter/internal/db"
	"shifter/internal/shift"
	"time"
)

func (s *Server) convertHandler(dir db.Direction, c *shift.Cipher) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := ctxlog.Get(r.Context())

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
		if err != nil {
			if maxErr := (*http.MaxBytesError)(nil); errors.As(err, &maxErr) {
				writeText(w, r, http.StatusRequestEntityTooLarge, http.StatusText(http.StatusRequestEntityTooLarge)+"\n")
				return
			}
			log.Warn("failed to read request body", "error", err)
			writeText(w, r, http.StatusBadRequest, http.StatusText(http.StatusBadRequest)+"\n")
			return
		}

		in := string(body)
		out := c.Convert(in)

		if s.history {
			err := db.Add(db.Conversion{
				Time:      time.Now(),
				Direction: dir,
				Input:     in,
				Output:    out,
				Offset:    c.Offset(),
				Remote:    r.RemoteAddr,
			})
			if err != nil {
				log.Error("failed to record conversion", "error", err)
			}
		}

		writeText(w, r, http.StatusOK, out)
	})
}
