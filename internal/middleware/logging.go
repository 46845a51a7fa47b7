// internal/middleware/logging.go

// Package middleware holds the logging hooks shared by the gateway's
// HTTP and websocket handlers.
package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// LogMiddleware wraps a handler and logs each request once it has been
// served, tagged with the elapsed time.
func LogMiddleware(logger *logrus.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			logger.WithFields(logrus.Fields{
				"method":  r.Method,
				"path":    r.URL.Path,
				"remote":  r.RemoteAddr,
				"elapsed": time.Since(start).String(),
			}).Info("handled request")
		})
	}
}

// LogWebSocketConnect records an accepted websocket upgrade.
func LogWebSocketConnect(logger *logrus.Logger, remoteAddr, path string) {
	logger.WithFields(logrus.Fields{
		"remote": remoteAddr,
		"path":   path,
	}).Info("websocket connected")
}

// LogWebSocketDisconnect records the end of a websocket session. A nil
// err means a clean shutdown.
func LogWebSocketDisconnect(logger *logrus.Logger, remoteAddr, path string, err error) {
	entry := logger.WithFields(logrus.Fields{
		"remote": remoteAddr,
		"path":   path,
	})
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Info("websocket disconnected")
}
