package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/bearerkit/errors"
	"github.com/skillsenselab/bearerkit/logger"
)

// Recovery returns middleware that recovers from handler panics, logs the
// stack, and responds 500 with a JSON error body.
func Recovery(log *logger.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					fields := logger.Fields(
						logger.FieldError, fmt.Sprintf("%v", rec),
						logger.FieldPath, r.URL.Path,
						logger.FieldMethod, r.Method,
						"stack", string(debug.Stack()),
					)
					if log != nil {
						log.Error("Panic recovered", fields)
					} else {
						logger.Error("Panic recovered", fields)
					}
					writeError(w, errors.Internal(fmt.Errorf("%v", rec)))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// GinRecovery returns a Gin middleware for Recovery.
func GinRecovery(log *logger.Logger) gin.HandlerFunc {
	return GinWrap(Recovery(log))
}
