package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/bearerkit/authctx"
	"github.com/skillsenselab/bearerkit/errors"
	"github.com/skillsenselab/bearerkit/logger"
	"github.com/skillsenselab/bearerkit/observability"
	"github.com/skillsenselab/bearerkit/scheme"
)

// AuthOption configures the Authenticate middleware.
type AuthOption func(*authOptions)

type authOptions struct {
	require   bool
	skipPaths []string
	log       *logger.Logger
	metrics   *observability.AuthMetrics
}

// Require rejects requests that no scheme claimed with 401 instead of letting
// them proceed unauthenticated.
func Require() AuthOption {
	return func(o *authOptions) { o.require = true }
}

// WithSkipPaths disables authentication for requests whose URL path starts
// with any of the given prefixes.
func WithSkipPaths(paths ...string) AuthOption {
	return func(o *authOptions) { o.skipPaths = append(o.skipPaths, paths...) }
}

// WithLogger sets the logger used by the middleware. Defaults to the global
// logger with component "auth".
func WithLogger(log *logger.Logger) AuthOption {
	return func(o *authOptions) { o.log = log }
}

// WithMetrics enables metric recording for authentication outcomes.
func WithMetrics(m *observability.AuthMetrics) AuthOption {
	return func(o *authOptions) { o.metrics = m }
}

// Authenticate returns middleware that routes every request through the
// registry.
//
// A request that matches a scheme and carries a valid token proceeds with its
// claims and the scheme name stored in the request context (see authctx). A
// request that matches a scheme but fails verification is rejected with 401
// and a JSON error body. A request no scheme claims proceeds unauthenticated,
// unless Require is set, leaving authorization to the handlers behind it.
func Authenticate(reg *scheme.Registry, opts ...AuthOption) Middleware {
	o := &authOptions{}
	for _, opt := range opts {
		opt(o)
	}
	if o.log == nil {
		o.log = logger.GetGlobalLogger().WithComponent("auth")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, skip := range o.skipPaths {
				if strings.HasPrefix(r.URL.Path, skip) {
					next.ServeHTTP(w, r)
					return
				}
			}

			ctx, attempt := observability.StartAttempt(r.Context(), r.Header.Get(HeaderRequestID), o.metrics)
			r = r.WithContext(ctx)

			claims, name, err := reg.Authenticate(r)
			if err != nil {
				appErr, ok := errors.AsAppError(err)
				if !ok {
					appErr = errors.Unauthorized("").WithCause(err)
				}
				attempt.Rejected(ctx, name, string(appErr.Code), err)
				o.log.Warn("token rejected", logger.Fields(
					logger.FieldScheme, name,
					logger.FieldPath, r.URL.Path,
					"code", string(appErr.Code),
				))
				writeError(w, appErr)
				return
			}

			if claims == nil {
				attempt.Anonymous()
				if o.require {
					o.log.Warn("unauthenticated request rejected", logger.Fields(
						logger.FieldPath, r.URL.Path,
					))
					writeError(w, errors.Unauthorized(""))
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			ctx = authctx.Set(ctx, claims)
			ctx = authctx.SetScheme(ctx, name)
			attempt.Selected(ctx, name, claims.Subject)
			o.log.Debug("request authenticated", logger.Fields(
				logger.FieldScheme, name,
				logger.FieldSubject, claims.Subject,
			))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GinAuthenticate returns a Gin middleware for Authenticate.
func GinAuthenticate(reg *scheme.Registry, opts ...AuthOption) gin.HandlerFunc {
	return GinWrap(Authenticate(reg, opts...))
}

// writeError writes an AppError as a JSON response body.
func writeError(w http.ResponseWriter, appErr *errors.AppError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(appErr.ToResponse())
}
