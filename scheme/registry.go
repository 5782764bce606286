package scheme

import (
	"fmt"
	"net/http"

	"github.com/skillsenselab/bearerkit/credential"
	"github.com/skillsenselab/bearerkit/errors"
	"github.com/skillsenselab/bearerkit/logger"
	"github.com/skillsenselab/bearerkit/token"
)

// Option configures registry construction.
type Option func(*options)

type options struct {
	log    *logger.Logger
	strict bool
}

// WithLogger routes registration diagnostics through the given logger.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithStrictAlgorithms promotes an unrecognized algorithm family from a
// logged warning to a configuration error. Without it, such schemes are
// registered with signature verification disabled.
func WithStrictAlgorithms() Option {
	return func(o *options) { o.strict = true }
}

// Registry holds one Handler per configured scheme plus the shared
// Selector. It is fully built by NewRegistry and never mutated afterwards,
// so all methods are lock-free and safe for concurrent use.
type Registry struct {
	selector Selector
	handlers map[string]*Handler
	order    []string
}

// NewRegistry validates the settings and builds the verification pipeline
// for every credential. Any configuration defect aborts construction:
// a service must never start with partially valid scheme configuration.
func NewRegistry(settings credential.Settings, opts ...Option) (*Registry, error) {
	o := options{log: logger.GetGlobalLogger().WithComponent("scheme")}
	for _, opt := range opts {
		opt(&o)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	handlers := make(map[string]*Handler, len(settings.Credentials))
	order := make([]string, 0, len(settings.Credentials))

	for _, cred := range settings.Credentials {
		params, err := token.BuildParams(cred)
		if err != nil {
			msg := err.Error()
			if appErr, ok := errors.AsAppError(err); ok {
				msg = appErr.Message
			}
			return nil, errors.Configuration(fmt.Sprintf("scheme %q: %s", cred.Scheme, msg)).WithCause(err)
		}

		if !params.ValidateSigningKey {
			if o.strict {
				return nil, errors.Configuration(fmt.Sprintf(
					"scheme %q: algorithm %q has no recognized key family", cred.Scheme, cred.Algorithm))
			}
			o.log.Warn("scheme accepts tokens WITHOUT signature verification: algorithm family is not recognized",
				cred.LogFields())
		}

		handlers[cred.Scheme] = &Handler{cred: cred, verifier: token.NewVerifier(params)}
		order = append(order, cred.Scheme)
		o.log.Debug("scheme registered", cred.LogFields())
	}

	o.log.Info("authentication registry ready", logger.Fields("schemes", len(order)))

	return &Registry{
		selector: NewSelector(settings.Credentials),
		handlers: handlers,
		order:    order,
	}, nil
}

// Selector returns the shared scheme selector.
func (r *Registry) Selector() Selector { return r.selector }

// Handler returns the handler registered for the given scheme name.
func (r *Registry) Handler(name string) (*Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Schemes returns the scheme names in configuration order.
func (r *Registry) Schemes() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Authenticate routes the request to a scheme and verifies its token.
//
// When no scheme matches, it returns (nil, "", nil): the request simply
// carries no recognizable credentials and proceeds unauthenticated. When
// a scheme matches, the scheme name is returned together with either the
// verified claims or the verification error.
func (r *Registry) Authenticate(req *http.Request) (*token.Claims, string, error) {
	name, ok := r.selector.Select(req)
	if !ok {
		return nil, "", nil
	}
	claims, err := r.handlers[name].Authenticate(req)
	if err != nil {
		return nil, name, err
	}
	return claims, name, nil
}
