// Package scheme routes HTTP requests to authentication schemes and
// verifies their bearer tokens.
//
// The Selector walks the configured credential list in order and picks
// the first scheme whose header/prefix rule matches the request. Each
// scheme has a Handler that re-extracts the token with the exact same
// rule and verifies it. The Registry ties both together: it is built
// once from validated settings, fails fast on any configuration defect,
// and is immutable and lock-free afterwards.
//
//	reg, err := scheme.NewRegistry(settings)
//	if err != nil {
//	    return err
//	}
//	claims, name, err := reg.Authenticate(r)
package scheme
