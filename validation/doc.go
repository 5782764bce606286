// Package validation provides input validation for bearerkit configuration.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Struct tag validation is
// used for credential declarations; the programmatic collector handles
// cross-field rules such as duplicate scheme names.
//
// # Struct Tag Validation
//
//	type Credential struct {
//	    Scheme    string `json:"scheme" validate:"required"`
//	    Algorithm string `json:"algorithm" validate:"required"`
//	}
//	err := validation.Validate(cred)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Required("scheme", cred.Scheme)
//	v.Base64("secret", cred.Secret)
//	err := v.Validate()
package validation
