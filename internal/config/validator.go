// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// materialize.go runs `validateStruct` on every freshly built
// ServerConfig.  The rule engine is the authoritative gate, so this
// pass should never fire; it exists to turn an impossible escape (an
// uncast or out-of-range value reaching the typed record) into a loud
// construction error instead of a latent bad config.
//
// Additional custom rules can be registered here as the configuration
// surface grows.

package config

import "github.com/go-playground/validator/v10"

var structValidator = validator.New()

// validateStruct returns the first tag violation, or nil on success.
func validateStruct(c *ServerConfig) error {
	return structValidator.Struct(c)
}
