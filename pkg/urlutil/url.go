// Package urlutil provides URL well-formedness checks for Archium
// models and validators.
package urlutil

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsURL reports whether raw is a well-formed, absolute URL.
func IsURL(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	return validate.Var(raw, "url") == nil
}
