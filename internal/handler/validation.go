package handler

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// unsafeFieldPattern screens free-form fields for characters used in
// XML/SQL injection, plus the bare word OR.
var unsafeFieldPattern = regexp.MustCompile(`(?i)[<>&'$=]|\bOR\b`)

// plainField is the validator function behind the "plain" binding tag.
func plainField(fl validator.FieldLevel) bool {
	return !unsafeFieldPattern.MatchString(fl.Field().String())
}

// RegisterValidators installs custom binding tags on gin's validator engine.
// Call once before routes are registered.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("plain", plainField)
}
