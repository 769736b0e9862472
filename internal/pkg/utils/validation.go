package utils

import (
	"regexp"
	"yuktah-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var uuidV4Regexp = regexp.MustCompile(constvars.RegexUUIDv4)

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

// IsUUIDv4Shaped reports whether s matches the UUIDv4 surface syntax,
// including the version and variant nibbles. Used to reject malformed
// emergency tokens before any storage access.
func IsUUIDv4Shaped(s string) bool {
	return uuidV4Regexp.MatchString(s)
}
