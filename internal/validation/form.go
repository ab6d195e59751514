package validation

import (
	"regexp"
	"strings"
)

const (
	ReasonRequired     = "required"
	ReasonInvalidEmail = "invalid email"
)

// notSpaceOrAt mirrors the browser's [^\s@]; RE2's \s is ASCII only.
const notSpaceOrAt = `[^\t\n\v\f\r \x{00A0}\x{1680}\x{2000}-\x{200A}\x{2028}\x{2029}\x{202F}\x{205F}\x{3000}\x{FEFF}@]`

var emailPattern = regexp.MustCompile(`^` + notSpaceOrAt + `+@` + notSpaceOrAt + `+\.` + notSpaceOrAt + `+$`)

// Field is one submitted form control.
type Field struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Value    string `json:"value"`
	Required bool   `json:"required"`
}

// Result reports whether a form may be submitted and why not.
type Result struct {
	Valid  bool              `json:"valid"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Validate checks every required field: it must be non-blank and, for email
// inputs, look like an address. Optional fields are never checked. All fields
// are visited so the caller can flag each one.
func Validate(fields []Field) Result {
	errs := make(map[string]string)

	for _, f := range fields {
		trimmed := strings.TrimSpace(f.Value)

		if !f.Required {
			continue
		}

		if trimmed == "" {
			errs[f.Name] = ReasonRequired
			continue
		}

		if strings.EqualFold(f.Type, "email") && !IsEmail(f.Value) {
			errs[f.Name] = ReasonInvalidEmail
		}
	}

	if len(errs) == 0 {
		return Result{Valid: true}
	}
	return Result{Valid: false, Errors: errs}
}

// IsEmail reports whether s passes the site's email check.
func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}
