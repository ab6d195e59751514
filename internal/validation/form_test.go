package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsCompleteForm(t *testing.T) {
	result := Validate([]Field{
		{Name: "name", Type: "text", Value: "Ada", Required: true},
		{Name: "email", Type: "email", Value: "ada@example.org", Required: true},
		{Name: "note", Type: "textarea"},
	})

	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateFlagsEveryBadField(t *testing.T) {
	result := Validate([]Field{
		{Name: "name", Type: "text", Value: "   ", Required: true},
		{Name: "email", Type: "email", Value: "not-an-email", Required: true},
		{Name: "amount", Type: "select", Value: "", Required: true},
	})

	assert.False(t, result.Valid)
	assert.Equal(t, map[string]string{
		"name":   ReasonRequired,
		"email":  ReasonInvalidEmail,
		"amount": ReasonRequired,
	}, result.Errors)
}

func TestValidateOptionalEmailIsNotChecked(t *testing.T) {
	assert.True(t, Validate([]Field{{Name: "email", Type: "email"}}).Valid)
	assert.True(t, Validate([]Field{{Name: "email", Type: "email", Value: "a@b"}}).Valid)
}

func TestValidateRequiredEmail(t *testing.T) {
	result := Validate([]Field{{Name: "email", Type: "EMAIL", Value: "a@b", Required: true}})
	assert.False(t, result.Valid)
	assert.Equal(t, ReasonInvalidEmail, result.Errors["email"])

	result = Validate([]Field{{Name: "email", Type: "email", Value: "a\u00a0b@c.de", Required: true}})
	assert.False(t, result.Valid)
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("info@empowerfoundation.org"))
	assert.False(t, IsEmail(" info@empowerfoundation.org"))
	assert.False(t, IsEmail("a b@c.d"))
	assert.False(t, IsEmail("a@@b.c"))
	assert.True(t, IsEmail("élise@fondation.fr"))
}

func TestIsEmailRejectsUnicodeSpace(t *testing.T) {
	for _, s := range []string{
		"a\u00a0b@c.de",
		"a\vb@c.de",
		"a\u2003b@c.de",
		"ab@c\u3000d.de",
		"ab@c.d\ufeffe",
	} {
		assert.False(t, IsEmail(s), "%q", s)
	}
}
