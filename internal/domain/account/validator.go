package account

import (
	"strings"

	"notekeeper/internal/domain/credential"
)

type Validator interface {
	Validate(c Credentials) (username, password string, err error)
}

// FieldValidator проверяет только наличие и непустоту полей.
type FieldValidator struct{}

func NewFieldValidator() *FieldValidator {
	return &FieldValidator{}
}

func (v *FieldValidator) Validate(c Credentials) (string, string, error) {
	if c.Username == nil || c.Password == nil {
		return "", "", ErrMissingFields
	}

	if strings.TrimSpace(*c.Username) == "" || *c.Password == "" {
		return "", "", ErrBlankFields
	}

	if len(*c.Password) > credential.MaxPasswordLen {
		return "", "", ErrPasswordTooLong
	}

	return *c.Username, *c.Password, nil
}
