package account

import "errors"

var (
	ErrMissingFields   = errors.New("username or password field is missing from request")
	ErrBlankFields     = errors.New("username or password is blank")
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
	ErrUsernameTaken   = errors.New("username already exists")
	ErrUnknownUser     = errors.New("user does not exist")
	ErrWrongPassword   = errors.New("incorrect password")
	ErrSubjectMismatch = errors.New("username does not match token subject")

	// ErrNotFound возвращают репозитории; сервис превращает ее в ErrUnknownUser.
	ErrNotFound = errors.New("account not found")
)

// IsValidation сообщает, что ошибка вызвана телом запроса, а не состоянием системы.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrBlankFields) ||
		errors.Is(err, ErrPasswordTooLong)
}
