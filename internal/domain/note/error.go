package note

import "errors"

var (
	// ErrNotFound - заметки нет, id не разбирается или заметка чужая.
	ErrNotFound     = errors.New("note not found")
	ErrInvalidInput = errors.New("title and items are required")
)
