package note

import "strings"

// Input - тело POST/PUT. Оба поля обязательны, заголовок не может быть пустым.
type Input struct {
	Title *string   `json:"title,omitempty" doc:"Заголовок заметки"`
	Items *[]string `json:"items,omitempty" doc:"Пункты заметки"`
}

func NewInput(title string, items []string) Input {
	return Input{Title: &title, Items: &items}
}

func (in Input) Validate() error {
	if in.Title == nil || in.Items == nil {
		return ErrInvalidInput
	}
	if strings.TrimSpace(*in.Title) == "" {
		return ErrInvalidInput
	}

	return nil
}

type ListResponse struct {
	Notes []Note `json:"notes"`
}
