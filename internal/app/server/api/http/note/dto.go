package note

import "notekeeper/internal/domain/note"

type idInput struct {
	ID string `path:"id" doc:"Идентификатор заметки"`
}

type writeInput struct {
	Body note.Input
}

type replaceInput struct {
	ID   string `path:"id" doc:"Идентификатор заметки"`
	Body note.Input
}

type listOutput struct {
	Body note.ListResponse
}

type noteOutput struct {
	Body *note.Note
}
