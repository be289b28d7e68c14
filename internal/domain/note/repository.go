package note

import "context"

// Repository - хранилище заметок. Проверка владельца выполняется внутри
// каждой операции атомарно, по паре (id, owner).
type Repository interface {
	Insert(ctx context.Context, n *Note) error
	FindByOwner(ctx context.Context, owner string) ([]Note, error)
	FindOne(ctx context.Context, owner, id string) (*Note, error)
	// FindOneAndReplace возвращает заметку после замены.
	FindOneAndReplace(ctx context.Context, owner, id string, n *Note) (*Note, error)
	FindOneAndDelete(ctx context.Context, owner, id string) (*Note, error)
}
