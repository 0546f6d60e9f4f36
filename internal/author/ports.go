package author

import (
	"context"

	"bookstore/internal/entity"
	"bookstore/internal/store"
)

//go:generate mockgen -destination=mock_repository_test.go -package=author bookstore/internal/author Repository

// Repository is the part of the entity store the authors handler depends on.
// *store.Store satisfies it.
type Repository interface {
	ListAuthors(ctx context.Context) ([]entity.Author, error)
	FindAuthor(ctx context.Context, id int) (entity.Author, error)
	AuthorExists(ctx context.Context, id int) (bool, error)
	Begin() store.UnitOfWork
}
