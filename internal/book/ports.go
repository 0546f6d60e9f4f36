package book

import (
	"context"

	"bookstore/internal/entity"
	"bookstore/internal/store"
)

//go:generate mockgen -destination=mock_repository_test.go -package=book bookstore/internal/book Repository

// Repository defines the contract for book storage used by the handler.
type Repository interface {
	ListBooks(ctx context.Context) ([]entity.Book, error)
	FindBook(ctx context.Context, id int) (entity.Book, error)
	BookExists(ctx context.Context, id int) (bool, error)
	Begin() store.UnitOfWork
}
