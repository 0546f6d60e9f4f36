package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/jackc/pgx/v5"

	"bookstore/internal/entity"
)

// bookSelect joins the owning author so projections can read its name.
func bookSelect() *goqu.SelectDataset {
	return dialect.From(goqu.T(tableBooks).As("b")).
		Join(goqu.T(tableAuthors).As("a"), goqu.On(goqu.I("a."+colID).Eq(goqu.I("b."+colAuthorID)))).
		Select(
			goqu.I("b."+colID),
			goqu.I("b."+colTitle),
			goqu.I("b."+colYear),
			goqu.I("b."+colISBN),
			goqu.I("b."+colSummary),
			goqu.I("b."+colImage),
			goqu.I("b."+colPrice),
			goqu.I("b."+colAuthorID),
			goqu.I("b."+colVersion),
			goqu.I("a."+colFirstName),
			goqu.I("a."+colLastName),
		)
}

func scanBook(row pgx.Row) (entity.Book, error) {
	var (
		b      entity.Book
		author entity.Author
	)
	err := row.Scan(
		&b.ID, &b.Title, &b.Year, &b.ISBN, &b.Summary, &b.Image, &b.Price, &b.AuthorID, &b.Version,
		&author.FirstName, &author.LastName,
	)
	if err != nil {
		return entity.Book{}, err
	}
	author.ID = b.AuthorID
	b.Author = &author
	return b, nil
}

// ListBooks returns every book with its author loaded, ordered by id.
func (s *Store) ListBooks(ctx context.Context) ([]entity.Book, error) {
	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.listBooksWhere(timeoutCtx)
}

func (s *Store) listBooksWhere(ctx context.Context, where ...exp.Expression) ([]entity.Book, error) {
	query, args, err := bookSelect().
		Where(where...).
		Order(goqu.I("b." + colID).Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list books query: %w", err)
	}
	defer s.trace(query, args, time.Now())

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	books := []entity.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, b)
	}
	return books, rows.Err()
}

// FindBook returns the book with the given id and its author.
// Returns ErrNotFound if the book does not exist.
func (s *Store) FindBook(ctx context.Context, id int) (entity.Book, error) {
	query, args, err := bookSelect().
		Where(goqu.I("b." + colID).Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return entity.Book{}, fmt.Errorf("build find book query: %w", err)
	}

	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	defer s.trace(query, args, time.Now())

	b, err := scanBook(s.db.QueryRow(timeoutCtx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, ErrNotFound
		}
		return entity.Book{}, fmt.Errorf("find book %d: %w", id, err)
	}
	return b, nil
}

// BookExists reports whether a book row with the given id exists.
func (s *Store) BookExists(ctx context.Context, id int) (bool, error) {
	return s.exists(ctx, tableBooks, id)
}
