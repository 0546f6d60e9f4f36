package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"

	"bookstore/internal/entity"
)

var authorColumns = []any{colID, colFirstName, colLastName, colBio, colVersion}

func scanAuthor(row pgx.Row) (entity.Author, error) {
	var a entity.Author
	err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.Bio, &a.Version)
	return a, err
}

// ListAuthors returns every author ordered by id.
func (s *Store) ListAuthors(ctx context.Context) ([]entity.Author, error) {
	query, args, err := dialect.From(tableAuthors).
		Select(authorColumns...).
		Order(goqu.C(colID).Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list authors query: %w", err)
	}

	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	defer s.trace(query, args, time.Now())

	rows, err := s.db.Query(timeoutCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	defer rows.Close()

	authors := []entity.Author{}
	for rows.Next() {
		a, err := scanAuthor(rows)
		if err != nil {
			return nil, fmt.Errorf("scan author: %w", err)
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

// FindAuthor returns the author with the given id together with its books.
// Returns ErrNotFound if the author does not exist.
func (s *Store) FindAuthor(ctx context.Context, id int) (entity.Author, error) {
	query, args, err := dialect.From(tableAuthors).
		Select(authorColumns...).
		Where(goqu.C(colID).Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return entity.Author{}, fmt.Errorf("build find author query: %w", err)
	}

	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	a, err := scanAuthor(s.db.QueryRow(timeoutCtx, query, args...))
	s.trace(query, args, start)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Author{}, ErrNotFound
		}
		return entity.Author{}, fmt.Errorf("find author %d: %w", id, err)
	}

	books, err := s.listBooksWhere(timeoutCtx, goqu.I("b."+colAuthorID).Eq(id))
	if err != nil {
		return entity.Author{}, err
	}
	a.Books = books
	return a, nil
}

// AuthorExists reports whether an author row with the given id exists.
func (s *Store) AuthorExists(ctx context.Context, id int) (bool, error) {
	return s.exists(ctx, tableAuthors, id)
}

func (s *Store) exists(ctx context.Context, table string, id int) (bool, error) {
	query, args, err := dialect.From(table).
		Select(goqu.L("1")).
		Where(goqu.C(colID).Eq(id)).
		Limit(1).
		Prepared(true).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build exists query: %w", err)
	}

	timeoutCtx, cancel := s.withTimeout(ctx)
	defer cancel()
	defer s.trace(query, args, time.Now())

	var one int
	if err := s.db.QueryRow(timeoutCtx, query, args...).Scan(&one); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check %s %d: %w", table, id, err)
	}
	return true, nil
}
