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

//go:generate mockgen -destination=mocks/mock_unit_of_work.go -package=mocks bookstore/internal/store UnitOfWork

// UnitOfWork queues entity changes and persists them atomically on Commit.
type UnitOfWork interface {
	AddAuthor(a *entity.Author)
	UpdateAuthor(a *entity.Author)
	RemoveAuthor(a *entity.Author)
	AddBook(b *entity.Book)
	UpdateBook(b *entity.Book)
	RemoveBook(b *entity.Book)
	Commit(ctx context.Context) error
}

// sqlBuilder is satisfied by the goqu insert, update and delete datasets.
type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

type step struct {
	op    operation
	table string
	id    func() int
	exec  func(ctx context.Context, tx pgx.Tx) error
}

// Session is the Postgres UnitOfWork. Changes are applied in the order
// they were queued. Inserts write the assigned id and version back into
// the entity; updates write back the bumped version. After a failed Commit
// the session and its entities should be discarded.
type Session struct {
	store   *Store
	pending []step
}

func (s *Session) AddAuthor(a *entity.Author) {
	s.pending = append(s.pending, step{
		op:    opInsert,
		table: tableAuthors,
		id:    func() int { return a.ID },
		exec: func(ctx context.Context, tx pgx.Tx) error {
			ds := dialect.Insert(tableAuthors).
				Rows(goqu.Record{
					colFirstName: a.FirstName,
					colLastName:  a.LastName,
					colBio:       nullable(a.Bio),
				}).
				Returning(colID, colVersion).
				Prepared(true)
			return s.queryRow(ctx, tx, ds, &a.ID, &a.Version)
		},
	})
}

func (s *Session) UpdateAuthor(a *entity.Author) {
	s.pending = append(s.pending, step{
		op:    opUpdate,
		table: tableAuthors,
		id:    func() int { return a.ID },
		exec: func(ctx context.Context, tx pgx.Tx) error {
			ds := dialect.Update(tableAuthors).
				Set(goqu.Record{
					colFirstName: a.FirstName,
					colLastName:  a.LastName,
					colBio:       nullable(a.Bio),
					colVersion:   goqu.L(colVersion + " + 1"),
				}).
				Where(goqu.Ex{colID: a.ID, colVersion: a.Version}).
				Returning(colVersion).
				Prepared(true)
			return s.queryRow(ctx, tx, ds, &a.Version)
		},
	})
}

func (s *Session) RemoveAuthor(a *entity.Author) {
	s.pending = append(s.pending, step{
		op:    opDelete,
		table: tableAuthors,
		id:    func() int { return a.ID },
		exec: func(ctx context.Context, tx pgx.Tx) error {
			ds := dialect.Delete(tableAuthors).
				Where(goqu.Ex{colID: a.ID, colVersion: a.Version}).
				Prepared(true)
			return s.exec(ctx, tx, ds)
		},
	})
}

func (s *Session) AddBook(b *entity.Book) {
	s.pending = append(s.pending, step{
		op:    opInsert,
		table: tableBooks,
		id:    func() int { return b.ID },
		exec: func(ctx context.Context, tx pgx.Tx) error {
			// An author added earlier in the same session has its id by now.
			if b.AuthorID == 0 && b.Author != nil {
				b.AuthorID = b.Author.ID
			}
			ds := dialect.Insert(tableBooks).
				Rows(bookRecord(b)).
				Returning(colID, colVersion).
				Prepared(true)
			return s.queryRow(ctx, tx, ds, &b.ID, &b.Version)
		},
	})
}

func (s *Session) UpdateBook(b *entity.Book) {
	s.pending = append(s.pending, step{
		op:    opUpdate,
		table: tableBooks,
		id:    func() int { return b.ID },
		exec: func(ctx context.Context, tx pgx.Tx) error {
			record := bookRecord(b)
			record[colVersion] = goqu.L(colVersion + " + 1")
			ds := dialect.Update(tableBooks).
				Set(record).
				Where(goqu.Ex{colID: b.ID, colVersion: b.Version}).
				Returning(colVersion).
				Prepared(true)
			return s.queryRow(ctx, tx, ds, &b.Version)
		},
	})
}

func (s *Session) RemoveBook(b *entity.Book) {
	s.pending = append(s.pending, step{
		op:    opDelete,
		table: tableBooks,
		id:    func() int { return b.ID },
		exec: func(ctx context.Context, tx pgx.Tx) error {
			ds := dialect.Delete(tableBooks).
				Where(goqu.Ex{colID: b.ID, colVersion: b.Version}).
				Prepared(true)
			return s.exec(ctx, tx, ds)
		},
	})
}

// Commit applies every queued change in one transaction. A version
// mismatch on update or delete rolls everything back and returns
// ErrConcurrencyConflict.
func (s *Session) Commit(ctx context.Context) error {
	if len(s.pending) == 0 {
		return nil
	}

	timeoutCtx, cancel := s.store.withTimeout(ctx)
	defer cancel()

	tx, err := s.store.db.Begin(timeoutCtx)
	if err != nil {
		return fmt.Errorf("begin session: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(timeoutCtx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) && s.store.logger != nil {
			s.store.logger.Warn(logMsgRollbackFailed, "error", rbErr)
		}
	}()

	for _, st := range s.pending {
		if err := st.exec(timeoutCtx, tx); err != nil {
			if errors.Is(err, ErrConcurrencyConflict) && s.store.logger != nil {
				s.store.logger.Info(logMsgConcurrencyConflict, "table", st.table, "id", st.id(), "operation", string(st.op))
			}
			return translate(st.op, st.table, err)
		}
	}

	if err := tx.Commit(timeoutCtx); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	if s.store.logger != nil {
		s.store.logger.Debug(logMsgCommit, "changes", len(s.pending))
	}
	s.pending = nil
	return nil
}

func (s *Session) queryRow(ctx context.Context, tx pgx.Tx, ds sqlBuilder, dest ...any) error {
	query, args, err := ds.ToSQL()
	if err != nil {
		return fmt.Errorf("build statement: %w", err)
	}
	defer s.store.trace(query, args, time.Now())

	if err := tx.QueryRow(ctx, query, args...).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrConcurrencyConflict
		}
		return err
	}
	return nil
}

func (s *Session) exec(ctx context.Context, tx pgx.Tx, ds sqlBuilder) error {
	query, args, err := ds.ToSQL()
	if err != nil {
		return fmt.Errorf("build statement: %w", err)
	}
	defer s.store.trace(query, args, time.Now())

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrConcurrencyConflict
	}
	return nil
}

func bookRecord(b *entity.Book) goqu.Record {
	return goqu.Record{
		colTitle:    b.Title,
		colYear:     b.Year,
		colISBN:     b.ISBN,
		colSummary:  nullable(b.Summary),
		colImage:    nullable(b.Image),
		colPrice:    b.Price,
		colAuthorID: b.AuthorID,
	}
}

// nullable turns an optional column value into NULL or its value.
func nullable(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}
