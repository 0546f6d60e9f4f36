package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/entity"
	"bookstore/internal/testutil"
)

func addAuthor(t *testing.T, s *Store, first, last string) *entity.Author {
	t.Helper()
	a := &entity.Author{FirstName: first, LastName: last}
	uow := s.Begin()
	uow.AddAuthor(a)
	require.NoError(t, uow.Commit(context.Background()))
	return a
}

func TestStore_AddAndFindAuthor(t *testing.T) {
	s := New(testutil.NewTestPool(t))
	ctx := context.Background()

	a := addAuthor(t, s, "Jane", "Austen")
	require.NotZero(t, a.ID)
	assert.Equal(t, 1, a.Version)

	b := addAuthor(t, s, "Mary", "Shelley")
	assert.NotEqual(t, a.ID, b.ID)

	found, err := s.FindAuthor(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", found.FirstName)
	assert.Equal(t, "Austen", found.LastName)
	assert.Nil(t, found.Bio)
	assert.Empty(t, found.Books)

	all, err := s.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = s.FindAuthor(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	exists, err := s.AuthorExists(ctx, 999)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_UpdateAuthorBumpsVersion(t *testing.T) {
	s := New(testutil.NewTestPool(t))
	ctx := context.Background()
	a := addAuthor(t, s, "Jane", "Austen")

	a.LastName = "Austin"
	uow := s.Begin()
	uow.UpdateAuthor(a)
	require.NoError(t, uow.Commit(ctx))
	assert.Equal(t, 2, a.Version)

	found, err := s.FindAuthor(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Austin", found.LastName)
	assert.Equal(t, 2, found.Version)
}

func TestStore_ConcurrentUpdatesOnlyOneWins(t *testing.T) {
	s := New(testutil.NewTestPool(t))
	ctx := context.Background()
	a := addAuthor(t, s, "Jane", "Austen")

	first, err := s.FindAuthor(ctx, a.ID)
	require.NoError(t, err)
	second, err := s.FindAuthor(ctx, a.ID)
	require.NoError(t, err)
	first.FirstName = "First"
	second.FirstName = "Second"

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, author := range []*entity.Author{&first, &second} {
		wg.Add(1)
		go func(i int, author *entity.Author) {
			defer wg.Done()
			uow := s.Begin()
			uow.UpdateAuthor(author)
			errs[i] = uow.Commit(ctx)
		}(i, author)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, ErrConcurrencyConflict):
			conflicts++
		default:
			t.Errorf("unexpected commit error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, 1, conflicts)

	found, err := s.FindAuthor(ctx, a.ID)
	require.NoError(t, err)
	assert.Contains(t, []string{"First", "Second"}, found.FirstName)
	assert.Equal(t, 2, found.Version)
}

func TestStore_UpdateDeletedAuthorConflicts(t *testing.T) {
	s := New(testutil.NewTestPool(t))
	ctx := context.Background()
	a := addAuthor(t, s, "Jane", "Austen")
	stale := *a

	uow := s.Begin()
	uow.RemoveAuthor(a)
	require.NoError(t, uow.Commit(ctx))

	stale.FirstName = "Changed"
	uow = s.Begin()
	uow.UpdateAuthor(&stale)
	assert.ErrorIs(t, uow.Commit(ctx), ErrConcurrencyConflict)

	exists, err := s.AuthorExists(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_BookWithAuthorInOneSession(t *testing.T) {
	s := New(testutil.NewTestPool(t))
	ctx := context.Background()

	author := &entity.Author{FirstName: "Jane", LastName: "Austen"}
	summary := "Courtship and misunderstanding."
	book := &entity.Book{
		Title:   "Pride and Prejudice",
		Year:    1813,
		ISBN:    "9780141439518",
		Summary: &summary,
		Price:   decimal.NewNullDecimal(decimal.RequireFromString("9.99")),
		Author:  author,
	}

	uow := s.Begin()
	uow.AddAuthor(author)
	uow.AddBook(book)
	require.NoError(t, uow.Commit(ctx))
	assert.Equal(t, author.ID, book.AuthorID)

	found, err := s.FindBook(ctx, book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pride and Prejudice", found.Title)
	require.NotNil(t, found.Author)
	assert.Equal(t, "Jane Austen", found.Author.FullName())
	assert.True(t, found.Price.Valid)
	assert.True(t, decimal.RequireFromString("9.99").Equal(found.Price.Decimal))

	withBooks, err := s.FindAuthor(ctx, author.ID)
	require.NoError(t, err)
	assert.Len(t, withBooks.Books, 1)

	books, err := s.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 1)
}

func TestStore_ConstraintErrors(t *testing.T) {
	s := New(testutil.NewTestPool(t))
	ctx := context.Background()
	author := addAuthor(t, s, "Jane", "Austen")

	t.Run("missing author", func(t *testing.T) {
		uow := s.Begin()
		uow.AddBook(&entity.Book{Title: "Orphan", Year: 2000, ISBN: "1", AuthorID: 999})
		assert.ErrorIs(t, uow.Commit(ctx), ErrReferenceNotFound)
	})

	t.Run("duplicate isbn", func(t *testing.T) {
		uow := s.Begin()
		uow.AddBook(&entity.Book{Title: "Emma", Year: 1815, ISBN: "2", AuthorID: author.ID})
		require.NoError(t, uow.Commit(ctx))

		uow = s.Begin()
		uow.AddBook(&entity.Book{Title: "Emma again", Year: 1815, ISBN: "2", AuthorID: author.ID})
		assert.ErrorIs(t, uow.Commit(ctx), ErrDuplicate)
	})

	t.Run("author still referenced", func(t *testing.T) {
		uow := s.Begin()
		uow.RemoveAuthor(author)
		assert.ErrorIs(t, uow.Commit(ctx), ErrReferenced)
	})
}

func TestStore_FailedCommitRollsBackEverything(t *testing.T) {
	s := New(testutil.NewTestPool(t))
	ctx := context.Background()

	uow := s.Begin()
	uow.AddAuthor(&entity.Author{FirstName: "Jane", LastName: "Austen"})
	uow.AddBook(&entity.Book{Title: "Orphan", Year: 2000, ISBN: "1", AuthorID: 999})
	require.Error(t, uow.Commit(ctx))

	all, err := s.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
