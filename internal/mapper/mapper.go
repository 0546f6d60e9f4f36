// Package mapper translates between wire DTOs and persisted entities.
//
// Fields map by identical name in both directions. The one exception is
// BookReadOnly.AuthorName, which is projected from the loaded author as
// "FirstName LastName" and is dropped when mapping back to an entity.
// Overlays never touch ID or Version; both belong to the store.
package mapper

import (
	"github.com/shopspring/decimal"

	"bookstore/internal/dto"
	"bookstore/internal/entity"
)

// Mapper holds no state. Build one at startup and share it.
type Mapper struct{}

func New() *Mapper {
	return &Mapper{}
}

func (m *Mapper) AuthorFromCreate(in dto.AuthorCreate) entity.Author {
	return entity.Author{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Bio:       cloneString(in.Bio),
	}
}

func (m *Mapper) AuthorToCreate(a entity.Author) dto.AuthorCreate {
	return dto.AuthorCreate{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Bio:       cloneString(a.Bio),
	}
}

// ApplyAuthorUpdate overlays the update onto an existing author in place.
func (m *Mapper) ApplyAuthorUpdate(dst *entity.Author, in dto.AuthorUpdate) {
	dst.FirstName = in.FirstName
	dst.LastName = in.LastName
	dst.Bio = cloneString(in.Bio)
}

func (m *Mapper) AuthorToUpdate(a entity.Author) dto.AuthorUpdate {
	return dto.AuthorUpdate{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Bio:       cloneString(a.Bio),
	}
}

func (m *Mapper) AuthorToReadOnly(a entity.Author) dto.AuthorReadOnly {
	return dto.AuthorReadOnly{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Bio:       cloneString(a.Bio),
	}
}

func (m *Mapper) AuthorFromReadOnly(in dto.AuthorReadOnly) entity.Author {
	return entity.Author{
		ID:        in.ID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Bio:       cloneString(in.Bio),
	}
}

func (m *Mapper) AuthorsToReadOnly(authors []entity.Author) []dto.AuthorReadOnly {
	out := make([]dto.AuthorReadOnly, 0, len(authors))
	for _, a := range authors {
		out = append(out, m.AuthorToReadOnly(a))
	}
	return out
}

func (m *Mapper) BookFromCreate(in dto.BookCreate) entity.Book {
	return entity.Book{
		Title:    in.Title,
		Year:     in.Year,
		ISBN:     in.ISBN,
		Summary:  cloneString(in.Summary),
		Image:    cloneString(in.Image),
		Price:    toNullDecimal(in.Price),
		AuthorID: in.AuthorID,
	}
}

func (m *Mapper) BookToCreate(b entity.Book) dto.BookCreate {
	return dto.BookCreate{
		Title:    b.Title,
		Year:     b.Year,
		ISBN:     b.ISBN,
		Summary:  cloneString(b.Summary),
		Image:    cloneString(b.Image),
		Price:    fromNullDecimal(b.Price),
		AuthorID: b.AuthorID,
	}
}

// ApplyBookUpdate overlays the update onto an existing book in place. A
// changed AuthorID drops the loaded author navigation.
func (m *Mapper) ApplyBookUpdate(dst *entity.Book, in dto.BookUpdate) {
	if dst.AuthorID != in.AuthorID {
		dst.Author = nil
	}
	dst.Title = in.Title
	dst.Year = in.Year
	dst.ISBN = in.ISBN
	dst.Summary = cloneString(in.Summary)
	dst.Image = cloneString(in.Image)
	dst.Price = toNullDecimal(in.Price)
	dst.AuthorID = in.AuthorID
}

func (m *Mapper) BookToUpdate(b entity.Book) dto.BookUpdate {
	return dto.BookUpdate{
		ID:       b.ID,
		Title:    b.Title,
		Year:     b.Year,
		ISBN:     b.ISBN,
		Summary:  cloneString(b.Summary),
		Image:    cloneString(b.Image),
		Price:    fromNullDecimal(b.Price),
		AuthorID: b.AuthorID,
	}
}

// BookToReadOnly projects a book. AuthorName is empty when the author
// navigation was not loaded.
func (m *Mapper) BookToReadOnly(b entity.Book) dto.BookReadOnly {
	out := dto.BookReadOnly{
		ID:       b.ID,
		Title:    b.Title,
		Year:     b.Year,
		ISBN:     b.ISBN,
		Summary:  cloneString(b.Summary),
		Image:    cloneString(b.Image),
		Price:    fromNullDecimal(b.Price),
		AuthorID: b.AuthorID,
	}
	if b.Author != nil {
		out.AuthorName = b.Author.FullName()
	}
	return out
}

func (m *Mapper) BookFromReadOnly(in dto.BookReadOnly) entity.Book {
	return entity.Book{
		ID:       in.ID,
		Title:    in.Title,
		Year:     in.Year,
		ISBN:     in.ISBN,
		Summary:  cloneString(in.Summary),
		Image:    cloneString(in.Image),
		Price:    toNullDecimal(in.Price),
		AuthorID: in.AuthorID,
	}
}

func (m *Mapper) BooksToReadOnly(books []entity.Book) []dto.BookReadOnly {
	out := make([]dto.BookReadOnly, 0, len(books))
	for _, b := range books {
		out = append(out, m.BookToReadOnly(b))
	}
	return out
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}
