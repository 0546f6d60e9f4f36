package dto

import "github.com/shopspring/decimal"

// BookCreate is the request body for POST /api/Books.
type BookCreate struct {
	Title    string           `json:"title" validate:"required,max=50" example:"Emma"`
	Year     int              `json:"year" validate:"required,min=-2147483648,max=2147483647" example:"1815"`
	ISBN     string           `json:"isbn" validate:"required,max=50" example:"9780141439587"`
	Summary  *string          `json:"summary,omitempty" validate:"omitempty,max=250"`
	Image    *string          `json:"image,omitempty" validate:"omitempty,max=50"`
	// Decimal amount. Responses encode it as a string; requests may send a string or a number.
	Price    *decimal.Decimal `json:"price,omitempty" validate:"omitempty,gte=0,lte=99999999.99" swaggertype:"string" example:"9.99"`
	AuthorID int              `json:"authorId" validate:"required,gt=0,max=2147483647" example:"1"`
}

// BookUpdate is the request body for PUT /api/Books/{id}. ID must match the
// path.
type BookUpdate struct {
	ID       int              `json:"id" example:"1"`
	Title    string           `json:"title" validate:"required,max=50" example:"Emma"`
	Year     int              `json:"year" validate:"required,min=-2147483648,max=2147483647" example:"1815"`
	ISBN     string           `json:"isbn" validate:"required,max=50" example:"9780141439587"`
	Summary  *string          `json:"summary,omitempty" validate:"omitempty,max=250"`
	Image    *string          `json:"image,omitempty" validate:"omitempty,max=50"`
	// Decimal amount. Responses encode it as a string; requests may send a string or a number.
	Price    *decimal.Decimal `json:"price,omitempty" validate:"omitempty,gte=0,lte=99999999.99" swaggertype:"string" example:"9.99"`
	AuthorID int              `json:"authorId" validate:"required,gt=0,max=2147483647" example:"1"`
}

// BookReadOnly is the representation returned by the API. AuthorName is
// computed from the referenced author and has no column of its own.
type BookReadOnly struct {
	ID         int              `json:"id" example:"1"`
	Title      string           `json:"title" example:"Emma"`
	Year       int              `json:"year" example:"1815"`
	ISBN       string           `json:"isbn" example:"9780141439587"`
	Summary    *string          `json:"summary,omitempty"`
	Image      *string          `json:"image,omitempty"`
	// Decimal amount encoded as a string.
	Price      *decimal.Decimal `json:"price,omitempty" swaggertype:"string" example:"9.99"`
	AuthorID   int              `json:"authorId" example:"1"`
	AuthorName string           `json:"authorName" example:"Jane Austen"`
}
