package entity

import "github.com/shopspring/decimal"

// Book is a persisted book row. AuthorID must reference an existing Author
// when the row is written; Author is the navigation loaded by reads.
type Book struct {
	ID       int
	Title    string
	Year     int
	ISBN     string
	Summary  *string
	Image    *string
	Price    decimal.NullDecimal
	AuthorID int
	Author   *Author
	Version  int
}
