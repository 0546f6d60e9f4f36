// Package dto holds the wire shapes of the API. They carry no behavior;
// validate tags are checked before a handler runs.
package dto

// AuthorCreate is the request body for POST /api/Authors.
type AuthorCreate struct {
	FirstName string  `json:"firstName" validate:"required,max=50" example:"Jane"`
	LastName  string  `json:"lastName" validate:"required,max=50" example:"Austen"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=250"`
}

// AuthorUpdate is the request body for PUT /api/Authors/{id}. ID must match
// the path.
type AuthorUpdate struct {
	ID        int     `json:"id" example:"1"`
	FirstName string  `json:"firstName" validate:"required,max=50" example:"Jane"`
	LastName  string  `json:"lastName" validate:"required,max=50" example:"Austen"`
	Bio       *string `json:"bio,omitempty" validate:"omitempty,max=250"`
}

// AuthorReadOnly is the representation returned by the API.
type AuthorReadOnly struct {
	ID        int     `json:"id" example:"1"`
	FirstName string  `json:"firstName" example:"Jane"`
	LastName  string  `json:"lastName" example:"Austen"`
	Bio       *string `json:"bio,omitempty"`
}
