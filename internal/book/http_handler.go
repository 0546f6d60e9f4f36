package book

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"bookstore/internal/dto"
	"bookstore/internal/httpx"
	"bookstore/internal/mapper"
	"bookstore/internal/store"
)

const BasePath = "/api/Books"

type HTTPHandler struct {
	repo      Repository
	mapper    *mapper.Mapper
	validator *httpx.Validator
	logger    *slog.Logger
}

func NewHTTPHandler(repo Repository, m *mapper.Mapper, v *httpx.Validator, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{repo: repo, mapper: m, validator: v, logger: logger}
}

// List handles GET /api/Books
// @Summary List books
// @Tags books
// @Produce json
// @Success 200 {array} dto.BookReadOnly
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/Books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.repo.ListBooks(r.Context())
	if err != nil {
		h.fail(w, r, "ListBooks", err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.mapper.BooksToReadOnly(books))
}

// Get handles GET /api/Books/{id}
// @Summary Get a book
// @Tags books
// @Produce json
// @Param id path int true "Book ID"
// @Success 200 {object} dto.BookReadOnly
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/Books/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r)
	if err != nil {
		httpx.IDError(w, r, err)
		return
	}

	b, err := h.repo.FindBook(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.NotFound(w)
			return
		}
		h.fail(w, r, "GetBook", err, "id", id)
		return
	}
	httpx.JSON(w, http.StatusOK, h.mapper.BookToReadOnly(b))
}

// Create handles POST /api/Books
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Param book body dto.BookCreate true "Book"
// @Success 201 {object} dto.BookReadOnly
// @Header 201 {string} Location "/api/Books/{id}"
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/Books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in dto.BookCreate
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.DecodeError(w, r, err)
		return
	}
	if details := h.validator.Validate(in); details != nil {
		httpx.ValidationError(w, r, details)
		return
	}

	b := h.mapper.BookFromCreate(in)
	if err := h.commit(r, func(uow store.UnitOfWork) { uow.AddBook(&b) }); err != nil {
		if h.constraintError(w, r, err) {
			return
		}
		h.fail(w, r, "CreateBook", err)
		return
	}

	// Re-read so the response carries the author's name.
	created, err := h.repo.FindBook(r.Context(), b.ID)
	if err != nil {
		h.logger.WarnContext(r.Context(), "re-read of created book failed",
			"id", b.ID,
			"error", err,
			"request_id", httpx.RequestIDFrom(r),
		)
		created = b
	}

	httpx.Created(w, BasePath+"/"+strconv.Itoa(b.ID), h.mapper.BookToReadOnly(created))
}

// Update handles PUT /api/Books/{id}
// @Summary Update a book
// @Tags books
// @Accept json
// @Param id path int true "Book ID"
// @Param book body dto.BookUpdate true "Book"
// @Success 204
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/Books/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r)
	if err != nil {
		httpx.IDError(w, r, err)
		return
	}

	var in dto.BookUpdate
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.DecodeError(w, r, err)
		return
	}
	if in.ID != id {
		httpx.IDMismatch(w, r)
		return
	}
	if details := h.validator.Validate(in); details != nil {
		httpx.ValidationError(w, r, details)
		return
	}

	b, err := h.repo.FindBook(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.NotFound(w)
			return
		}
		h.fail(w, r, "UpdateBook", err, "id", id)
		return
	}

	h.mapper.ApplyBookUpdate(&b, in)
	if err := h.commit(r, func(uow store.UnitOfWork) { uow.UpdateBook(&b) }); err != nil {
		if errors.Is(err, store.ErrConcurrencyConflict) {
			h.conflict(w, r, "UpdateBook", id)
			return
		}
		if !h.constraintError(w, r, err) {
			h.fail(w, r, "UpdateBook", err, "id", id)
		}
		return
	}

	httpx.NoContent(w)
}

// Delete handles DELETE /api/Books/{id}
// @Summary Delete a book
// @Tags books
// @Param id path int true "Book ID"
// @Success 204
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/Books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r)
	if err != nil {
		httpx.IDError(w, r, err)
		return
	}

	b, err := h.repo.FindBook(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.NotFound(w)
			return
		}
		h.fail(w, r, "DeleteBook", err, "id", id)
		return
	}

	if err := h.commit(r, func(uow store.UnitOfWork) { uow.RemoveBook(&b) }); err != nil {
		if errors.Is(err, store.ErrConcurrencyConflict) {
			h.conflict(w, r, "DeleteBook", id)
			return
		}
		h.fail(w, r, "DeleteBook", err, "id", id)
		return
	}

	httpx.NoContent(w)
}

func (h *HTTPHandler) commit(r *http.Request, queue func(store.UnitOfWork)) error {
	uow := h.repo.Begin()
	queue(uow)
	return uow.Commit(r.Context())
}

// constraintError answers the 400s a book write can trip in the database.
// It reports whether a response was written.
func (h *HTTPHandler) constraintError(w http.ResponseWriter, r *http.Request, err error) bool {
	switch {
	case errors.Is(err, store.ErrReferenceNotFound):
		httpx.ValidationError(w, r, []httpx.ErrorDetail{
			{Field: "authorId", Message: "authorId does not reference an existing author"},
		})
	case errors.Is(err, store.ErrDuplicate):
		httpx.ValidationError(w, r, []httpx.ErrorDetail{
			{Field: "isbn", Message: "isbn is already in use"},
		})
	default:
		return false
	}
	return true
}

func (h *HTTPHandler) conflict(w http.ResponseWriter, r *http.Request, op string, id int) {
	exists, err := h.repo.BookExists(r.Context(), id)
	if err != nil {
		h.fail(w, r, op, err, "id", id)
		return
	}
	if !exists {
		httpx.NotFound(w)
		return
	}
	h.logger.WarnContext(r.Context(), "concurrency conflict",
		"operation", op,
		"id", id,
		"request_id", httpx.RequestIDFrom(r),
	)
	httpx.ConcurrencyConflict(w, r)
}

func (h *HTTPHandler) fail(w http.ResponseWriter, r *http.Request, op string, err error, attrs ...any) {
	args := append([]any{"operation", op, "error", err, "request_id", httpx.RequestIDFrom(r)}, attrs...)
	h.logger.ErrorContext(r.Context(), "request failed", args...)
	httpx.InternalError(w, r)
}
