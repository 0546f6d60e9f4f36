package author

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

// BasePath is the collection route; created authors live under it.
const BasePath = "/api/Authors"

type HTTPHandler struct {
	repo      Repository
	mapper    *mapper.Mapper
	validator *httpx.Validator
	logger    *slog.Logger
}

func NewHTTPHandler(repo Repository, m *mapper.Mapper, v *httpx.Validator, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{repo: repo, mapper: m, validator: v, logger: logger}
}

// List handles GET /api/Authors
// @Summary List authors
// @Tags authors
// @Produce json
// @Success 200 {array} dto.AuthorReadOnly
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/Authors [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.repo.ListAuthors(r.Context())
	if err != nil {
		h.fail(w, r, "ListAuthors", err)
		return
	}
	httpx.JSON(w, http.StatusOK, h.mapper.AuthorsToReadOnly(authors))
}

// Get handles GET /api/Authors/{id}
// @Summary Get an author
// @Tags authors
// @Produce json
// @Param id path int true "Author ID"
// @Success 200 {object} dto.AuthorReadOnly
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/Authors/{id} [get]
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r)
	if err != nil {
		httpx.IDError(w, r, err)
		return
	}

	a, err := h.repo.FindAuthor(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.NotFound(w)
			return
		}
		h.fail(w, r, "GetAuthor", err, "id", id)
		return
	}
	httpx.JSON(w, http.StatusOK, h.mapper.AuthorToReadOnly(a))
}

// Create handles POST /api/Authors
// @Summary Create an author
// @Tags authors
// @Accept json
// @Produce json
// @Param author body dto.AuthorCreate true "Author"
// @Success 201 {object} dto.AuthorReadOnly
// @Header 201 {string} Location "/api/Authors/{id}"
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/Authors [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in dto.AuthorCreate
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.DecodeError(w, r, err)
		return
	}
	if details := h.validator.Validate(in); details != nil {
		httpx.ValidationError(w, r, details)
		return
	}

	a := h.mapper.AuthorFromCreate(in)
	uow := h.repo.Begin()
	uow.AddAuthor(&a)
	if err := uow.Commit(r.Context()); err != nil {
		h.fail(w, r, "CreateAuthor", err)
		return
	}

	httpx.Created(w, BasePath+"/"+strconv.Itoa(a.ID), h.mapper.AuthorToReadOnly(a))
}

// Update handles PUT /api/Authors/{id}
// @Summary Update an author
// @Tags authors
// @Accept json
// @Param id path int true "Author ID"
// @Param author body dto.AuthorUpdate true "Author"
// @Success 204
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/Authors/{id} [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r)
	if err != nil {
		httpx.IDError(w, r, err)
		return
	}

	var in dto.AuthorUpdate
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

	a, err := h.repo.FindAuthor(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.NotFound(w)
			return
		}
		h.fail(w, r, "UpdateAuthor", err, "id", id)
		return
	}

	h.mapper.ApplyAuthorUpdate(&a, in)
	uow := h.repo.Begin()
	uow.UpdateAuthor(&a)
	if err := uow.Commit(r.Context()); err != nil {
		if errors.Is(err, store.ErrConcurrencyConflict) {
			h.conflict(w, r, "UpdateAuthor", id)
			return
		}
		h.fail(w, r, "UpdateAuthor", err, "id", id)
		return
	}

	httpx.NoContent(w)
}

// Delete handles DELETE /api/Authors/{id}
// @Summary Delete an author
// @Description Authors that still have books cannot be deleted.
// @Tags authors
// @Param id path int true "Author ID"
// @Success 204
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/Authors/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.PathID(r)
	if err != nil {
		httpx.IDError(w, r, err)
		return
	}

	a, err := h.repo.FindAuthor(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.NotFound(w)
			return
		}
		h.fail(w, r, "DeleteAuthor", err, "id", id)
		return
	}
	if len(a.Books) > 0 {
		hasBooks(w, r)
		return
	}

	uow := h.repo.Begin()
	uow.RemoveAuthor(&a)
	if err := uow.Commit(r.Context()); err != nil {
		switch {
		case errors.Is(err, store.ErrConcurrencyConflict):
			h.conflict(w, r, "DeleteAuthor", id)
		case errors.Is(err, store.ErrReferenced):
			hasBooks(w, r)
		default:
			h.fail(w, r, "DeleteAuthor", err, "id", id)
		}
		return
	}

	httpx.NoContent(w)
}

func hasBooks(w http.ResponseWriter, r *http.Request) {
	httpx.JSONError(w, r, http.StatusBadRequest, "AUTHOR_HAS_BOOKS", "Author still has books and cannot be deleted", nil)
}

// conflict resolves a failed optimistic write: a vanished row is a 404,
// a row changed underneath the request a 400.
func (h *HTTPHandler) conflict(w http.ResponseWriter, r *http.Request, op string, id int) {
	exists, err := h.repo.AuthorExists(r.Context(), id)
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
