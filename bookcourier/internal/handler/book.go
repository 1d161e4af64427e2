package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

// CreateBook godoc
// @Summary Add a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body model.CreateBookRequest true "book"
// @Success 200 {object} model.InsertResult
// @Failure 400,401,403 {object} echo.HTTPError
// @Router /books [post]
func (h *Handler) CreateBook(c echo.Context) error {
	email, err := principal(c)
	if err != nil {
		return err
	}
	var req model.CreateBookRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.svc.CreateBook(c.Request().Context(), email, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// ListBooks godoc
// @Summary Published books
// @Tags books
// @Produce json
// @Success 200 {array} model.Book
// @Router /books [get]
func (h *Handler) ListBooks(c echo.Context) error {
	books, err := h.svc.ListPublishedBooks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// SearchBooks godoc
// @Summary Search published books by title
// @Tags books
// @Produce json
// @Param search query string false "title substring"
// @Param sort query string false "price order" Enums(asc, desc)
// @Success 200 {array} model.Book
// @Failure 400 {object} echo.HTTPError
// @Router /books/search [get]
func (h *Handler) SearchBooks(c echo.Context) error {
	books, err := h.svc.SearchBooks(c.Request().Context(),
		c.QueryParam("search"), model.SortOrder(c.QueryParam("sort")))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// ListAllBooks godoc
// @Summary Every book regardless of status
// @Tags books
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Book
// @Failure 401,403 {object} echo.HTTPError
// @Router /books/all [get]
func (h *Handler) ListAllBooks(c echo.Context) error {
	books, err := h.svc.ListAllBooks(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// ListMyBooks godoc
// @Summary Books added by the calling librarian
// @Tags books
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Book
// @Failure 401,403 {object} echo.HTTPError
// @Router /books/mine [get]
func (h *Handler) ListMyBooks(c echo.Context) error {
	email, err := principal(c)
	if err != nil {
		return err
	}
	books, err := h.svc.ListLibrarianBooks(c.Request().Context(), email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, books)
}

// SetBookStatus godoc
// @Summary Publish or unpublish a book
// @Tags books
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "book id"
// @Param input body model.BookStatusRequest true "status"
// @Success 200 {object} model.UpdateResult
// @Failure 400,401,403,404 {object} echo.HTTPError
// @Router /books/status/{id} [patch]
func (h *Handler) SetBookStatus(c echo.Context) error {
	email, err := principal(c)
	if err != nil {
		return err
	}
	var req model.BookStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.svc.SetBookStatus(c.Request().Context(), email, c.Param("id"), req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// DeleteBook godoc
// @Summary Delete a book and its orders
// @Tags books
// @Produce json
// @Security BearerAuth
// @Param id path string true "book id"
// @Success 200 {object} model.DeleteResult
// @Failure 401,403,404 {object} echo.HTTPError
// @Router /books/{id} [delete]
func (h *Handler) DeleteBook(c echo.Context) error {
	email, err := principal(c)
	if err != nil {
		return err
	}
	res, err := h.svc.DeleteBook(c.Request().Context(), email, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}
