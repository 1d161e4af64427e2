package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

// AddWishlist godoc
// @Summary Add a book to the caller's wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body model.WishlistRequest true "book"
// @Success 200 {object} model.InsertResult
// @Failure 400,401,404 {object} echo.HTTPError
// @Router /wishlist [post]
func (h *Handler) AddWishlist(c echo.Context) error {
	email, err := principal(c)
	if err != nil {
		return err
	}
	var req model.WishlistRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.svc.AddWishlist(c.Request().Context(), email, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// ListWishlist godoc
// @Summary Wishlist of the caller
// @Tags wishlist
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.WishlistEntry
// @Failure 401 {object} echo.HTTPError
// @Router /wishlist [get]
func (h *Handler) ListWishlist(c echo.Context) error {
	email, err := principal(c)
	if err != nil {
		return err
	}
	entries, err := h.svc.ListWishlist(c.Request().Context(), email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, entries)
}

// CreateReview godoc
// @Summary Review a purchased book
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body model.ReviewRequest true "review"
// @Success 200 {object} model.InsertResult
// @Failure 400,401,403 {object} echo.HTTPError
// @Router /reviews [post]
func (h *Handler) CreateReview(c echo.Context) error {
	email, err := principal(c)
	if err != nil {
		return err
	}
	var req model.ReviewRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.svc.CreateReview(c.Request().Context(), email, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// ListReviews godoc
// @Summary Reviews of a book
// @Tags reviews
// @Produce json
// @Param bookId path string true "book id"
// @Success 200 {array} model.Review
// @Router /reviews/{bookId} [get]
func (h *Handler) ListReviews(c echo.Context) error {
	reviews, err := h.svc.ListReviews(c.Request().Context(), c.Param("bookId"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}
