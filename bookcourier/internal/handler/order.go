package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

// CreateOrder godoc
// @Summary Place an order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param input body model.CreateOrderRequest true "order"
// @Success 200 {object} model.InsertResult
// @Failure 400,401,403,404 {object} echo.HTTPError
// @Router /orders [post]
func (h *Handler) CreateOrder(c echo.Context) error {
	email, err := principal(c)
	if err != nil {
		return err
	}
	var req model.CreateOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.svc.CreateOrder(c.Request().Context(), email, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// ListOrders godoc
// @Summary Orders of the caller
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param email query string true "caller email"
// @Success 200 {array} model.Order
// @Failure 400,401,403 {object} echo.HTTPError
// @Router /orders [get]
func (h *Handler) ListOrders(c echo.Context) error {
	email, err := principal(c)
	if err != nil {
		return err
	}
	query := c.QueryParam("email")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	if query != email {
		return echo.NewHTTPError(http.StatusForbidden, "forbidden access")
	}
	orders, err := h.svc.ListOrders(c.Request().Context(), email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

// ListAllOrders godoc
// @Summary Every order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Order
// @Failure 401,403 {object} echo.HTTPError
// @Router /orders/all [get]
func (h *Handler) ListAllOrders(c echo.Context) error {
	orders, err := h.svc.ListAllOrders(c.Request().Context())
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, orders)
}

// CancelOrder godoc
// @Summary Cancel a pending order
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "order id"
// @Success 200 {object} model.UpdateResult
// @Failure 400,401,403,404 {object} echo.HTTPError
// @Router /orders/{id} [patch]
func (h *Handler) CancelOrder(c echo.Context) error {
	email, err := principal(c)
	if err != nil {
		return err
	}
	res, err := h.svc.CancelOrder(c.Request().Context(), email, c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

// AdvanceOrder godoc
// @Summary Ship or deliver an order
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "order id"
// @Param input body model.OrderStatusRequest true "target status"
// @Success 200 {object} model.UpdateResult
// @Failure 400,401,403,404 {object} echo.HTTPError
// @Router /orders/status/{id} [patch]
func (h *Handler) AdvanceOrder(c echo.Context) error {
	email, err := principal(c)
	if err != nil {
		return err
	}
	var req model.OrderStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.svc.AdvanceOrder(c.Request().Context(), email, c.Param("id"), req.Status)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}
