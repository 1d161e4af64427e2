package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

// CreateUser godoc
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param input body model.CreateUserRequest true "user"
// @Success 200 {object} model.InsertResult
// @Failure 400 {object} echo.HTTPError
// @Router /users [post]
func (h *Handler) CreateUser(c echo.Context) error {
	var req model.CreateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}
	res, err := h.svc.CreateUser(c.Request().Context(), req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, res)
}

type roleResponse struct {
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

// GetRole godoc
// @Summary Role of the caller
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} roleResponse
// @Failure 401 {object} echo.HTTPError
// @Router /users/role [get]
func (h *Handler) GetRole(c echo.Context) error {
	email, err := principal(c)
	if err != nil {
		return err
	}
	role, err := h.svc.Role(c.Request().Context(), email)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, roleResponse{Email: email, Role: role})
}
