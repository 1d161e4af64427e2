package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/errs"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
	"github.com/Astemirdum/bookcourier/pkg/auth0"
	"github.com/Astemirdum/bookcourier/pkg/guard"
	md "github.com/Astemirdum/bookcourier/pkg/middleware"
	"github.com/Astemirdum/bookcourier/pkg/serializer"
	"github.com/Astemirdum/bookcourier/pkg/validate"
	_ "github.com/Astemirdum/bookcourier/swagger"
)

type Handler struct {
	svc      BookCourierService
	verifier auth0.Verifier
	log      *zap.Logger
}

func New(svc BookCourierService, verifier auth0.Verifier, log *zap.Logger) *Handler {
	return &Handler{
		svc:      svc,
		verifier: verifier,
		log:      log,
	}
}

// @title BookCourier API
// @version 1.0
// @description Book ordering marketplace backend.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))
	e.Validator = validate.NewCustomValidator()
	e.JSONSerializer = serializer.JSONIter{}
	e.HTTPErrorHandler = md.ErrorHandler(e, h.log)

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)
	base.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	var (
		authn     = guard.Authenticated(h.verifier)
		librarian = guard.HasRole[model.Role](h.svc, model.RoleLibrarian)
		admin     = guard.HasRole[model.Role](h.svc, model.RoleAdmin)
		staff     = guard.HasRole[model.Role](h.svc, model.RoleLibrarian, model.RoleAdmin)
		owner     = guard.OwnsResource(h.orderOwner)
	)

	api.POST("/users", h.CreateUser)
	api.GET("/users/role", h.GetRole, authn)

	api.GET("/books", h.ListBooks)
	api.GET("/books/search", h.SearchBooks)
	api.GET("/books/all", h.ListAllBooks, authn, admin)
	api.GET("/books/mine", h.ListMyBooks, authn, librarian)
	api.POST("/books", h.CreateBook, authn, librarian)
	api.PATCH("/books/status/:id", h.SetBookStatus, authn, admin)
	api.DELETE("/books/:id", h.DeleteBook, authn, admin)

	api.POST("/orders", h.CreateOrder, authn)
	api.GET("/orders", h.ListOrders, authn)
	api.GET("/orders/all", h.ListAllOrders, authn, staff)
	api.PATCH("/orders/:id", h.CancelOrder, authn, owner)
	api.PATCH("/orders/status/:id", h.AdvanceOrder, authn, staff)

	api.POST("/wishlist", h.AddWishlist, authn)
	api.GET("/wishlist", h.ListWishlist, authn)
	api.POST("/reviews", h.CreateReview, authn)
	api.GET("/reviews/:bookId", h.ListReviews)

	api.GET("/stats", h.GetStats, authn, admin)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) orderOwner(c echo.Context) (string, error) {
	owner, err := h.svc.OrderOwner(c.Request().Context(), c.Param("id"))
	if err != nil {
		return "", httpError(err)
	}
	return owner, nil
}

// httpError maps domain error kinds to HTTP statuses. Anything else is
// returned untouched and becomes a 500 in md.ErrorHandler.
func httpError(err error) error {
	switch {
	case errors.Is(err, errs.ErrValidation), errors.Is(err, errs.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return err
	}
}

func principal(c echo.Context) (string, error) {
	email, err := auth0.GetEmail(c)
	if err != nil {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	return email, nil
}

func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
