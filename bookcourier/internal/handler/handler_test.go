package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/errs"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/handler"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
	"github.com/Astemirdum/bookcourier/pkg/auth0"

	service_mocks "github.com/Astemirdum/bookcourier/bookcourier/internal/handler/mocks"
)

var secret = []byte("handler-test-secret")

const (
	bookID  = "5c7f6a0e-8d1b-4b36-9d4a-2f7b0c1e9a11"
	orderID = "b9a1c2d3-4e5f-4a6b-8c7d-0e1f2a3b4c5d"

	userEmail      = "reader@mail.com"
	librarianEmail = "lib@mail.com"
	adminEmail     = "admin@mail.com"
)

type mockBehavior func(r *service_mocks.MockBookCourierService)

type testCase struct {
	name         string
	method       string
	target       string
	body         string
	principal    string
	mockBehavior mockBehavior
	expectedCode int
	expectedBody string
}

func withRole(email string, role model.Role) mockBehavior {
	return func(r *service_mocks.MockBookCourierService) {
		r.EXPECT().Role(gomock.Any(), email).Return(role, nil)
	}
}

func run(t *testing.T, tests []testCase) {
	t.Helper()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookCourierService(c)
			h := handler.New(svc, auth0.NewSecretVerifier(secret), zap.NewNop())
			e := h.NewRouter()

			r := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.principal != "" {
				token, err := auth0.SignToken(secret, tt.principal, time.Hour)
				require.NoError(t, err)
				r.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
			}
			w := httptest.NewRecorder()

			if tt.mockBehavior != nil {
				tt.mockBehavior(svc)
			}
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name:         "ok",
			method:       http.MethodGet,
			target:       "/manage/health",
			expectedCode: http.StatusOK,
			expectedBody: "OK",
		},
	})
}

func TestHandler_Users(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name:   "create",
			method: http.MethodPost,
			target: "/users",
			body:   `{"name":"Reader","email":"reader@mail.com"}`,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().
					CreateUser(gomock.Any(), model.CreateUserRequest{Name: "Reader", Email: userEmail}).
					Return(model.Inserted(userEmail), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"acknowledged":true,"insertedId":"reader@mail.com"}`,
		},
		{
			name:   "already exists",
			method: http.MethodPost,
			target: "/users",
			body:   `{"email":"reader@mail.com"}`,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().
					CreateUser(gomock.Any(), model.CreateUserRequest{Email: userEmail}).
					Return(model.InsertResult{Acknowledged: true, Message: "user already exists"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"acknowledged":true,"insertedId":null,"message":"user already exists"}`,
		},
		{
			name:         "err. bad email",
			method:       http.MethodPost,
			target:       "/users",
			body:         `{"email":"reader"}`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"email is not a valid email"}`,
		},
		{
			name:         "err. broken json",
			method:       http.MethodPost,
			target:       "/users",
			body:         `{"email":`,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"invalid json body"}`,
		},
		{
			name:      "role",
			method:    http.MethodGet,
			target:    "/users/role",
			principal: userEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().Role(gomock.Any(), userEmail).Return(model.RoleNone, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"email":"reader@mail.com","role":"none"}`,
		},
		{
			name:         "err. role without token",
			method:       http.MethodGet,
			target:       "/users/role",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"No Authorization Header"}`,
		},
	})
}

func TestHandler_Books(t *testing.T) {
	t.Parallel()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	book := model.Book{
		ID:             bookID,
		Title:          "Go in Action",
		Author:         "Kennedy",
		Price:          10,
		Status:         model.BookPublished,
		LibrarianEmail: librarianEmail,
		CreatedAt:      created,
	}
	bookJSON := `{"id":"5c7f6a0e-8d1b-4b36-9d4a-2f7b0c1e9a11","title":"Go in Action","author":"Kennedy","image":"","price":10,"status":"published","librarianEmail":"lib@mail.com","createdAt":"2024-05-01T10:00:00Z"}`
	price := 10.0

	run(t, []testCase{
		{
			name:   "list published",
			method: http.MethodGet,
			target: "/books",
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().ListPublishedBooks(gomock.Any()).Return([]model.Book{book}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[` + bookJSON + `]`,
		},
		{
			name:   "search",
			method: http.MethodGet,
			target: "/books/search?search=go&sort=asc",
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().SearchBooks(gomock.Any(), "go", model.SortAsc).Return([]model.Book{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:   "err. search bad sort",
			method: http.MethodGet,
			target: "/books/search?sort=price",
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().SearchBooks(gomock.Any(), "", model.SortOrder("price")).
					Return(nil, errs.Validation("sort must be one of [asc desc]"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"sort must be one of [asc desc]"}`,
		},
		{
			name:         "err. create without token",
			method:       http.MethodPost,
			target:       "/books",
			body:         `{"title":"T","author":"A","price":10}`,
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"No Authorization Header"}`,
		},
		{
			name:         "err. create by user",
			method:       http.MethodPost,
			target:       "/books",
			body:         `{"title":"T","author":"A","price":10}`,
			principal:    userEmail,
			mockBehavior: withRole(userEmail, model.RoleUser),
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"requires role librarian"}`,
		},
		{
			name:      "err. create role lookup failed",
			method:    http.MethodPost,
			target:    "/books",
			body:      `{"title":"T","author":"A","price":10}`,
			principal: librarianEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().Role(gomock.Any(), librarianEmail).Return(model.RoleNone, errors.New("conn reset"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"internal server error"}`,
		},
		{
			name:         "err. create without price",
			method:       http.MethodPost,
			target:       "/books",
			body:         `{"title":"T","author":"A"}`,
			principal:    librarianEmail,
			mockBehavior: withRole(librarianEmail, model.RoleLibrarian),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"price is required"}`,
		},
		{
			name:      "create",
			method:    http.MethodPost,
			target:    "/books",
			body:      `{"title":"T","author":"A","price":10}`,
			principal: librarianEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				withRole(librarianEmail, model.RoleLibrarian)(r)
				r.EXPECT().
					CreateBook(gomock.Any(), librarianEmail, model.CreateBookRequest{Title: "T", Author: "A", Price: &price}).
					Return(model.Inserted(bookID), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"acknowledged":true,"insertedId":"5c7f6a0e-8d1b-4b36-9d4a-2f7b0c1e9a11"}`,
		},
		{
			name:      "mine",
			method:    http.MethodGet,
			target:    "/books/mine",
			principal: librarianEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				withRole(librarianEmail, model.RoleLibrarian)(r)
				r.EXPECT().ListLibrarianBooks(gomock.Any(), librarianEmail).Return([]model.Book{book}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[` + bookJSON + `]`,
		},
		{
			name:         "err. all by librarian",
			method:       http.MethodGet,
			target:       "/books/all",
			principal:    librarianEmail,
			mockBehavior: withRole(librarianEmail, model.RoleLibrarian),
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"requires role admin"}`,
		},
		{
			name:      "unpublish",
			method:    http.MethodPatch,
			target:    "/books/status/" + bookID,
			body:      `{"status":"unpublished"}`,
			principal: adminEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				withRole(adminEmail, model.RoleAdmin)(r)
				r.EXPECT().SetBookStatus(gomock.Any(), adminEmail, bookID, model.BookUnpublished).
					Return(model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"acknowledged":true,"matchedCount":1,"modifiedCount":1}`,
		},
		{
			name:      "err. bad status",
			method:    http.MethodPatch,
			target:    "/books/status/" + bookID,
			body:      `{"status":"archived"}`,
			principal: adminEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				withRole(adminEmail, model.RoleAdmin)(r)
				r.EXPECT().SetBookStatus(gomock.Any(), adminEmail, bookID, model.BookStatus("archived")).
					Return(model.UpdateResult{}, errs.Validation("status must be one of [published unpublished]"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"status must be one of [published unpublished]"}`,
		},
		{
			name:      "delete",
			method:    http.MethodDelete,
			target:    "/books/" + bookID,
			principal: adminEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				withRole(adminEmail, model.RoleAdmin)(r)
				r.EXPECT().DeleteBook(gomock.Any(), adminEmail, bookID).
					Return(model.DeleteResult{Acknowledged: true, DeletedCount: 1, OrdersDeleted: 2}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"acknowledged":true,"deletedCount":1,"ordersDeleted":2}`,
		},
		{
			name:      "err. delete unknown",
			method:    http.MethodDelete,
			target:    "/books/" + bookID,
			principal: adminEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				withRole(adminEmail, model.RoleAdmin)(r)
				r.EXPECT().DeleteBook(gomock.Any(), adminEmail, bookID).
					Return(model.DeleteResult{}, errs.NotFound("book not found"))
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"book not found"}`,
		},
		{
			name:         "err. delete by user",
			method:       http.MethodDelete,
			target:       "/books/" + bookID,
			principal:    userEmail,
			mockBehavior: withRole(userEmail, model.RoleUser),
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"requires role admin"}`,
		},
	})
}

func TestHandler_Orders(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name:      "create",
			method:    http.MethodPost,
			target:    "/orders",
			body:      `{"bookId":"5c7f6a0e-8d1b-4b36-9d4a-2f7b0c1e9a11","userEmail":"reader@mail.com","phone":"+100"}`,
			principal: userEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().
					CreateOrder(gomock.Any(), userEmail, model.CreateOrderRequest{BookID: bookID, UserEmail: userEmail, Phone: "+100"}).
					Return(model.Inserted(orderID), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"acknowledged":true,"insertedId":"b9a1c2d3-4e5f-4a6b-8c7d-0e1f2a3b4c5d"}`,
		},
		{
			name:      "err. create for someone else",
			method:    http.MethodPost,
			target:    "/orders",
			body:      `{"bookId":"5c7f6a0e-8d1b-4b36-9d4a-2f7b0c1e9a11","userEmail":"other@mail.com"}`,
			principal: userEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().CreateOrder(gomock.Any(), userEmail, gomock.Any()).
					Return(model.InsertResult{}, errs.Forbidden("userEmail must match the authenticated user"))
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"userEmail must match the authenticated user"}`,
		},
		{
			name:         "err. create without book",
			method:       http.MethodPost,
			target:       "/orders",
			body:         `{"userEmail":"reader@mail.com"}`,
			principal:    userEmail,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"bookId is required"}`,
		},
		{
			name:      "list",
			method:    http.MethodGet,
			target:    "/orders?email=reader@mail.com",
			principal: userEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().ListOrders(gomock.Any(), userEmail).Return([]model.Order{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "err. list someone else",
			method:       http.MethodGet,
			target:       "/orders?email=other@mail.com",
			principal:    userEmail,
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"forbidden access"}`,
		},
		{
			name:         "err. list without email",
			method:       http.MethodGet,
			target:       "/orders",
			principal:    userEmail,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"email is required"}`,
		},
		{
			name:      "cancel",
			method:    http.MethodPatch,
			target:    "/orders/" + orderID,
			principal: userEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().OrderOwner(gomock.Any(), orderID).Return(userEmail, nil)
				r.EXPECT().CancelOrder(gomock.Any(), userEmail, orderID).
					Return(model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"acknowledged":true,"matchedCount":1,"modifiedCount":1}`,
		},
		{
			name:      "err. cancel twice",
			method:    http.MethodPatch,
			target:    "/orders/" + orderID,
			principal: userEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().OrderOwner(gomock.Any(), orderID).Return(userEmail, nil)
				r.EXPECT().CancelOrder(gomock.Any(), userEmail, orderID).
					Return(model.UpdateResult{}, errs.InvalidTransition("only pending orders can be cancelled, order is cancelled"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"only pending orders can be cancelled, order is cancelled"}`,
		},
		{
			name:      "err. cancel foreign order",
			method:    http.MethodPatch,
			target:    "/orders/" + orderID,
			principal: userEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().OrderOwner(gomock.Any(), orderID).Return("other@mail.com", nil)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"forbidden access"}`,
		},
		{
			name:      "err. cancel unknown order",
			method:    http.MethodPatch,
			target:    "/orders/" + orderID,
			principal: userEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().OrderOwner(gomock.Any(), orderID).Return("", errs.NotFound("order not found"))
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"message":"order not found"}`,
		},
		{
			name:      "advance no-op",
			method:    http.MethodPatch,
			target:    "/orders/status/" + orderID,
			body:      `{"status":"shipped"}`,
			principal: librarianEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				withRole(librarianEmail, model.RoleLibrarian)(r)
				r.EXPECT().AdvanceOrder(gomock.Any(), librarianEmail, orderID, model.OrderShipped).
					Return(model.UpdateResult{Acknowledged: true, MatchedCount: 1, Message: "order is already shipped"}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"acknowledged":true,"matchedCount":1,"modifiedCount":0,"message":"order is already shipped"}`,
		},
		{
			name:      "err. advance illegal",
			method:    http.MethodPatch,
			target:    "/orders/status/" + orderID,
			body:      `{"status":"delivered"}`,
			principal: adminEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				withRole(adminEmail, model.RoleAdmin)(r)
				r.EXPECT().AdvanceOrder(gomock.Any(), adminEmail, orderID, model.OrderDelivered).
					Return(model.UpdateResult{}, errs.InvalidTransition("cannot move order from pending to delivered"))
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"cannot move order from pending to delivered"}`,
		},
		{
			name:         "err. advance by user",
			method:       http.MethodPatch,
			target:       "/orders/status/" + orderID,
			body:         `{"status":"shipped"}`,
			principal:    userEmail,
			mockBehavior: withRole(userEmail, model.RoleUser),
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"requires role librarian or admin"}`,
		},
		{
			name:      "all",
			method:    http.MethodGet,
			target:    "/orders/all",
			principal: adminEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				withRole(adminEmail, model.RoleAdmin)(r)
				r.EXPECT().ListAllOrders(gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"internal server error"}`,
		},
	})
}

func TestHandler_Collections(t *testing.T) {
	t.Parallel()
	run(t, []testCase{
		{
			name:      "wishlist add",
			method:    http.MethodPost,
			target:    "/wishlist",
			body:      `{"bookId":"5c7f6a0e-8d1b-4b36-9d4a-2f7b0c1e9a11"}`,
			principal: userEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().AddWishlist(gomock.Any(), userEmail, model.WishlistRequest{BookID: bookID}).
					Return(model.Inserted("1"), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"acknowledged":true,"insertedId":"1"}`,
		},
		{
			name:      "wishlist list",
			method:    http.MethodGet,
			target:    "/wishlist",
			principal: userEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().ListWishlist(gomock.Any(), userEmail).Return([]model.WishlistEntry{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:      "err. review without purchase",
			method:    http.MethodPost,
			target:    "/reviews",
			body:      `{"bookId":"5c7f6a0e-8d1b-4b36-9d4a-2f7b0c1e9a11","rating":5}`,
			principal: userEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().CreateReview(gomock.Any(), userEmail, model.ReviewRequest{BookID: bookID, Rating: 5}).
					Return(model.InsertResult{}, errs.Forbidden("a paid order of this book is required to review it"))
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"a paid order of this book is required to review it"}`,
		},
		{
			name:         "err. review rating",
			method:       http.MethodPost,
			target:       "/reviews",
			body:         `{"bookId":"5c7f6a0e-8d1b-4b36-9d4a-2f7b0c1e9a11","rating":9}`,
			principal:    userEmail,
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"rating must be at most 5"}`,
		},
		{
			name:   "reviews public",
			method: http.MethodGet,
			target: "/reviews/" + bookID,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				r.EXPECT().ListReviews(gomock.Any(), bookID).Return([]model.Review{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:         "err. wishlist without token",
			method:       http.MethodGet,
			target:       "/wishlist",
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"message":"No Authorization Header"}`,
		},
	})
}

func TestHandler_Stats(t *testing.T) {
	t.Parallel()
	last := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	run(t, []testCase{
		{
			name:      "ok",
			method:    http.MethodGet,
			target:    "/stats",
			principal: adminEmail,
			mockBehavior: func(r *service_mocks.MockBookCourierService) {
				withRole(adminEmail, model.RoleAdmin)(r)
				r.EXPECT().Stats(gomock.Any()).Return(model.StatsInfo{Data: []model.EventStats{
					{Type: model.EventOrderCreated, Count: 3, LastOccurredAt: last},
				}}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"data":[{"type":"order.created","count":3,"lastOccurredAt":"2024-05-01T10:00:00Z"}]}`,
		},
		{
			name:         "err. not admin",
			method:       http.MethodGet,
			target:       "/stats",
			principal:    librarianEmail,
			mockBehavior: withRole(librarianEmail, model.RoleLibrarian),
			expectedCode: http.StatusForbidden,
			expectedBody: `{"message":"requires role admin"}`,
		},
	})
}

func TestHandler_InvalidToken(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	svc := service_mocks.NewMockBookCourierService(c)
	e := handler.New(svc, auth0.NewSecretVerifier(secret), zap.NewNop()).NewRouter()

	forged, err := auth0.SignToken([]byte("other-secret"), userEmail, time.Hour)
	require.NoError(t, err)

	for _, header := range []string{"Bearer " + forged, "Basic abc", "Bearer "} {
		r := httptest.NewRequest(http.MethodGet, "/wishlist", http.NoBody)
		r.Header.Set(echo.HeaderAuthorization, header)
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)
		require.Equal(t, http.StatusUnauthorized, w.Code, header)
	}
}
