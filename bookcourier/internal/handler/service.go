package handler

import (
	"context"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var _ BookCourierService = (*service.Service)(nil)

type BookCourierService interface {
	Role(ctx context.Context, email string) (model.Role, error)
	CreateUser(ctx context.Context, req model.CreateUserRequest) (model.InsertResult, error)

	CreateBook(ctx context.Context, principal string, req model.CreateBookRequest) (model.InsertResult, error)
	ListPublishedBooks(ctx context.Context) ([]model.Book, error)
	SearchBooks(ctx context.Context, title string, sort model.SortOrder) ([]model.Book, error)
	ListAllBooks(ctx context.Context) ([]model.Book, error)
	ListLibrarianBooks(ctx context.Context, email string) ([]model.Book, error)
	SetBookStatus(ctx context.Context, principal, id string, status model.BookStatus) (model.UpdateResult, error)
	DeleteBook(ctx context.Context, principal, id string) (model.DeleteResult, error)

	CreateOrder(ctx context.Context, principal string, req model.CreateOrderRequest) (model.InsertResult, error)
	ListOrders(ctx context.Context, email string) ([]model.Order, error)
	ListAllOrders(ctx context.Context) ([]model.Order, error)
	OrderOwner(ctx context.Context, id string) (string, error)
	CancelOrder(ctx context.Context, principal, id string) (model.UpdateResult, error)
	AdvanceOrder(ctx context.Context, principal, id string, target model.OrderStatus) (model.UpdateResult, error)

	AddWishlist(ctx context.Context, principal string, req model.WishlistRequest) (model.InsertResult, error)
	ListWishlist(ctx context.Context, principal string) ([]model.WishlistEntry, error)
	CreateReview(ctx context.Context, principal string, req model.ReviewRequest) (model.InsertResult, error)
	ListReviews(ctx context.Context, bookID string) ([]model.Review, error)

	SaveEvent(ctx context.Context, event model.Event) error
	Stats(ctx context.Context) (model.StatsInfo, error)
}
