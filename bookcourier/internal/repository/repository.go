package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	CreateUser(ctx context.Context, user model.User) error
	GetRole(ctx context.Context, email string) (model.Role, error)

	CreateBook(ctx context.Context, book model.Book) error
	GetBook(ctx context.Context, id string) (model.Book, error)
	ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error)
	SetBookStatus(ctx context.Context, id string, status model.BookStatus) error
	DeleteBook(ctx context.Context, id string) (model.DeleteResult, error)

	CreateOrder(ctx context.Context, order model.Order) error
	GetOrder(ctx context.Context, id string) (model.Order, error)
	ListOrders(ctx context.Context, userEmail string) ([]model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, from, to model.OrderStatus) (bool, error)
	HasPaidOrder(ctx context.Context, bookID, userEmail string) (bool, error)

	AddWishlist(ctx context.Context, entry model.WishlistEntry) (int64, error)
	ListWishlist(ctx context.Context, userEmail string) ([]model.WishlistEntry, error)
	CreateReview(ctx context.Context, review model.Review) (int64, error)
	ListReviews(ctx context.Context, bookID string) ([]model.Review, error)

	SaveEvent(ctx context.Context, event model.Event) error
	GetStats(ctx context.Context) (model.StatsInfo, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName    = `users`
	booksTableName    = `books`
	ordersTableName   = `orders`
	wishlistTableName = `wishlist`
	reviewsTableName  = `reviews`
	eventsTableName   = `events`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
