package model

import (
	"time"
)

type Role string

const (
	RoleNone      Role = "none"
	RoleUser      Role = "user"
	RoleLibrarian Role = "librarian"
	RoleAdmin     Role = "admin"
)

type User struct {
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	Role      Role      `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"required,email"`
}

type BookStatus string

const (
	BookPublished   BookStatus = "published"
	BookUnpublished BookStatus = "unpublished"
)

func (s BookStatus) Valid() bool {
	return s == BookPublished || s == BookUnpublished
}

type Book struct {
	ID             string     `json:"id" db:"id"`
	Title          string     `json:"title" db:"title"`
	Author         string     `json:"author" db:"author"`
	Image          string     `json:"image" db:"image"`
	Price          float64    `json:"price" db:"price"`
	Status         BookStatus `json:"status" db:"status"`
	LibrarianEmail string     `json:"librarianEmail" db:"librarian_email"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
}

type CreateBookRequest struct {
	Title          string     `json:"title" validate:"required"`
	Author         string     `json:"author" validate:"required"`
	Price          *float64   `json:"price" validate:"required,gte=0"`
	Image          string     `json:"image"`
	Status         BookStatus `json:"status"`
	LibrarianEmail string     `json:"librarianEmail"`
}

type BookStatusRequest struct {
	Status BookStatus `json:"status" validate:"required"`
}

type SortOrder string

const (
	SortNone SortOrder = ""
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (s SortOrder) Valid() bool {
	return s == SortNone || s == SortAsc || s == SortDesc
}

// BookFilter narrows a book listing. Zero fields match everything.
type BookFilter struct {
	Status         BookStatus
	LibrarianEmail string
	Title          string
	Sort           SortOrder
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCancelled OrderStatus = "cancelled"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

type Order struct {
	ID            string        `json:"id" db:"id"`
	BookID        string        `json:"bookId" db:"book_id"`
	BookTitle     string        `json:"bookTitle" db:"book_title"`
	Price         float64       `json:"price" db:"price"`
	UserName      string        `json:"userName" db:"user_name"`
	UserEmail     string        `json:"userEmail" db:"user_email"`
	Phone         string        `json:"phone" db:"phone"`
	Address       string        `json:"address" db:"address"`
	OrderStatus   OrderStatus   `json:"orderStatus" db:"order_status"`
	PaymentStatus PaymentStatus `json:"paymentStatus" db:"payment_status"`
	OrderDate     time.Time     `json:"orderDate" db:"order_date"`
}

type CreateOrderRequest struct {
	BookID    string  `json:"bookId" validate:"required"`
	UserEmail string  `json:"userEmail" validate:"required,email"`
	BookTitle string  `json:"bookTitle"`
	Price     float64 `json:"price" validate:"gte=0"`
	UserName  string  `json:"userName"`
	Phone     string  `json:"phone"`
	Address   string  `json:"address"`
}

type OrderStatusRequest struct {
	Status OrderStatus `json:"status" validate:"required"`
}

type WishlistEntry struct {
	BookID    string    `json:"bookId" db:"book_id"`
	UserEmail string    `json:"userEmail" db:"user_email"`
	AddedAt   time.Time `json:"addedAt" db:"added_at"`
}

type WishlistRequest struct {
	BookID string `json:"bookId" validate:"required"`
}

type Review struct {
	BookID    string    `json:"bookId" db:"book_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	UserEmail string    `json:"userEmail" db:"user_email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type ReviewRequest struct {
	BookID  string `json:"bookId" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// InsertResult, UpdateResult and DeleteResult are the write acknowledgements
// returned to clients.
type InsertResult struct {
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
	Message      string  `json:"message,omitempty"`
}

type UpdateResult struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	Message       string `json:"message,omitempty"`
}

type DeleteResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	DeletedCount  int64 `json:"deletedCount"`
	OrdersDeleted int64 `json:"ordersDeleted"`
}

func Inserted(id string) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: &id}
}
