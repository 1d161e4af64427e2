package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/errs"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

var orderColumns = []string{
	"id", "book_id", "book_title", "price", "user_name", "user_email",
	"phone", "address", "order_status", "payment_status", "order_date",
}

func (r *repository) CreateOrder(ctx context.Context, o model.Order) error {
	q, args, err := qb.Insert(ordersTableName).
		Columns(orderColumns...).
		Values(o.ID, o.BookID, o.BookTitle, o.Price, o.UserName, o.UserEmail,
			o.Phone, o.Address, o.OrderStatus, o.PaymentStatus, o.OrderDate).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("CreateOrder", zap.String("q", q), zap.Any("args", args))
		return err
	}
	return nil
}

func (r *repository) GetOrder(ctx context.Context, id string) (model.Order, error) {
	q, args, err := qb.Select(orderColumns...).
		From(ordersTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Order{}, err
	}
	var order model.Order
	if err := r.db.GetContext(ctx, &order, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Order{}, errs.NotFound("order not found")
		}
		return model.Order{}, err
	}
	return order, nil
}

// ListOrders returns the orders of userEmail, or every order when it is empty.
func (r *repository) ListOrders(ctx context.Context, userEmail string) ([]model.Order, error) {
	sb := qb.Select(orderColumns...).From(ordersTableName)
	if userEmail != "" {
		sb = sb.Where(sq.Eq{"user_email": userEmail})
	}
	q, args, err := sb.OrderBy("order_date desc").ToSql()
	if err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0)
	if err := r.db.SelectContext(ctx, &orders, q, args...); err != nil {
		return nil, err
	}
	return orders, nil
}

// UpdateOrderStatus moves the order from one status to another. It reports
// false when the order no longer has the from status.
func (r *repository) UpdateOrderStatus(ctx context.Context, id string, from, to model.OrderStatus) (bool, error) {
	q, args, err := qb.Update(ordersTableName).
		Set("order_status", to).
		Where(sq.Eq{"id": id, "order_status": from}).
		ToSql()
	if err != nil {
		return false, err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *repository) HasPaidOrder(ctx context.Context, bookID, userEmail string) (bool, error) {
	q, args, err := qb.Select("1").
		Prefix("select exists (").
		From(ordersTableName).
		Where(sq.Eq{
			"book_id":        bookID,
			"user_email":     userEmail,
			"payment_status": model.PaymentPaid,
		}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}
	var exists bool
	if err := r.db.GetContext(ctx, &exists, q, args...); err != nil {
		return false, err
	}
	return exists, nil
}
