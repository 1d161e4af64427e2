package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

func (r *repository) AddWishlist(ctx context.Context, entry model.WishlistEntry) (int64, error) {
	q, args, err := qb.Insert(wishlistTableName).
		Columns("book_id", "user_email", "added_at").
		Values(entry.BookID, entry.UserEmail, entry.AddedAt).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := r.db.GetContext(ctx, &id, q, args...); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *repository) ListWishlist(ctx context.Context, userEmail string) ([]model.WishlistEntry, error) {
	q, args, err := qb.Select("book_id", "user_email", "added_at").
		From(wishlistTableName).
		Where(sq.Eq{"user_email": userEmail}).
		OrderBy("added_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.WishlistEntry, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) CreateReview(ctx context.Context, review model.Review) (int64, error) {
	q, args, err := qb.Insert(reviewsTableName).
		Columns("book_id", "rating", "comment", "user_email", "created_at").
		Values(review.BookID, review.Rating, review.Comment, review.UserEmail, review.CreatedAt).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := r.db.GetContext(ctx, &id, q, args...); err != nil {
		r.log.Error("CreateReview", zap.String("q", q), zap.Any("args", args))
		return 0, err
	}
	return id, nil
}

func (r *repository) ListReviews(ctx context.Context, bookID string) ([]model.Review, error) {
	q, args, err := qb.Select("book_id", "rating", "comment", "user_email", "created_at").
		From(reviewsTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	items := make([]model.Review, 0)
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
