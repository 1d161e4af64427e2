package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/errs"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

func (s *Service) AddWishlist(ctx context.Context, principal string, req model.WishlistRequest) (model.InsertResult, error) {
	bookID := strings.TrimSpace(req.BookID)
	if bookID == "" {
		return model.InsertResult{}, errs.Validation("bookId is required")
	}
	if !validID(bookID) {
		return model.InsertResult{}, errs.Validation("bookId is not a valid id")
	}
	if _, err := s.repo.GetBook(ctx, bookID); err != nil {
		return model.InsertResult{}, err
	}
	id, err := s.repo.AddWishlist(ctx, model.WishlistEntry{
		BookID:    bookID,
		UserEmail: principal,
		AddedAt:   s.now(),
	})
	if err != nil {
		return model.InsertResult{}, err
	}
	s.publish(ctx, model.EventWishlistAdded, bookID, principal)
	return model.Inserted(strconv.FormatInt(id, 10)), nil
}

func (s *Service) ListWishlist(ctx context.Context, principal string) ([]model.WishlistEntry, error) {
	return s.repo.ListWishlist(ctx, principal)
}

// CreateReview requires a paid order of the book by principal.
func (s *Service) CreateReview(ctx context.Context, principal string, req model.ReviewRequest) (model.InsertResult, error) {
	bookID := strings.TrimSpace(req.BookID)
	switch {
	case bookID == "":
		return model.InsertResult{}, errs.Validation("bookId is required")
	case req.Rating < 1 || req.Rating > 5:
		return model.InsertResult{}, errs.Validation("rating must be between 1 and 5")
	case !validID(bookID):
		return model.InsertResult{}, errs.Forbidden("a paid order of this book is required to review it")
	}

	paid, err := s.repo.HasPaidOrder(ctx, bookID, principal)
	if err != nil {
		return model.InsertResult{}, err
	}
	if !paid {
		return model.InsertResult{}, errs.Forbidden("a paid order of this book is required to review it")
	}

	id, err := s.repo.CreateReview(ctx, model.Review{
		BookID:    bookID,
		Rating:    req.Rating,
		Comment:   strings.TrimSpace(req.Comment),
		UserEmail: principal,
		CreatedAt: s.now(),
	})
	if err != nil {
		return model.InsertResult{}, err
	}
	s.publish(ctx, model.EventReviewCreated, bookID, principal)
	return model.Inserted(strconv.FormatInt(id, 10)), nil
}

func (s *Service) ListReviews(ctx context.Context, bookID string) ([]model.Review, error) {
	if !validID(bookID) {
		return []model.Review{}, nil
	}
	return s.repo.ListReviews(ctx, bookID)
}
