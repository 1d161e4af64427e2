package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/errs"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

func (s *Service) CreateBook(ctx context.Context, principal string, req model.CreateBookRequest) (model.InsertResult, error) {
	title, author := strings.TrimSpace(req.Title), strings.TrimSpace(req.Author)
	switch {
	case title == "":
		return model.InsertResult{}, errs.Validation("title is required")
	case author == "":
		return model.InsertResult{}, errs.Validation("author is required")
	case req.Price == nil:
		return model.InsertResult{}, errs.Validation("price is required")
	case *req.Price < 0:
		return model.InsertResult{}, errs.Validation("price must not be negative")
	}

	status := req.Status
	if status == "" {
		status = model.BookPublished
	}
	if !status.Valid() {
		return model.InsertResult{}, errs.Validation("status must be one of [published unpublished]")
	}

	librarian := req.LibrarianEmail
	if librarian == "" {
		librarian = principal
	}
	if librarian != principal {
		return model.InsertResult{}, errs.Forbidden("librarianEmail must match the authenticated user")
	}

	book := model.Book{
		ID:             uuid.NewString(),
		Title:          title,
		Author:         author,
		Image:          req.Image,
		Price:          *req.Price,
		Status:         status,
		LibrarianEmail: librarian,
		CreatedAt:      s.now(),
	}
	if err := s.repo.CreateBook(ctx, book); err != nil {
		return model.InsertResult{}, err
	}
	s.publish(ctx, model.EventBookCreated, book.ID, principal)
	return model.Inserted(book.ID), nil
}

func (s *Service) ListPublishedBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, model.BookFilter{Status: model.BookPublished})
}

// SearchBooks matches title case-insensitively; unpublished books never match.
func (s *Service) SearchBooks(ctx context.Context, title string, sort model.SortOrder) ([]model.Book, error) {
	sort = model.SortOrder(strings.ToLower(string(sort)))
	if !sort.Valid() {
		return nil, errs.Validation("sort must be one of [asc desc]")
	}
	return s.repo.ListBooks(ctx, model.BookFilter{
		Status: model.BookPublished,
		Title:  strings.TrimSpace(title),
		Sort:   sort,
	})
}

func (s *Service) ListAllBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, model.BookFilter{})
}

func (s *Service) ListLibrarianBooks(ctx context.Context, email string) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, model.BookFilter{LibrarianEmail: email})
}

func (s *Service) SetBookStatus(ctx context.Context, principal, id string, status model.BookStatus) (model.UpdateResult, error) {
	if !status.Valid() {
		return model.UpdateResult{}, errs.Validation("status must be one of [published unpublished]")
	}
	if !validID(id) {
		return model.UpdateResult{}, errs.NotFound("book not found")
	}
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return model.UpdateResult{}, err
	}
	if book.Status == status {
		return model.UpdateResult{
			Acknowledged: true,
			MatchedCount: 1,
			Message:      "book is already " + string(status),
		}, nil
	}
	if err := s.repo.SetBookStatus(ctx, id, status); err != nil {
		return model.UpdateResult{}, err
	}
	s.publish(ctx, model.EventBookStatusChanged, id, principal)
	return model.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

// DeleteBook removes the book together with every order referencing it.
func (s *Service) DeleteBook(ctx context.Context, principal, id string) (model.DeleteResult, error) {
	if !validID(id) {
		return model.DeleteResult{}, errs.NotFound("book not found")
	}
	res, err := s.repo.DeleteBook(ctx, id)
	if err != nil {
		return model.DeleteResult{}, err
	}
	s.publish(ctx, model.EventBookDeleted, id, principal)
	return res, nil
}
