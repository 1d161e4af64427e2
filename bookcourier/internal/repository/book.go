package repository

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/errs"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

var bookColumns = []string{"id", "title", "author", "image", "price", "status", "librarian_email", "created_at"}

func (r *repository) CreateBook(ctx context.Context, book model.Book) error {
	q, args, err := qb.Insert(booksTableName).
		Columns(bookColumns...).
		Values(book.ID, book.Title, book.Author, book.Image, book.Price, book.Status, book.LibrarianEmail, book.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("CreateBook", zap.String("q", q), zap.Any("args", args))
		return err
	}
	return nil
}

func (r *repository) GetBook(ctx context.Context, id string) (model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.NotFound("book not found")
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, filter model.BookFilter) ([]model.Book, error) {
	sb := qb.Select(bookColumns...).From(booksTableName)
	if filter.Status != "" {
		sb = sb.Where(sq.Eq{"status": filter.Status})
	}
	if filter.LibrarianEmail != "" {
		sb = sb.Where(sq.Eq{"librarian_email": filter.LibrarianEmail})
	}
	if filter.Title != "" {
		sb = sb.Where(sq.ILike{"title": "%" + escapeLike(filter.Title) + "%"})
	}
	switch filter.Sort {
	case model.SortAsc:
		sb = sb.OrderBy("price asc", "created_at desc")
	case model.SortDesc:
		sb = sb.OrderBy("price desc", "created_at desc")
	default:
		sb = sb.OrderBy("created_at desc")
	}

	q, args, err := sb.ToSql()
	if err != nil {
		return nil, err
	}
	r.log.Debug("ListBooks", zap.String("query", q), zap.Any("args", args))

	books := make([]model.Book, 0)
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) SetBookStatus(ctx context.Context, id string, status model.BookStatus) error {
	q, args, err := qb.Update(booksTableName).
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.NotFound("book not found")
	}
	return nil
}

// DeleteBook removes the book and every order referencing it in one transaction.
func (r *repository) DeleteBook(ctx context.Context, id string) (model.DeleteResult, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.DeleteResult{}, err
	}
	defer tx.Rollback() //nolint:errcheck

	q, args, err := qb.Delete(booksTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return model.DeleteResult{}, err
	}
	res, err := tx.ExecContext(ctx, q, args...)
	if err != nil {
		return model.DeleteResult{}, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return model.DeleteResult{}, err
	}
	if deleted == 0 {
		return model.DeleteResult{}, errs.NotFound("book not found")
	}

	q, args, err = qb.Delete(ordersTableName).Where(sq.Eq{"book_id": id}).ToSql()
	if err != nil {
		return model.DeleteResult{}, err
	}
	res, err = tx.ExecContext(ctx, q, args...)
	if err != nil {
		r.log.Error("DeleteBook cascade", zap.String("book_id", id), zap.Error(err))
		return model.DeleteResult{}, err
	}
	ordersDeleted, err := res.RowsAffected()
	if err != nil {
		return model.DeleteResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return model.DeleteResult{}, err
	}
	return model.DeleteResult{
		Acknowledged:  true,
		DeletedCount:  deleted,
		OrdersDeleted: ordersDeleted,
	}, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
