package repository

import (
	"context"
	"database/sql"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	sq "github.com/Masterminds/squirrel"

	"github.com/Astemirdum/bookcourier/bookcourier/internal/errs"
	"github.com/Astemirdum/bookcourier/bookcourier/internal/model"
)

func (r *repository) CreateUser(ctx context.Context, user model.User) error {
	q, args, err := qb.Insert(usersTableName).
		Columns("email", "name", "role", "created_at").
		Values(user.Email, user.Name, user.Role, user.CreatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return errs.ErrAlreadyExists
		}
		r.log.Error("CreateUser", zap.String("q", q), zap.Error(err))
		return err
	}
	return nil
}

func (r *repository) GetRole(ctx context.Context, email string) (model.Role, error) {
	q, args, err := qb.Select("role").
		From(usersTableName).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.RoleNone, err
	}
	var role model.Role
	if err := r.db.GetContext(ctx, &role, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RoleNone, nil
		}
		return model.RoleNone, err
	}
	return role, nil
}
