package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ptcgpocket/companion/internal/domain/user"
	qb "github.com/ptcgpocket/companion/internal/platform/querybuilder"
)

type UserRepository struct {
	db *sqlx.DB
}

type userTableModel struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	FullName  string    `db:"full_name"`
	Picture   string    `db:"picture"`
	GoogleID  string    `db:"google_id"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	LastLogin time.Time `db:"last_login"`
}

var userSelectColumns = []string{
	"id",
	"email",
	"full_name",
	"picture",
	"google_id",
	"is_active",
	"created_at",
	"last_login",
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	row := userTableModel{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Picture:   u.Picture,
		GoogleID:  u.GoogleID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
	}

	query, args, err := qb.InsertModel("users", row, "")
	if err != nil {
		return fmt.Errorf("build insert user query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert user: %w", mapConstraintError(err))
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, bool, error) {
	return r.getOne(ctx, qb.Eq("id", id))
}

func (r *UserRepository) GetByGoogleID(ctx context.Context, googleID string) (user.User, bool, error) {
	return r.getOne(ctx, qb.Eq("google_id", googleID))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	return r.getOne(ctx, qb.Eq("email", email))
}

func (r *UserRepository) getOne(ctx context.Context, condition qb.Condition) (user.User, bool, error) {
	query, args, err := qb.Select(userSelectColumns...).From("users").
		Where(condition).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build select user query: %w", err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("select user: %w", err)
	}

	return user.User{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		Picture:   row.Picture,
		GoogleID:  row.GoogleID,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
		LastLogin: row.LastLogin,
	}, true, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	const query = `UPDATE users SET last_login = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, at, id)
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update last login rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update last login: user %s does not exist", id)
	}

	return nil
}
