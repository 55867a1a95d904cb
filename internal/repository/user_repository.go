package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"trivia-board/internal/domain"
	"trivia-board/internal/repository/models"

	"github.com/jmoiron/sqlx"
	"github.com/sijms/go-ora/v2/network"
)

// ErrDuplicateUsername is returned by CreateUser when the unique constraint on
// USERNAME rejects the insert.
var ErrDuplicateUsername = errors.New("username already exists")

// ORA-00001: unique constraint violated
const oraUniqueViolation = 1

// sqlxUserRepository implements domain.UserRepository using sqlx.
type sqlxUserRepository struct {
	db DBTX
}

// NewSQLXUserRepository creates a new instance of sqlxUserRepository.
func NewSQLXUserRepository(db *sqlx.DB) domain.UserRepository {
	return &sqlxUserRepository{db: db}
}

func toDomainUser(m *models.User) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:        m.ID,
		Username:  m.Username,
		CreatedAt: m.CreatedAt,
	}
}

func fromDomainUser(u *domain.User) *models.User {
	if u == nil {
		return nil
	}
	return &models.User{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// CreateUser inserts a new user. CreatedAt is set when zero.
func (r *sqlxUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	m := fromDomainUser(user)

	query := `INSERT INTO USERS (ID, USERNAME, CREATED_AT) VALUES (:1, :2, :3)`
	_, err := r.db.ExecContext(ctx, query, m.ID, m.Username, m.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByUsername returns (nil, nil) when no user has that exact username.
func (r *sqlxUserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var m models.User
	query := `SELECT ID, USERNAME, CREATED_AT FROM USERS WHERE USERNAME = :1`

	if err := r.db.GetContext(ctx, &m, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return toDomainUser(&m), nil
}

// ListUsers returns every user ordered by creation time.
func (r *sqlxUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var rows []models.User
	query := `SELECT ID, USERNAME, CREATED_AT FROM USERS ORDER BY CREATED_AT, ID`

	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]domain.User, len(rows))
	for i := range rows {
		users[i] = *toDomainUser(&rows[i])
	}
	return users, nil
}

func isUniqueViolation(err error) bool {
	var oraErr *network.OracleError
	return errors.As(err, &oraErr) && oraErr.ErrCode == oraUniqueViolation
}
