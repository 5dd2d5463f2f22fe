package repository

import (
	"context"

	"github.com/shramik/admin-backend/internal/database"
	"github.com/shramik/admin-backend/internal/model"
)

const userColumns = `id, email, name, password_hash, role, created_at, updated_at`

// UserRepository handles admin user data access.
type UserRepository struct {
	db database.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u := &model.User{}
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

// GetByEmail retrieves a user by their unique email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

// ListPaginated retrieves users matching search (email or name, case-insensitive).
func (r *UserRepository) ListPaginated(ctx context.Context, search string, limit, offset int) ([]model.User, int, error) {
	const where = ` WHERE ($1 = '' OR email ILIKE $2 OR name ILIKE $2)`
	pattern := containsPattern(search)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, search, pattern).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users`+where+` ORDER BY created_at DESC, id DESC LIMIT $3 OFFSET $4`,
		search, pattern, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}
	return users, total, rows.Err()
}

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		u.Email, u.Name, u.PasswordHash, u.Role,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

// Update overwrites every mutable column of u.
func (r *UserRepository) Update(ctx context.Context, u *model.User) error {
	err := r.db.QueryRow(ctx,
		`UPDATE users SET email = $1, name = $2, password_hash = $3, role = $4, updated_at = NOW()
		 WHERE id = $5
		 RETURNING created_at, updated_at`,
		u.Email, u.Name, u.PasswordHash, u.Role, u.ID,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return notFound(err)
	}
	return nil
}

// Delete removes a user by ID.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
