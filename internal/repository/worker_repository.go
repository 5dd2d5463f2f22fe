package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/shramik/admin-backend/internal/database"
	"github.com/shramik/admin-backend/internal/model"
)

const workerColumns = `id, first_name, last_name, phone_number, password_hash, role, is_active, created_at, updated_at`

// WorkerRepository handles worker data access.
type WorkerRepository struct {
	db database.DB
}

// NewWorkerRepository creates a new WorkerRepository.
func NewWorkerRepository(db database.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func scanWorker(row pgx.Row, w *model.Worker) error {
	return row.Scan(&w.ID, &w.FirstName, &w.LastName, &w.PhoneNumber, &w.PasswordHash, &w.Role, &w.IsActive, &w.CreatedAt, &w.UpdatedAt)
}

// GetByID retrieves a worker by ID.
func (r *WorkerRepository) GetByID(ctx context.Context, id int64) (*model.Worker, error) {
	w := &model.Worker{}
	if err := scanWorker(r.db.QueryRow(ctx, `SELECT `+workerColumns+` FROM workers WHERE id = $1`, id), w); err != nil {
		return nil, notFound(err)
	}
	return w, nil
}

// GetByPhone retrieves a worker by their unique phone number.
func (r *WorkerRepository) GetByPhone(ctx context.Context, phone string) (*model.Worker, error) {
	w := &model.Worker{}
	if err := scanWorker(r.db.QueryRow(ctx, `SELECT `+workerColumns+` FROM workers WHERE phone_number = $1`, phone), w); err != nil {
		return nil, notFound(err)
	}
	return w, nil
}

// ListPaginated retrieves workers matching the filter, newest first.
func (r *WorkerRepository) ListPaginated(ctx context.Context, f model.WorkerFilter, limit, offset int) ([]model.Worker, int, error) {
	const where = ` WHERE ($1 = '' OR first_name ILIKE $2 OR last_name ILIKE $2 OR phone_number LIKE $3)
		AND ($4::boolean IS NULL OR is_active = $4)`
	namePattern, phoneLike := containsPattern(f.Search), phonePattern(f.Search)

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM workers`+where, f.Search, namePattern, phoneLike, f.IsActive).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+workerColumns+` FROM workers`+where+` ORDER BY created_at DESC, id DESC LIMIT $5 OFFSET $6`,
		f.Search, namePattern, phoneLike, f.IsActive, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var workers []model.Worker
	for rows.Next() {
		var w model.Worker
		if err := scanWorker(rows, &w); err != nil {
			return nil, 0, err
		}
		workers = append(workers, w)
	}
	return workers, total, rows.Err()
}

// Create inserts a new worker in its own transaction. The phone number is
// checked first for a clean conflict; the unique constraint still decides
// races between concurrent creates.
func (r *WorkerRepository) Create(ctx context.Context, w *model.Worker) error {
	return database.WithTx(ctx, r.db, func(ctx context.Context, tx database.DB) error {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM workers WHERE phone_number = $1)`, w.PhoneNumber,
		).Scan(&exists); err != nil {
			return err
		}
		if exists {
			return ErrDuplicatePhone
		}

		err := tx.QueryRow(ctx,
			`INSERT INTO workers (first_name, last_name, phone_number, password_hash, role, is_active)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id, created_at, updated_at`,
			w.FirstName, w.LastName, w.PhoneNumber, w.PasswordHash, w.Role, w.IsActive,
		).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return ErrDuplicatePhone
			}
			return err
		}
		return nil
	})
}

// Update overwrites every mutable column of w.
func (r *WorkerRepository) Update(ctx context.Context, w *model.Worker) error {
	err := r.db.QueryRow(ctx,
		`UPDATE workers
		 SET first_name = $1, last_name = $2, phone_number = $3, password_hash = $4, role = $5, is_active = $6, updated_at = NOW()
		 WHERE id = $7
		 RETURNING created_at, updated_at`,
		w.FirstName, w.LastName, w.PhoneNumber, w.PasswordHash, w.Role, w.IsActive, w.ID,
	).Scan(&w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePhone
		}
		return notFound(err)
	}
	return nil
}

// ToggleStatus flips is_active in a single statement and returns the new row.
func (r *WorkerRepository) ToggleStatus(ctx context.Context, id int64) (*model.Worker, error) {
	w := &model.Worker{}
	err := scanWorker(r.db.QueryRow(ctx,
		`UPDATE workers SET is_active = NOT is_active, updated_at = NOW()
		 WHERE id = $1
		 RETURNING `+workerColumns, id,
	), w)
	if err != nil {
		return nil, notFound(err)
	}
	return w, nil
}

// Delete removes a worker by ID.
func (r *WorkerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
