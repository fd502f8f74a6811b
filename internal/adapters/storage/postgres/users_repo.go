package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-adoption-api/internal/domain/users"

	"github.com/google/uuid"
)

type UsersRepo struct {
	db *sql.DB
}

func NewUsersRepo(db *sql.DB) *UsersRepo {
	return &UsersRepo{db: db}
}

const userColumns = `
	id, first_name, last_name, email, password, role, pets,
	created_at, updated_at`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertUser(ctx context.Context, db execer, u users.User) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		strings.ToLower(u.Email),
		u.Password,
		string(u.Role),
		nonNilStrings(u.Pets),
		u.CreatedAt,
		u.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return users.ErrConflict
	}
	return err
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	return insertUser(ctx, r.db, u)
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return users.User{}, users.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	u, err := scanUser(row)
	if errors.Is(err, sql.ErrNoRows) {
		return users.User{}, users.ErrNotFound
	}
	return u, err
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]users.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET
			first_name = $2,
			last_name = $3,
			email = $4,
			password = $5,
			role = $6,
			pets = $7,
			updated_at = $8
		WHERE id = $1
	`,
		u.ID,
		u.FirstName,
		u.LastName,
		strings.ToLower(u.Email),
		u.Password,
		string(u.Role),
		nonNilStrings(u.Pets),
		u.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return users.ErrConflict
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return users.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&n)
	return n, err
}

// InsertMany inserta el lote en una transacción: o entran todos o ninguno.
func (r *UsersRepo) InsertMany(ctx context.Context, items []users.User) ([]users.User, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	out := make([]users.User, 0, len(items))
	for i, u := range items {
		if strings.TrimSpace(u.ID) == "" {
			u.ID = uuid.NewString()
		}
		if err := insertUser(ctx, tx, u); err != nil {
			return nil, fmt.Errorf("insert user %d: %w", i, err)
		}
		out = append(out, u)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UsersRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM users`)
	return err
}

func scanUser(s rowScanner) (users.User, error) {
	var u users.User
	var role string
	var petIDs []string

	if err := s.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.Email,
		&u.Password,
		&role,
		textArray(&petIDs),
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return users.User{}, err
	}

	u.Role = users.Role(role)
	u.Pets = nonNilStrings(petIDs)
	return u, nil
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
