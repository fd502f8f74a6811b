package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pet-adoption-api/internal/domain/adoptions"

	"github.com/google/uuid"
)

type AdoptionsRepo struct {
	db *sql.DB
}

func NewAdoptionsRepo(db *sql.DB) *AdoptionsRepo {
	return &AdoptionsRepo{db: db}
}

const adoptionColumns = `
	id, user_id, pet_id, status, adoption_date, notes,
	created_at, updated_at`

func insertAdoption(ctx context.Context, db execer, a adoptions.Adoption) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO adoptions (`+adoptionColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		a.ID,
		a.UserID,
		a.PetID,
		string(a.Status),
		toNullTime(a.AdoptionDate),
		a.Notes,
		a.CreatedAt,
		a.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return adoptions.ErrConflict
	}
	return err
}

func (r *AdoptionsRepo) Create(ctx context.Context, a adoptions.Adoption) error {
	return insertAdoption(ctx, r.db, a)
}

func (r *AdoptionsRepo) GetByID(ctx context.Context, id string) (adoptions.Adoption, error) {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+adoptionColumns+` FROM adoptions WHERE id = $1`, id)
	a, err := scanAdoption(row)
	if errors.Is(err, sql.ErrNoRows) {
		return adoptions.Adoption{}, adoptions.ErrNotFound
	}
	return a, err
}

func (r *AdoptionsRepo) List(ctx context.Context, filter adoptions.ListFilter) ([]adoptions.Adoption, error) {
	sb := strings.Builder{}
	sb.WriteString(`SELECT ` + adoptionColumns + ` FROM adoptions WHERE true`)

	args := []any{}
	argN := 1
	if filter.UserID != "" {
		sb.WriteString(fmt.Sprintf(" AND user_id::text = $%d", argN))
		args = append(args, filter.UserID)
		argN++
	}
	if filter.PetID != "" {
		sb.WriteString(fmt.Sprintf(" AND pet_id::text = $%d", argN))
		args = append(args, filter.PetID)
	}
	sb.WriteString(" ORDER BY created_at ASC, id ASC")

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]adoptions.Adoption, 0)
	for rows.Next() {
		a, err := scanAdoption(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AdoptionsRepo) Update(ctx context.Context, a adoptions.Adoption) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE adoptions
		SET
			user_id = $2,
			pet_id = $3,
			status = $4,
			adoption_date = $5,
			notes = $6,
			updated_at = $7
		WHERE id = $1
	`,
		a.ID,
		a.UserID,
		a.PetID,
		string(a.Status),
		toNullTime(a.AdoptionDate),
		a.Notes,
		a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return adoptions.ErrConflict
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return adoptions.ErrNotFound
	}
	return nil
}

func (r *AdoptionsRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return adoptions.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM adoptions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return adoptions.ErrNotFound
	}
	return nil
}

func (r *AdoptionsRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM adoptions`).Scan(&n)
	return n, err
}

// InsertMany inserta el lote en una transacción: o entran todos o ninguno.
func (r *AdoptionsRepo) InsertMany(ctx context.Context, items []adoptions.Adoption) ([]adoptions.Adoption, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	out := make([]adoptions.Adoption, 0, len(items))
	for i, a := range items {
		if strings.TrimSpace(a.ID) == "" {
			a.ID = uuid.NewString()
		}
		if err := insertAdoption(ctx, tx, a); err != nil {
			return nil, fmt.Errorf("insert adoption %d: %w", i, err)
		}
		out = append(out, a)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *AdoptionsRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM adoptions`)
	return err
}

func scanAdoption(s rowScanner) (adoptions.Adoption, error) {
	var a adoptions.Adoption
	var status string
	var date sql.NullTime

	if err := s.Scan(
		&a.ID,
		&a.UserID,
		&a.PetID,
		&status,
		&date,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		return adoptions.Adoption{}, err
	}

	a.Status = adoptions.Status(status)
	a.AdoptionDate = fromNullTime(date)
	return a, nil
}
