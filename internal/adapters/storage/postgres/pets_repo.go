package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"pet-adoption-api/internal/domain/pets"

	"github.com/google/uuid"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

const petColumns = `
	id, name, species, breed, age, color, size, weight, description,
	personality, is_vaccinated, is_neutered, good_with_kids, good_with_pets,
	health_status, adoption_status, location, owner_id, medical_history,
	microchip_id, special_needs, image_url, rescue_date, characteristics,
	created_at, updated_at`

func insertPet(ctx context.Context, db execer, p pets.Pet) error {
	args, err := petArgs(p)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26)
	`, args...)
	if isUniqueViolation(err) {
		return pets.ErrConflict
	}
	return err
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	return insertPet(ctx, r.db, p)
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	args, err := petArgs(p)
	if err != nil {
		return err
	}
	// created_at no se modifica: se omite de los argumentos.
	args = append(args[:24:24], args[25])
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			breed = $4,
			age = $5,
			color = $6,
			size = $7,
			weight = $8,
			description = $9,
			personality = $10,
			is_vaccinated = $11,
			is_neutered = $12,
			good_with_kids = $13,
			good_with_pets = $14,
			health_status = $15,
			adoption_status = $16,
			location = $17,
			owner_id = $18,
			medical_history = $19,
			microchip_id = $20,
			special_needs = $21,
			image_url = $22,
			rescue_date = $23,
			characteristics = $24,
			updated_at = $25
		WHERE id = $1
	`, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return pets.ErrConflict
		}
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+petColumns+` FROM pets WHERE id = $1`, id)
	p, err := scanPet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, err
}

func (r *PetsRepo) List(ctx context.Context, filter pets.ListFilter) ([]pets.Pet, error) {
	where, args := petWhere(filter)

	order := " ORDER BY created_at ASC, id ASC"
	if filter.NewestFirst {
		order = " ORDER BY created_at DESC, id ASC"
	}

	rows, err := r.db.QueryContext(ctx, `SELECT `+petColumns+` FROM pets`+where+order, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return pets.ErrNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Count(ctx context.Context, filter pets.ListFilter) (int, error) {
	where, args := petWhere(filter)
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM pets`+where, args...).Scan(&n)
	return n, err
}

func (r *PetsRepo) CountBySpecies(ctx context.Context) ([]pets.SpeciesCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT species, count(*)
		FROM pets
		GROUP BY species
		ORDER BY count(*) DESC, species ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.SpeciesCount, 0)
	for rows.Next() {
		var species string
		var c pets.SpeciesCount
		if err := rows.Scan(&species, &c.Count); err != nil {
			return nil, err
		}
		c.Species = pets.Species(species)
		out = append(out, c)
	}
	return out, rows.Err()
}

// InsertMany inserta el lote en una transacción: o entran todos o ninguno.
func (r *PetsRepo) InsertMany(ctx context.Context, items []pets.Pet) ([]pets.Pet, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	out := make([]pets.Pet, 0, len(items))
	for i, p := range items {
		if strings.TrimSpace(p.ID) == "" {
			p.ID = uuid.NewString()
		}
		if err := insertPet(ctx, tx, p); err != nil {
			return nil, fmt.Errorf("insert pet %d: %w", i, err)
		}
		out = append(out, p)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PetsRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM pets`)
	return err
}

// petWhere arma el WHERE a partir del filtro. Campos vacíos no filtran.
func petWhere(filter pets.ListFilter) (string, []any) {
	conds := make([]string, 0)
	args := make([]any, 0)
	argN := 1

	add := func(cond string, v any) {
		conds = append(conds, fmt.Sprintf(cond, argN))
		args = append(args, v)
		argN++
	}

	if filter.Species != "" {
		add("species = $%d", string(filter.Species))
	}
	if filter.AdoptionStatus != "" {
		add("adoption_status = $%d", string(filter.AdoptionStatus))
	}
	if filter.Size != "" {
		add("size = $%d", string(filter.Size))
	}
	if filter.Personality != "" {
		add("$%d = ANY(personality)", string(filter.Personality))
	}
	if strings.TrimSpace(filter.City) != "" {
		add("location->>'city' ILIKE $%d", "%"+strings.TrimSpace(filter.City)+"%")
	}
	if filter.OwnerID != "" {
		add("owner_id::text = $%d", filter.OwnerID)
	}
	if filter.AgeMin != nil {
		add("age >= $%d", *filter.AgeMin)
	}
	if filter.AgeMax != nil {
		add("age <= $%d", *filter.AgeMax)
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func petArgs(p pets.Pet) ([]any, error) {
	location, err := json.Marshal(p.Location)
	if err != nil {
		return nil, err
	}
	history := p.MedicalHistory
	if history == nil {
		history = []pets.MedicalRecord{}
	}
	medical, err := json.Marshal(history)
	if err != nil {
		return nil, err
	}
	var characteristics []byte
	if p.Characteristics != nil {
		if characteristics, err = json.Marshal(p.Characteristics); err != nil {
			return nil, err
		}
	}

	personality := make([]string, 0, len(p.Personality))
	for _, t := range p.Personality {
		personality = append(personality, string(t))
	}

	return []any{
		p.ID,
		p.Name,
		string(p.Species),
		p.Breed,
		p.Age,
		p.Color,
		string(p.Size),
		p.Weight,
		p.Description,
		personality,
		p.IsVaccinated,
		p.IsNeutered,
		p.GoodWithKids,
		p.GoodWithPets,
		string(p.HealthStatus),
		string(p.AdoptionStatus),
		string(location),
		toNullString(p.OwnerID),
		string(medical),
		toNullString(p.MicrochipID),
		p.SpecialNeeds,
		p.ImageURL,
		toNullTime(p.RescueDate),
		nullJSON(characteristics),
		p.CreatedAt,
		p.UpdatedAt,
	}, nil
}

func nullJSON(b []byte) sql.NullString {
	if b == nil {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: string(b), Valid: true}
}

func scanPet(s rowScanner) (pets.Pet, error) {
	var p pets.Pet
	var species, size, health, adoption string
	var personality []string
	var location, medical []byte
	var characteristics []byte
	var ownerID, microchip sql.NullString
	var rescue sql.NullTime

	if err := s.Scan(
		&p.ID,
		&p.Name,
		&species,
		&p.Breed,
		&p.Age,
		&p.Color,
		&size,
		&p.Weight,
		&p.Description,
		textArray(&personality),
		&p.IsVaccinated,
		&p.IsNeutered,
		&p.GoodWithKids,
		&p.GoodWithPets,
		&health,
		&adoption,
		&location,
		&ownerID,
		&medical,
		&microchip,
		&p.SpecialNeeds,
		&p.ImageURL,
		&rescue,
		&characteristics,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}

	p.Species = pets.Species(species)
	p.Size = pets.Size(size)
	p.HealthStatus = pets.HealthStatus(health)
	p.AdoptionStatus = pets.AdoptionStatus(adoption)
	p.OwnerID = ownerID.String
	p.MicrochipID = microchip.String
	p.RescueDate = fromNullTime(rescue)

	p.Personality = make([]pets.Personality, 0, len(personality))
	for _, t := range personality {
		p.Personality = append(p.Personality, pets.Personality(t))
	}

	if len(location) > 0 {
		if err := json.Unmarshal(location, &p.Location); err != nil {
			return pets.Pet{}, fmt.Errorf("decode location: %w", err)
		}
	}
	if len(medical) > 0 {
		if err := json.Unmarshal(medical, &p.MedicalHistory); err != nil {
			return pets.Pet{}, fmt.Errorf("decode medical_history: %w", err)
		}
	}
	if len(characteristics) > 0 {
		var c pets.Characteristics
		if err := json.Unmarshal(characteristics, &c); err != nil {
			return pets.Pet{}, fmt.Errorf("decode characteristics: %w", err)
		}
		p.Characteristics = &c
	}

	return p, nil
}
