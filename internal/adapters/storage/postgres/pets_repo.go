package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-namer/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO pets (animal, personality, coloration, name)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`,
		p.Animal,
		p.Personality,
		p.Coloration,
		p.Name,
	).Scan(&p.ID)
	if err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) UpdateName(ctx context.Context, id int64, name string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET name = $2, updated_at = now()
		WHERE id = $1
	`, id, name)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return pets.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id int64) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, animal, personality, coloration, name
		FROM pets
		WHERE id = $1
	`, id)

	var p pets.Pet
	if err := row.Scan(&p.ID, &p.Animal, &p.Personality, &p.Coloration, &p.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, animal, personality, coloration, name
		FROM pets
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]pets.Pet, 0)
	for rows.Next() {
		var p pets.Pet
		if err := rows.Scan(&p.ID, &p.Animal, &p.Personality, &p.Coloration, &p.Name); err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, rows.Err()
}
