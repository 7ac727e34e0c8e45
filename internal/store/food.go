// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"besinrehberi/internal/models"
	"besinrehberi/internal/slug"
)

// FoodStore handles read access to the foods table. Writes happen through
// the ingestion process; Upsert exists for seeding and tests.
type FoodStore struct {
	db *sql.DB
}

// NewFoodStore creates a new FoodStore with the given database connection.
func NewFoodStore(db *sql.DB) *FoodStore {
	return &FoodStore{db: db}
}

const foodColumns = `id, name, slug, category, subcategory, serving_label, serving_size,
	calories, protein, carbs, fat, fiber, sugar, added_sugar, saturated_fat,
	trans_fat, cholesterol, sodium, potassium, micronutrients, image_url,
	created_at, updated_at`

// scanFood scans a row into a Food, decoding the micronutrients JSONB.
func scanFood(scanner interface{ Scan(...any) error }) (*models.Food, error) {
	var f models.Food
	var micros []byte
	err := scanner.Scan(
		&f.ID, &f.Name, &f.Slug, &f.Category, &f.Subcategory, &f.ServingLabel, &f.ServingSize,
		&f.Calories, &f.Protein, &f.Carbs, &f.Fat, &f.Fiber, &f.Sugar, &f.AddedSugar, &f.SaturatedFat,
		&f.TransFat, &f.Cholesterol, &f.Sodium, &f.Potassium, &micros, &f.ImageURL,
		&f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(micros) > 0 {
		if err := json.Unmarshal(micros, &f.Micronutrients); err != nil {
			return nil, fmt.Errorf("decode micronutrients for %s: %w", f.Slug, err)
		}
	}
	if f.Micronutrients == nil {
		f.Micronutrients = map[string]models.Micronutrient{}
	}
	return &f, nil
}

// queryFoods runs a SELECT returning foodColumns and collects the rows.
// The result is never nil so it encodes as [] rather than null.
func (s *FoodStore) queryFoods(op, query string, args ...any) ([]models.Food, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := []models.Food{}
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Count returns the number of foods in the catalog.
func (s *FoodStore) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM foods`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count foods: %w", err)
	}
	return n, nil
}

// List returns one page of foods ordered by name. page is 1-based.
func (s *FoodStore) List(page, limit int) (*models.FoodPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	total, err := s.Count()
	if err != nil {
		return nil, err
	}

	items, err := s.queryFoods("list foods", `
		SELECT `+foodColumns+`
		FROM foods
		ORDER BY name, id
		LIMIT $1 OFFSET $2
	`, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	return &models.FoodPage{
		Items:      items,
		Page:       page,
		TotalPages: (total + limit - 1) / limit,
		Total:      total,
	}, nil
}

// FindBySlug retrieves a food by its slug. Returns nil if not found.
func (s *FoodStore) FindBySlug(slug string) (*models.Food, error) {
	f, err := scanFood(s.db.QueryRow(`SELECT `+foodColumns+` FROM foods WHERE slug = $1`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find food by slug: %w", err)
	}
	return f, nil
}

// Alternatives returns up to n foods similar to f: foods from the same
// subcategory come first, then the rest of the same category. f itself is
// never included.
func (s *FoodStore) Alternatives(f *models.Food, n int) ([]models.Food, error) {
	if f == nil || n < 1 {
		return []models.Food{}, nil
	}
	return s.queryFoods("list alternatives", `
		SELECT `+foodColumns+`
		FROM foods
		WHERE category = $1 AND id <> $3
		ORDER BY (subcategory <> '' AND subcategory = $2) DESC, name
		LIMIT $4
	`, f.Category, f.Subcategory, f.ID, n)
}

// ListByCategory returns every food whose main category is exactly name.
func (s *FoodStore) ListByCategory(name string) ([]models.Food, error) {
	return s.queryFoods("list foods by category", `
		SELECT `+foodColumns+`
		FROM foods
		WHERE category = $1
		ORDER BY name
	`, name)
}

// ListBySubcategory returns every food whose subcategory is exactly name.
func (s *FoodStore) ListBySubcategory(name string) ([]models.Food, error) {
	if name == "" {
		return []models.Food{}, nil
	}
	return s.queryFoods("list foods by subcategory", `
		SELECT `+foodColumns+`
		FROM foods
		WHERE subcategory = $1
		ORDER BY name
	`, name)
}

// Search matches q against food names case-insensitively, and against slugs
// after normalizing q the same way slugs are built, so "sutlac" finds
// "Sütlaç". Exact and prefix name matches rank first.
func (s *FoodStore) Search(q string, limit int) ([]models.Food, error) {
	q = strings.TrimSpace(q)
	if q == "" || limit < 1 {
		return []models.Food{}, nil
	}

	pattern := "%" + escapeLike(q) + "%"
	slugPattern := pattern
	if sq := slug.Generate(q); sq != "" {
		slugPattern = "%" + escapeLike(sq) + "%"
	}

	return s.queryFoods("search foods", `
		SELECT `+foodColumns+`
		FROM foods
		WHERE name ILIKE $1 OR slug LIKE $2
		ORDER BY (LOWER(name) = LOWER($3)) DESC,
		         (name ILIKE $4) DESC,
		         name
		LIMIT $5
	`, pattern, slugPattern, q, escapeLike(q)+"%", limit)
}

// Random returns up to n foods in random order.
func (s *FoodStore) Random(n int) ([]models.Food, error) {
	if n < 1 {
		return []models.Food{}, nil
	}
	return s.queryFoods("random foods", `
		SELECT `+foodColumns+`
		FROM foods
		ORDER BY random()
		LIMIT $1
	`, n)
}

// Upsert inserts f or, when its slug already exists, overwrites the stored
// values. An empty slug is derived from the name.
func (s *FoodStore) Upsert(f *models.Food) (*models.Food, error) {
	if f.Slug == "" {
		f.Slug = slug.Generate(f.Name)
	}
	micros, err := json.Marshal(f.Micronutrients)
	if err != nil {
		return nil, fmt.Errorf("encode micronutrients: %w", err)
	}
	if f.Micronutrients == nil {
		micros = []byte("{}")
	}

	result, err := scanFood(s.db.QueryRow(`
		INSERT INTO foods (name, slug, category, subcategory, serving_label, serving_size,
			calories, protein, carbs, fat, fiber, sugar, added_sugar, saturated_fat,
			trans_fat, cholesterol, sodium, potassium, micronutrients, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
		ON CONFLICT (slug) DO UPDATE SET
			name = EXCLUDED.name, category = EXCLUDED.category, subcategory = EXCLUDED.subcategory,
			serving_label = EXCLUDED.serving_label, serving_size = EXCLUDED.serving_size,
			calories = EXCLUDED.calories, protein = EXCLUDED.protein, carbs = EXCLUDED.carbs,
			fat = EXCLUDED.fat, fiber = EXCLUDED.fiber, sugar = EXCLUDED.sugar,
			added_sugar = EXCLUDED.added_sugar, saturated_fat = EXCLUDED.saturated_fat,
			trans_fat = EXCLUDED.trans_fat, cholesterol = EXCLUDED.cholesterol,
			sodium = EXCLUDED.sodium, potassium = EXCLUDED.potassium,
			micronutrients = EXCLUDED.micronutrients, image_url = EXCLUDED.image_url,
			updated_at = NOW()
		RETURNING `+foodColumns,
		f.Name, f.Slug, f.Category, f.Subcategory, f.ServingLabel, f.ServingSize,
		f.Calories, f.Protein, f.Carbs, f.Fat, f.Fiber, f.Sugar, f.AddedSugar, f.SaturatedFat,
		f.TransFat, f.Cholesterol, f.Sodium, f.Potassium, string(micros), f.ImageURL,
	))
	if err != nil {
		return nil, fmt.Errorf("upsert food: %w", err)
	}
	return result, nil
}

// escapeLike escapes the LIKE wildcards in s so user input matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
