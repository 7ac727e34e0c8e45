// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"besinrehberi/internal/models"
)

// CategoryStore derives the category hierarchy from the foods table.
// There is no separate categories table; a category exists while at least
// one food references it.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// Groups returns every main category with its subcategories, both ordered
// by name. Foods without a subcategory contribute only their main category.
func (s *CategoryStore) Groups() ([]models.CategoryGroup, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT category, subcategory
		FROM foods
		ORDER BY category, subcategory
	`)
	if err != nil {
		return nil, fmt.Errorf("list category groups: %w", err)
	}
	defer rows.Close()

	groups := []models.CategoryGroup{}
	for rows.Next() {
		var main, sub string
		if err := rows.Scan(&main, &sub); err != nil {
			return nil, fmt.Errorf("scan category group: %w", err)
		}
		if n := len(groups); n == 0 || groups[n-1].MainCategory != main {
			groups = append(groups, models.CategoryGroup{
				MainCategory:  main,
				Subcategories: []string{},
			})
		}
		if sub != "" {
			last := &groups[len(groups)-1]
			last.Subcategories = append(last.Subcategories, sub)
		}
	}
	return groups, rows.Err()
}
