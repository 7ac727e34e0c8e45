// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// CategoryGroup is a main food category with its subcategories, in display
// order. It is reference data used for navigation and slug resolution.
type CategoryGroup struct {
	MainCategory  string   `json:"mainCategory"`
	Subcategories []string `json:"subcategories"`
}
