// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Micronutrient is a single vitamin or mineral amount, e.g. {1.2, "mg"}.
type Micronutrient struct {
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// Food is a nutrition record for one serving of a food. Records are written
// by the ingestion process and are read-only to the API.
type Food struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Category     string    `json:"category"`
	Subcategory  string    `json:"subcategory"`
	ServingLabel string    `json:"servingLabel"`
	ServingSize  float64   `json:"servingSize"` // grams

	Calories     float64 `json:"calories"` // kcal
	Protein      float64 `json:"protein"`  // g
	Carbs        float64 `json:"carbs"`    // g
	Fat          float64 `json:"fat"`      // g
	Fiber        float64 `json:"fiber"`    // g
	Sugar        float64 `json:"sugar"`    // g
	AddedSugar   float64 `json:"addedSugar"`
	SaturatedFat float64 `json:"saturatedFat"`
	TransFat     float64 `json:"transFat"`
	Cholesterol  float64 `json:"cholesterol"` // mg
	Sodium       float64 `json:"sodium"`      // mg
	Potassium    float64 `json:"potassium"`   // mg

	Micronutrients map[string]Micronutrient `json:"micronutrients"`
	ImageURL       *string                  `json:"imageUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FoodPage is one page of the full catalog listing.
type FoodPage struct {
	Items      []Food `json:"items"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	Total      int    `json:"total"`
}

// FoodDetail is a single food together with similar foods to suggest.
type FoodDetail struct {
	Food         *Food  `json:"food"`
	Alternatives []Food `json:"alternatives"`
}

// FoodList wraps a list of foods for category, search, and random responses.
type FoodList struct {
	Foods []Food `json:"foods"`
}
