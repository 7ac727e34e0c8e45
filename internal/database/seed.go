package database

import (
	"fmt"
	"log/slog"

	"besinrehberi/internal/models"
)

// FoodWriter is the part of the food store that seeding needs.
type FoodWriter interface {
	Count() (int, error)
	Upsert(f *models.Food) (*models.Food, error)
}

type seedFood struct {
	name, category, subcategory, servingLabel string
	servingSize                               float64
	calories, protein, carbs, fat, fiber      float64
	sugar, sodium, potassium                  float64
	micros                                    map[string]models.Micronutrient
}

// Values are per 100 g unless the serving label says otherwise.
var seedFoods = []seedFood{
	{"Elma", "Meyveler", "Taze Meyveler", "1 orta boy", 100, 52, 0.3, 13.8, 0.2, 2.4, 10.4, 1, 107,
		map[string]models.Micronutrient{"C Vitamini": {Amount: 4.6, Unit: "mg"}}},
	{"Muz", "Meyveler", "Taze Meyveler", "1 orta boy", 100, 89, 1.1, 22.8, 0.3, 2.6, 12.2, 1, 358,
		map[string]models.Micronutrient{"B6 Vitamini": {Amount: 0.4, Unit: "mg"}, "Magnezyum": {Amount: 27, Unit: "mg"}}},
	{"Portakal", "Meyveler", "Narenciye", "1 adet", 100, 47, 0.9, 11.8, 0.1, 2.4, 9.4, 0, 181,
		map[string]models.Micronutrient{"C Vitamini": {Amount: 53.2, Unit: "mg"}}},
	{"Kuru Kayısı", "Meyveler", "Kuru Meyveler", "1 avuç", 100, 241, 3.4, 62.6, 0.5, 7.3, 53.4, 10, 1162, nil},
	{"Ispanak", "Sebzeler", "Yeşil Yapraklılar", "1 kase", 100, 23, 2.9, 3.6, 0.4, 2.2, 0.4, 79, 558,
		map[string]models.Micronutrient{"Demir": {Amount: 2.7, Unit: "mg"}, "K Vitamini": {Amount: 483, Unit: "µg"}}},
	{"Brokoli", "Sebzeler", "Yeşil Yapraklılar", "1 kase", 100, 34, 2.8, 6.6, 0.4, 2.6, 1.7, 33, 316, nil},
	{"Domates", "Sebzeler", "Meyve Sebzeler", "1 orta boy", 100, 18, 0.9, 3.9, 0.2, 1.2, 2.6, 5, 237, nil},
	{"Kırmızı Mercimek", "Baklagiller", "Kuru Baklagiller", "1 kase", 100, 358, 24.6, 63.1, 1.1, 10.7, 2, 6, 677, nil},
	{"Nohut", "Baklagiller", "Kuru Baklagiller", "1 kase", 100, 364, 19.3, 60.7, 6, 17.4, 10.7, 24, 875, nil},
	{"Tavuk Göğsü", "Et ve Tavuk", "Beyaz Et", "1 porsiyon", 100, 165, 31, 0, 3.6, 0, 0, 74, 256, nil},
	{"Dana Kıyma", "Et ve Tavuk", "Kırmızı Et", "1 porsiyon", 100, 250, 26, 0, 15, 0, 0, 72, 318,
		map[string]models.Micronutrient{"B12 Vitamini": {Amount: 2.6, Unit: "µg"}}},
	{"Somon", "Balık ve Deniz Ürünleri", "Yağlı Balıklar", "1 fileto", 100, 208, 20, 0, 13, 0, 0, 59, 363, nil},
	{"Yumurta", "Süt Ürünleri ve Yumurta", "Yumurta", "1 adet", 50, 155, 13, 1.1, 11, 0, 1.1, 124, 126, nil},
	{"Beyaz Peynir", "Süt Ürünleri ve Yumurta", "Peynirler", "1 dilim", 30, 264, 14.2, 4.1, 21.3, 0, 4.1, 1116, 62, nil},
	{"Yoğurt", "Süt Ürünleri ve Yumurta", "Süt ve Yoğurt", "1 kase", 200, 61, 3.5, 4.7, 3.3, 0, 4.7, 46, 155, nil},
	{"Ayran", "İçecekler", "Soğuk İçecekler", "1 bardak", 200, 36, 1.7, 2.7, 2, 0, 2.7, 336, 80, nil},
	{"Türk Kahvesi", "İçecekler", "Sıcak İçecekler", "1 fincan", 65, 2, 0.1, 0.3, 0, 0, 0, 2, 49, nil},
	{"Bulgur Pilavı", "Tahıllar", "Pilavlar", "1 porsiyon", 150, 151, 4.2, 27.4, 2.8, 4.5, 0.2, 280, 90, nil},
	{"Tam Buğday Ekmeği", "Tahıllar", "Ekmekler", "1 dilim", 30, 247, 13, 41, 3.4, 7, 6, 450, 250, nil},
	{"Baklava", "Tatlılar", "Şerbetli Tatlılar", "1 dilim", 40, 428, 6.7, 49, 23, 2, 30, 200, 170, nil},
	{"Sütlaç", "Tatlılar", "Sütlü Tatlılar", "1 kase", 150, 130, 3.5, 22, 3, 0.2, 15, 55, 150, nil},
	{"Ceviz", "Kuruyemişler", "", "1 avuç", 30, 654, 15.2, 13.7, 65.2, 6.7, 2.6, 2, 441,
		map[string]models.Micronutrient{"Omega-3": {Amount: 9.1, Unit: "g"}}},
}

// Seed populates an empty foods table with a small Turkish sample set so
// a development instance has something to browse. It is a no-op once any
// food exists. It returns the number of foods written.
func Seed(foods FoodWriter) (int, error) {
	count, err := foods.Count()
	if err != nil {
		return 0, fmt.Errorf("seed check foods: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return 0, nil
	}

	for _, sf := range seedFoods {
		if _, err := foods.Upsert(sf.food()); err != nil {
			return 0, fmt.Errorf("seed %s: %w", sf.name, err)
		}
	}

	slog.Info("database seeded with sample foods", "count", len(seedFoods))
	return len(seedFoods), nil
}

// food converts a seed row into a model; the slug is derived on upsert.
func (sf seedFood) food() *models.Food {
	return &models.Food{
		Name:           sf.name,
		Category:       sf.category,
		Subcategory:    sf.subcategory,
		ServingLabel:   sf.servingLabel,
		ServingSize:    sf.servingSize,
		Calories:       sf.calories,
		Protein:        sf.protein,
		Carbs:          sf.carbs,
		Fat:            sf.fat,
		Fiber:          sf.fiber,
		Sugar:          sf.sugar,
		Sodium:         sf.sodium,
		Potassium:      sf.potassium,
		Micronutrients: sf.micros,
	}
}
