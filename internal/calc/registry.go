// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"besinrehberi/internal/slug"
)

// FieldKind distinguishes numeric inputs from enumerated ones.
type FieldKind string

const (
	KindNumber FieldKind = "number"
	KindChoice FieldKind = "choice"
)

// Choice is one allowed value of an enumerated field.
type Choice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one calculator input. Numeric fields carry the slider
// range the site enforces; values outside it are rejected by Evaluate.
type Field struct {
	Name    string    `json:"name"`
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	Unit    string    `json:"unit,omitempty"`
	Min     float64   `json:"min,omitempty"`
	Max     float64   `json:"max,omitempty"`
	Step    float64   `json:"step,omitempty"`
	Integer bool      `json:"integer,omitempty"`
	Choices []Choice  `json:"choices,omitempty"`
	Default string    `json:"default,omitempty"`
}

// InputError reports a missing, malformed, or out-of-range input.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Input holds parsed, validated calculator inputs.
type Input struct {
	numbers map[string]float64
	choices map[string]string
}

// Number returns a parsed numeric field.
func (in Input) Number(name string) float64 { return in.numbers[name] }

// Choice returns a validated enumerated field.
func (in Input) Choice(name string) string { return in.choices[name] }

func (in Input) gender() Gender { return Gender(in.Choice("cinsiyet")) }

// Calculator is a named, self-describing wrapper around one of the pure
// formula functions.
type Calculator struct {
	Name        string  `json:"name"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Fields      []Field `json:"fields"`

	eval func(Input) (any, error)
}

// Evaluate validates raw string inputs (query values or CLI key=value
// pairs) and runs the calculator. Missing fields take their default. Both
// "." and "," are accepted as the decimal separator.
func (c *Calculator) Evaluate(raw map[string]string) (any, error) {
	in, err := c.parse(raw)
	if err != nil {
		return nil, err
	}
	return c.eval(in)
}

func (c *Calculator) parse(raw map[string]string) (Input, error) {
	in := Input{
		numbers: make(map[string]float64),
		choices: make(map[string]string),
	}

	for _, f := range c.Fields {
		v := strings.TrimSpace(raw[f.Name])
		if v == "" {
			v = f.Default
		}
		if v == "" {
			return Input{}, &InputError{Field: f.Name, Reason: "zorunlu alan"}
		}

		switch f.Kind {
		case KindChoice:
			if !hasChoice(f.Choices, v) {
				return Input{}, &InputError{Field: f.Name, Reason: fmt.Sprintf("geçersiz seçenek %q", v)}
			}
			in.choices[f.Name] = v

		default:
			n, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
			if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
				return Input{}, &InputError{Field: f.Name, Reason: fmt.Sprintf("sayı değil: %q", v)}
			}
			if n < f.Min || n > f.Max {
				return Input{}, &InputError{
					Field:  f.Name,
					Reason: fmt.Sprintf("%s ile %s arasında olmalı", formatNumber(f.Min), formatNumber(f.Max)),
				}
			}
			if f.Integer && n != math.Trunc(n) {
				return Input{}, &InputError{Field: f.Name, Reason: "tam sayı olmalı"}
			}
			in.numbers[f.Name] = n
		}
	}
	return in, nil
}

func hasChoice(choices []Choice, v string) bool {
	for _, c := range choices {
		if c.Value == v {
			return true
		}
	}
	return false
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Registry returns every calculator in display order.
func Registry() []*Calculator {
	return registry
}

// Lookup finds a calculator by its URL name.
func Lookup(name string) (*Calculator, bool) {
	for _, c := range registry {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

func number(name, label, unit string, min, max, step float64, def string) Field {
	return Field{
		Name: name, Label: label, Kind: KindNumber, Unit: unit,
		Min: min, Max: max, Step: step, Integer: step == 1, Default: def,
	}
}

func choice(name, label, def string, choices ...Choice) Field {
	return Field{Name: name, Label: label, Kind: KindChoice, Choices: choices, Default: def}
}

var (
	genderField = choice("cinsiyet", "Cinsiyet", string(Male),
		Choice{string(Male), "Erkek"},
		Choice{string(Female), "Kadın"},
	)
	weightField = number("kilo", "Kilo", "kg", 30, 200, 0.5, "70")
	heightField = number("boy", "Boy", "cm", 100, 250, 1, "170")
	ageField    = number("yas", "Yaş", "yıl", 18, 80, 1, "30")

	activityField = choice("aktivite", "Aktivite Düzeyi", string(ModeratelyActive),
		Choice{string(Sedentary), "Hareketsiz (masa başı iş)"},
		Choice{string(LightlyActive), "Az aktif (haftada 1-3 gün egzersiz)"},
		Choice{string(ModeratelyActive), "Orta aktif (haftada 3-5 gün egzersiz)"},
		Choice{string(VeryActive), "Çok aktif (haftada 6-7 gün egzersiz)"},
		Choice{string(ExtraActive), "Aşırı aktif (günde iki antrenman)"},
	)

	waistField = number("bel", "Bel Çevresi", "cm", 40, 200, 0.5, "85")
	hipField   = number("kalca", "Kalça Çevresi", "cm", 50, 200, 0.5, "100")
	neckField  = number("boyun", "Boyun Çevresi", "cm", 20, 70, 0.5, "38")
)

func exerciseChoices() []Choice {
	out := make([]Choice, 0, len(Exercises))
	for _, e := range Exercises {
		out = append(out, Choice{Value: e.Key, Label: e.Label})
	}
	return out
}

var registry = buildRegistry()

// buildRegistry wires each pure formula to its inputs. Calculator names are
// the slugs of their titles.
func buildRegistry() []*Calculator {
	calcs := []*Calculator{
		{
			Title:       "Vücut Kitle İndeksi",
			Description: "Boy ve kilonuza göre vücut kitle indeksinizi ve sağlıklı kilo aralığınızı hesaplar.",
			Fields:      []Field{weightField, heightField},
			eval: func(in Input) (any, error) {
				return EvaluateBMI(in.Number("kilo"), in.Number("boy")), nil
			},
		},
		{
			Title:       "Bazal Metabolizma Hızı",
			Description: "Dinlenme halinde harcadığınız enerjiyi Mifflin-St Jeor ve Harris-Benedict formülleriyle hesaplar.",
			Fields:      []Field{genderField, weightField, heightField, ageField},
			eval: func(in Input) (any, error) {
				return EvaluateBMR(in.gender(), in.Number("kilo"), in.Number("boy"), in.Number("yas")), nil
			},
		},
		{
			Title:       "Günlük Kalori İhtiyacı",
			Description: "Aktivite düzeyinize göre günlük enerji harcamanızı ve hedefinize uygun kalori miktarını hesaplar.",
			Fields: []Field{
				genderField, weightField, heightField, ageField, activityField,
				choice("formul", "Formül", string(MifflinStJeor),
					Choice{string(MifflinStJeor), "Mifflin-St Jeor"},
					Choice{string(HarrisBenedict), "Harris-Benedict"},
				),
			},
			eval: func(in Input) (any, error) {
				return EvaluateTDEE(
					BMRFormula(in.Choice("formul")), in.gender(),
					in.Number("kilo"), in.Number("boy"), in.Number("yas"),
					ActivityLevel(in.Choice("aktivite")),
				), nil
			},
		},
		{
			Title:       "İdeal Kilo",
			Description: "Devine ve Broca formülleriyle boyunuza göre ideal kilonuzu hesaplar.",
			Fields:      []Field{genderField, heightField},
			eval: func(in Input) (any, error) {
				return EvaluateIdealWeight(in.gender(), in.Number("boy")), nil
			},
		},
		{
			Title:       "Tek Tekrar Maksimum",
			Description: "Kaldırdığınız ağırlık ve tekrar sayısından tek tekrarda kaldırabileceğiniz maksimum ağırlığı tahmin eder.",
			Fields: []Field{
				number("agirlik", "Kaldırılan Ağırlık", "kg", 1, 500, 0.5, "100"),
				number("tekrar", "Tekrar Sayısı", "tekrar", 1, 30, 1, "5"),
				weightField,
			},
			eval: func(in Input) (any, error) {
				return EvaluateOneRepMax(in.Number("agirlik"), int(in.Number("tekrar")), in.Number("kilo")), nil
			},
		},
		{
			Title:       "Su İhtiyacı",
			Description: "Kilonuz, aktivite düzeyiniz ve yaşadığınız iklime göre günlük su ihtiyacınızı hesaplar.",
			Fields: []Field{
				weightField,
				choice("aktivite", "Aktivite Düzeyi", string(WaterActivityModerate),
					Choice{string(WaterActivityLow), "Düşük"},
					Choice{string(WaterActivityModerate), "Orta"},
					Choice{string(WaterActivityHigh), "Yüksek"},
				),
				choice("iklim", "İklim", string(ClimateTemperate),
					Choice{string(ClimateCool), "Serin"},
					Choice{string(ClimateTemperate), "Ilıman"},
					Choice{string(ClimateHot), "Sıcak"},
				),
			},
			eval: func(in Input) (any, error) {
				return EvaluateWater(in.Number("kilo"), WaterActivity(in.Choice("aktivite")), Climate(in.Choice("iklim"))), nil
			},
		},
		{
			Title:       "Kilo Değişim Süresi",
			Description: "Hedef kilonuza seçtiğiniz haftalık hızla ne kadar sürede ulaşacağınızı ve gereken günlük kalori farkını hesaplar.",
			Fields: []Field{
				number("mevcut-kilo", "Mevcut Kilo", "kg", 30, 200, 0.5, "80"),
				number("hedef-kilo", "Hedef Kilo", "kg", 30, 200, 0.5, "70"),
				number("haftalik-hiz", "Haftalık Hız", "kg", 0.1, 1.5, 0.05, "0.5"),
			},
			eval: func(in Input) (any, error) {
				return WeightChange(in.Number("mevcut-kilo"), in.Number("hedef-kilo"), in.Number("haftalik-hiz")), nil
			},
		},
		{
			Title:       "Protein İhtiyacı",
			Description: "Hedefinize ve aktivite düzeyinize göre günlük protein ihtiyacınızı hesaplar.",
			Fields: []Field{
				weightField,
				choice("hedef", "Hedef", string(GoalMaintain),
					Choice{string(GoalLose), "Kilo vermek"},
					Choice{string(GoalMaintain), "Kiloyu korumak"},
					Choice{string(GoalGain), "Kas kazanmak"},
				),
				activityField,
			},
			eval: func(in Input) (any, error) {
				return ProteinTarget(in.Number("kilo"), Goal(in.Choice("hedef")), ActivityLevel(in.Choice("aktivite"))), nil
			},
		},
		{
			Title:       "Makro Besin Dağılımı",
			Description: "Günlük kalori hedefinizi protein, yağ ve karbonhidrat gramlarına böler.",
			Fields: []Field{
				weightField,
				number("kalori", "Günlük Kalori Hedefi", "kcal", 1000, 6000, 10, "2000"),
			},
			eval: func(in Input) (any, error) {
				return MacroSplit(in.Number("kilo"), in.Number("kalori")), nil
			},
		},
		{
			Title:       "Vücut Yağ Oranı",
			Description: "ABD Donanması çevre ölçüm yöntemiyle vücut yağ oranınızı hesaplar.",
			Fields:      []Field{genderField, weightField, heightField, waistField, neckField, hipField},
			eval: func(in Input) (any, error) {
				g := in.gender()
				waist, neck, hip := in.Number("bel"), in.Number("boyun"), in.Number("kalca")
				if g == Male && waist <= neck {
					return nil, &InputError{Field: "bel", Reason: "bel çevresi boyun çevresinden büyük olmalı"}
				}
				if g == Female && waist+hip <= neck {
					return nil, &InputError{Field: "bel", Reason: "bel ve kalça toplamı boyun çevresinden büyük olmalı"}
				}
				return EvaluateBodyFat(g, in.Number("kilo"), in.Number("boy"), waist, neck, hip), nil
			},
		},
		{
			Title:       "Bel Kalça Oranı",
			Description: "Bel ve kalça çevrenizin oranına göre sağlık riskinizi değerlendirir.",
			Fields:      []Field{genderField, waistField, hipField},
			eval: func(in Input) (any, error) {
				return WaistToHip(in.gender(), in.Number("bel"), in.Number("kalca")), nil
			},
		},
		{
			Title:       "Bel Boy Oranı",
			Description: "Bel çevrenizin boyunuza oranıyla karın bölgesi yağlanma riskini değerlendirir.",
			Fields:      []Field{waistField, heightField},
			eval: func(in Input) (any, error) {
				return WaistToHeight(in.Number("bel"), in.Number("boy")), nil
			},
		},
		{
			Title:       "Yağsız Vücut Kütlesi",
			Description: "Boer formülüyle yağsız vücut kütlenizi hesaplar.",
			Fields:      []Field{genderField, weightField, heightField},
			eval: func(in Input) (any, error) {
				return EvaluateLeanMass(in.gender(), in.Number("kilo"), in.Number("boy")), nil
			},
		},
		{
			Title:       "Hedef Nabız",
			Description: "Karvonen yöntemiyle antrenman nabız bölgelerinizi hesaplar.",
			Fields: []Field{
				ageField,
				number("dinlenik-nabiz", "Dinlenik Nabız", "atım/dk", 30, 120, 1, "70"),
			},
			eval: func(in Input) (any, error) {
				return TargetHeartRate(in.Number("yas"), in.Number("dinlenik-nabiz")), nil
			},
		},
		{
			Title:       "Kalori Yakımı",
			Description: "Yaptığınız aktivite ve süreye göre yaktığınız kaloriyi hesaplar.",
			Fields: []Field{
				choice("egzersiz", "Aktivite", Exercises[0].Key, exerciseChoices()...),
				weightField,
				number("sure", "Süre", "dk", 1, 600, 1, "30"),
			},
			eval: func(in Input) (any, error) {
				e, _ := FindExercise(in.Choice("egzersiz"))
				return EvaluateBurn(e, in.Number("kilo"), in.Number("sure")), nil
			},
		},
		{
			Title:       "Vücut Yüzey Alanı",
			Description: "Mosteller formülüyle vücut yüzey alanınızı hesaplar.",
			Fields:      []Field{weightField, heightField},
			eval: func(in Input) (any, error) {
				return EvaluateSurfaceArea(in.Number("kilo"), in.Number("boy")), nil
			},
		},
	}

	for _, c := range calcs {
		c.Name = slug.Generate(c.Title)
	}
	return calcs
}
