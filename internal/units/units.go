// Package units converts values between measurement units of the same
// category. Each category shares a base unit (kelvin, meters,
// kilograms); conversions go through it.
package units

import (
	"fmt"
	"strings"
)

// Category groups units that convert between each other.
type Category string

const (
	Temperature Category = "temperature"
	Length      Category = "length"
	Mass        Category = "mass"
)

// Conversion is the outcome of one unit conversion.
type Conversion struct {
	Value     float64  `json:"value"`
	From      string   `json:"from"`
	To        string   `json:"to"`
	Result    float64  `json:"result"`
	Formatted string   `json:"formatted"`
	Category  Category `json:"category"`
}

type unit struct {
	name     string
	category Category
	toBase   func(float64) float64
	fromBase func(float64) float64
}

var registry = buildRegistry()

func buildRegistry() map[string]unit {
	reg := make(map[string]unit)
	add := func(u unit, aliases ...string) {
		reg[u.name] = u
		for _, a := range aliases {
			reg[a] = u
		}
	}
	identity := func(v float64) float64 { return v }

	add(unit{
		name:     "celsius",
		category: Temperature,
		toBase:   func(v float64) float64 { return v + 273.15 },
		fromBase: func(v float64) float64 { return v - 273.15 },
	}, "c")
	add(unit{
		name:     "fahrenheit",
		category: Temperature,
		toBase:   func(v float64) float64 { return (v-32)*5/9 + 273.15 },
		fromBase: func(v float64) float64 { return (v-273.15)*9/5 + 32 },
	}, "f")
	add(unit{name: "kelvin", category: Temperature, toBase: identity, fromBase: identity}, "k")

	linear := func(name string, cat Category, factor float64, aliases ...string) {
		add(unit{
			name:     name,
			category: cat,
			toBase:   func(v float64) float64 { return v * factor },
			fromBase: func(v float64) float64 { return v / factor },
		}, aliases...)
	}

	linear("meters", Length, 1, "m", "meter", "metre", "metres")
	linear("kilometers", Length, 1000, "km", "kilometer")
	linear("centimeters", Length, 0.01, "cm", "centimeter")
	linear("millimeters", Length, 0.001, "mm", "millimeter")
	linear("miles", Length, 1609.344, "mi", "mile")
	linear("feet", Length, 0.3048, "ft", "foot")
	linear("inches", Length, 0.0254, "in", "inch")
	linear("yards", Length, 0.9144, "yd", "yard")

	linear("kilograms", Mass, 1, "kg", "kilogram")
	linear("grams", Mass, 0.001, "g", "gram")
	linear("pounds", Mass, 0.45359237, "lb", "lbs", "pound")
	linear("ounces", Mass, 0.028349523125, "oz", "ounce")

	return reg
}

// Convert converts value between two units of the same category.
func Convert(value float64, from, to string) (Conversion, error) {
	src, err := lookup(from)
	if err != nil {
		return Conversion{}, err
	}
	dst, err := lookup(to)
	if err != nil {
		return Conversion{}, err
	}
	if src.category != dst.category {
		return Conversion{}, fmt.Errorf("cannot convert %s (%s) to %s (%s)",
			src.name, src.category, dst.name, dst.category)
	}

	result := dst.fromBase(src.toBase(value))
	return Conversion{
		Value:     value,
		From:      src.name,
		To:        dst.name,
		Result:    result,
		Formatted: fmt.Sprintf("%.4f", result),
		Category:  src.category,
	}, nil
}

func lookup(name string) (unit, error) {
	u, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return unit{}, fmt.Errorf("unknown unit %q", name)
	}
	return u, nil
}
