// Package fluid defines the beverage catalog: the fixed set of fluid
// types and the per-type hydration factor used to discount raw volume
// into effective hydration.
package fluid

import "strings"

// Type identifies a beverage category.
type Type string

const (
	Water          Type = "water"
	SparklingWater Type = "sparkling_water"
	CoconutWater   Type = "coconut_water"
	HerbalTea      Type = "herbal_tea"
	Tea            Type = "tea"
	Milk           Type = "milk"
	Juice          Type = "juice"
	Lemonade       Type = "lemonade"
	Smoothie       Type = "smoothie"
	SportsDrink    Type = "sports_drink"
	Coffee         Type = "coffee"
	Soda           Type = "soda"
	EnergyDrink    Type = "energy_drink"
	Soup           Type = "soup"
	Beer           Type = "beer"
	Wine           Type = "wine"
	Cocktail       Type = "cocktail"
	Other          Type = "other"
)

// Info holds display metadata and the hydration factor for one fluid type.
type Info struct {
	DisplayName string
	Icon        string
	Color       string // hex color for terminal rendering
	Factor      float64
}

// Hydration factors follow sports nutrition guidance: plain water is the
// 1.0 baseline, caffeine and sugar reduce net retention, alcohol is a
// diuretic scaled by approximate ABV.
var catalog = map[Type]Info{
	Water:          {"Water", "💧", "#4385BE", 1.00},
	SparklingWater: {"Sparkling Water", "🫧", "#4385BE", 1.00},
	CoconutWater:   {"Coconut Water", "🥥", "#879A39", 1.00},
	HerbalTea:      {"Herbal Tea", "🌿", "#879A39", 0.97},
	Tea:            {"Tea", "🍵", "#879A39", 0.90},
	Milk:           {"Milk", "🥛", "#D0A215", 0.90},
	Juice:          {"Juice", "🧃", "#D0A215", 0.85},
	Lemonade:       {"Lemonade", "🍋", "#D0A215", 0.85},
	Smoothie:       {"Smoothie", "🥤", "#CE5D97", 0.80},
	SportsDrink:    {"Sports Drink", "🏃", "#DA702C", 0.95},
	Coffee:         {"Coffee", "☕", "#8B5E3C", 0.80},
	Soda:           {"Soda", "🥤", "#8B7EC8", 0.70},
	EnergyDrink:    {"Energy Drink", "⚡", "#DA702C", 0.60},
	Soup:           {"Soup", "🍲", "#D0A215", 0.80},
	Beer:           {"Beer", "🍺", "#D14D41", 0.40},
	Wine:           {"Wine", "🍷", "#D14D41", 0.25},
	Cocktail:       {"Cocktail", "🍸", "#D14D41", 0.10},
	Other:          {"Other", "❔", "#878580", 0.80},
}

// All lists every fluid type in display order, strongest hydration first.
var All = []Type{
	Water, SparklingWater, CoconutWater, HerbalTea,
	Tea, Milk, Juice, Lemonade, Smoothie, SportsDrink,
	Coffee, Soda, EnergyDrink, Soup,
	Beer, Wine, Cocktail,
	Other,
}

// Lookup returns catalog info for a fluid type. The lookup is total:
// anything outside the catalog resolves to Other.
func Lookup(t Type) Info {
	if info, ok := catalog[t]; ok {
		return info
	}
	return catalog[Other]
}

// Factor returns the hydration factor for a fluid type, falling back to
// the Other factor for anything outside the catalog.
func Factor(t Type) float64 {
	return Lookup(t).Factor
}

// legacy camelCase spellings written by earlier releases
var legacyAliases = map[string]Type{
	"sparklingwater": SparklingWater,
	"coconutwater":   CoconutWater,
	"herbaltea":      HerbalTea,
	"sportsdrink":    SportsDrink,
	"energydrink":    EnergyDrink,
}

// Parse resolves a stored fluid identifier to a catalog type. Unknown or
// legacy values decode to Water so old ledgers never lose volume credit.
func Parse(s string) Type {
	t := Type(s)
	if _, ok := catalog[t]; ok {
		return t
	}
	key := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(s, "_", ""), " ", ""))
	if t, ok := legacyAliases[key]; ok {
		return t
	}
	return Water
}
