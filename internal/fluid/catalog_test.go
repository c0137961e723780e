package fluid

import "testing"

func TestFactorsWithinUnitInterval(t *testing.T) {
	for _, ft := range All {
		f := Factor(ft)
		if f < 0 || f > 1 {
			t.Errorf("Factor(%s) = %v, want within [0,1]", ft, f)
		}
	}
}

func TestWaterLikeFactors(t *testing.T) {
	for _, ft := range []Type{Water, SparklingWater, CoconutWater} {
		if got := Factor(ft); got != 1.00 {
			t.Errorf("Factor(%s) = %v, want 1.00", ft, got)
		}
	}
	if got := Factor(HerbalTea); got != 0.97 {
		t.Errorf("Factor(herbal_tea) = %v, want 0.97", got)
	}
}

func TestAlcoholFactorsScaleWithStrength(t *testing.T) {
	if !(Factor(Cocktail) < Factor(Wine) && Factor(Wine) < Factor(Beer)) {
		t.Errorf("alcohol factors not ordered: cocktail=%v wine=%v beer=%v",
			Factor(Cocktail), Factor(Wine), Factor(Beer))
	}
}

func TestLookupIsTotal(t *testing.T) {
	// Every declared type has an entry.
	for _, ft := range All {
		if Lookup(ft).DisplayName == "" {
			t.Errorf("Lookup(%s) has no display name", ft)
		}
	}
	// Anything outside the catalog resolves to Other's factor.
	if got := Factor(Type("kombucha")); got != Factor(Other) {
		t.Errorf("Factor(unknown) = %v, want other fallback %v", got, Factor(Other))
	}
}

func TestParseDefaultsUnknownToWater(t *testing.T) {
	cases := map[string]Type{
		"water":           Water,
		"beer":            Beer,
		"sparkling_water": SparklingWater,
		"sparklingWater":  SparklingWater, // legacy camelCase spelling
		"energyDrink":     EnergyDrink,
		"":                Water,
		"kombucha":        Water,
	}
	for in, want := range cases {
		if got := Parse(in); got != want {
			t.Errorf("Parse(%q) = %s, want %s", in, got, want)
		}
	}
}
