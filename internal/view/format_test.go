package view

import "testing"

func TestCurrency(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		code   string
		want   string
	}{
		{"euro with grouping", 1500.5, "EUR", "1 500,50 €"},
		{"empty code falls back to EUR", 1500.5, "", "1 500,50 €"},
		{"blank code falls back to EUR", 99.9, "   ", "99,90 €"},
		{"dollar", 2000, "USD", "2 000,00 $"},
		{"unknown code keeps the code", 12.34, "SEK", "12,34 SEK"},
		{"large amount", 1234567.89, "EUR", "1 234 567,89 €"},
		{"negative", -1500.5, "EUR", "-1 500,50 €"},
		{"zero", 0, "EUR", "0,00 €"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Currency(tc.amount, tc.code); got != tc.want {
				t.Fatalf("Currency(%v, %q) = %q, want %q", tc.amount, tc.code, got, tc.want)
			}
		})
	}
}

func TestDate(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"2026-01-15", "15 janvier 2026"},
		{"2026-08-02", "2 août 2026"},
		{"2026-12-31T10:30:00Z", "31 décembre 2026"},
		{"pas une date", "pas une date"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Date(tc.raw); got != tc.want {
			t.Fatalf("Date(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestDateTime(t *testing.T) {
	if got := DateTime("2026-09-01T06:00:00Z"); got != "1 septembre 2026 à 06:00" {
		t.Fatalf("DateTime = %q", got)
	}
}

func TestSurchargeValue(t *testing.T) {
	if got := SurchargeValue("percentage", 15, "EUR"); got != "15 %" {
		t.Fatalf("percentage = %q, want %q", got, "15 %")
	}
	if got := SurchargeValue("fixed_amount", 10, "EUR"); got != "10 EUR" {
		t.Fatalf("fixed_amount = %q, want %q", got, "10 EUR")
	}
	if got := SurchargeValue("fixed_amount", 10, ""); got != "10 EUR" {
		t.Fatalf("fixed_amount without currency = %q, want %q", got, "10 EUR")
	}
	if got := SurchargeValue("per_unit", 3.5, "EUR"); got != "3,5 EUR" {
		t.Fatalf("per_unit = %q, want %q", got, "3,5 EUR")
	}
}

func TestRangeSummary(t *testing.T) {
	if got := RangeSummary(2, 20, 45); got != "Affichage de 21 à 40 sur 45 résultats" {
		t.Fatalf("page 2 = %q", got)
	}
	if got := RangeSummary(3, 20, 45); got != "Affichage de 41 à 45 sur 45 résultats" {
		t.Fatalf("last page clamps upper bound = %q", got)
	}
	if got := RangeSummary(1, 20, 5); got != "Affichage de 1 à 5 sur 5 résultats" {
		t.Fatalf("single page = %q", got)
	}
	if got := RangeSummary(1, 20, 0); got != "Aucun résultat" {
		t.Fatalf("empty = %q", got)
	}
}

func TestPlaceholders(t *testing.T) {
	if got := Text(nil, PlaceholderNA); got != "N/A" {
		t.Fatalf("nil text = %q", got)
	}
	empty := "   "
	if got := Text(&empty, PlaceholderDash); got != "—" {
		t.Fatalf("blank text = %q", got)
	}
	value := "Rungis"
	if got := Text(&value, PlaceholderNA); got != "Rungis" {
		t.Fatalf("present text = %q", got)
	}
	if got := Amount(nil, "EUR", PlaceholderNA); got != "N/A" {
		t.Fatalf("nil amount = %q", got)
	}
	weight := 800.0
	if got := Quantity(&weight, "kg", PlaceholderNA); got != "800 kg" {
		t.Fatalf("quantity = %q", got)
	}
	if got := OptionalDate(nil, PlaceholderNA); got != "N/A" {
		t.Fatalf("nil date = %q", got)
	}
	if got := Integer(nil, PlaceholderNA); got != "N/A" {
		t.Fatalf("nil int = %q", got)
	}
	year := 2023
	if got := Integer(&year, PlaceholderNA); got != "2023" {
		t.Fatalf("year = %q", got)
	}
}

func TestCoordinates(t *testing.T) {
	latitude, longitude := 48.7485, 2.3524
	if got := Coordinates(&latitude, &longitude, PlaceholderNA); got != "48,7485 / 2,3524" {
		t.Fatalf("coordinates = %q", got)
	}
	if got := Coordinates(&latitude, nil, PlaceholderNA); got != "N/A" {
		t.Fatalf("missing longitude = %q", got)
	}
	if got := Coordinates(nil, nil, PlaceholderNA); got != "N/A" {
		t.Fatalf("missing pair = %q", got)
	}
}

func TestJoined(t *testing.T) {
	alerts := []string{"Contrôle technique dans 30 jours", "Pneus avant usés"}
	if got := Joined(alerts, PlaceholderNone); got != "Contrôle technique dans 30 jours, Pneus avant usés" {
		t.Fatalf("joined = %q", got)
	}
	if got := Joined(nil, PlaceholderNone); got != "Aucune" {
		t.Fatalf("empty = %q", got)
	}
}
