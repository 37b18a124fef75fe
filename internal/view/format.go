package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Placeholders rendered for absent optional fields. A screen never shows
// "null" or an empty cell for a field the payload omitted.
const (
	PlaceholderNA   = "N/A"
	PlaceholderDash = "—"
	PlaceholderNone = "Aucune"
)

// User-facing failure messages, one per error class.
const (
	MsgConnectionError = "Erreur de connexion au serveur"
	MsgGenericError    = "Une erreur est survenue"
	MsgSessionExpired  = "Session expirée, veuillez vous reconnecter"
)

const defaultCurrency = "EUR"

var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
	"CHF": "CHF",
}

// Currency renders an amount the fr-FR way: space-grouped thousands, comma
// decimals, trailing symbol. An empty currency code falls back to EUR.
func Currency(amount float64, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		code = defaultCurrency
	}
	symbol, ok := currencySymbols[code]
	if !ok {
		symbol = code
	}
	return Number(amount, 2) + " " + symbol
}

// Number formats with fr-FR separators and a fixed number of decimals.
func Number(value float64, decimals int) string {
	raw := strconv.FormatFloat(value, 'f', decimals, 64)
	return frenchDigits(raw)
}

// Decimal formats with fr-FR separators, dropping trailing zeros.
func Decimal(value float64) string {
	raw := strconv.FormatFloat(value, 'f', -1, 64)
	return frenchDigits(raw)
}

func frenchDigits(raw string) string {
	negative := strings.HasPrefix(raw, "-")
	raw = strings.TrimPrefix(raw, "-")

	intPart := raw
	fracPart := ""
	if dot := strings.IndexByte(raw, '.'); dot >= 0 {
		intPart = raw[:dot]
		fracPart = raw[dot+1:]
	}

	var grouped strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte(' ')
		}
		grouped.WriteRune(digit)
	}

	result := grouped.String()
	if fracPart != "" {
		result += "," + fracPart
	}
	if negative {
		result = "-" + result
	}
	return result
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date renders a wire date long-form in French ("15 janvier 2026"). Values
// that do not parse come back unchanged.
func Date(raw string) string {
	parsed, ok := parseDate(raw)
	if !ok {
		return raw
	}
	return fmt.Sprintf("%d %s %d", parsed.Day(), frenchMonths[parsed.Month()-1], parsed.Year())
}

// DateTime renders a wire timestamp as "15 janvier 2026 à 08:30".
func DateTime(raw string) string {
	parsed, ok := parseDate(raw)
	if !ok {
		return raw
	}
	return fmt.Sprintf("%d %s %d à %02d:%02d",
		parsed.Day(), frenchMonths[parsed.Month()-1], parsed.Year(), parsed.Hour(), parsed.Minute())
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// SurchargeValue interprets a surcharge amount by calculation method:
// percentages as "15 %", everything else as an amount plus currency code
// (EUR when unset).
func SurchargeValue(method string, value float64, currency string) string {
	if method == "percentage" {
		return Decimal(value) + " %"
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = defaultCurrency
	}
	return Decimal(value) + " " + currency
}

// RangeSummary is the list-footer line: "Affichage de 21 à 40 sur 45
// résultats". Bounds come from the server totals, never from row counts.
func RangeSummary(page, pageSize, total int) string {
	if total <= 0 {
		return "Aucun résultat"
	}
	if page < 1 {
		page = 1
	}
	first := (page-1)*pageSize + 1
	last := page * pageSize
	if last > total {
		last = total
	}
	return fmt.Sprintf("Affichage de %d à %d sur %d résultats", first, last, total)
}

// Optional helpers: render the pointer's value or the given placeholder.

func Text(value *string, placeholder string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return placeholder
	}
	return *value
}

func Amount(value *float64, currency, placeholder string) string {
	if value == nil {
		return placeholder
	}
	return Currency(*value, currency)
}

func Quantity(value *float64, unit, placeholder string) string {
	if value == nil {
		return placeholder
	}
	if unit == "" {
		return Decimal(*value)
	}
	return Decimal(*value) + " " + unit
}

func OptionalDate(value *string, placeholder string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return placeholder
	}
	return Date(*value)
}

func Integer(value *int, placeholder string) string {
	if value == nil {
		return placeholder
	}
	return strconv.Itoa(*value)
}

// Coordinates renders a latitude/longitude pair; both must be set.
func Coordinates(latitude, longitude *float64, placeholder string) string {
	if latitude == nil || longitude == nil {
		return placeholder
	}
	return Decimal(*latitude) + " / " + Decimal(*longitude)
}

// Joined renders a list of values on one line, or the placeholder when
// there are none.
func Joined(values []string, placeholder string) string {
	if len(values) == 0 {
		return placeholder
	}
	return strings.Join(values, ", ")
}
