package export

import (
	"fmt"
	"strings"
	"time"
)

// FileName builds the default export name, e.g. "vehicles-20260829.xlsx".
func FileName(resource, ext string, at time.Time) string {
	name := sanitize(resource)
	if name == "" {
		name = "export"
	}
	return fmt.Sprintf("%s-%s.%s", name, at.Format("20060102"), ext)
}

func sanitize(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
