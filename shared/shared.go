package shared

import (
	"strings"
	"unicode/utf8"

	"github.com/NikQuila/website-gocar-sub000/shared/dto"
)

// BuildCacheKey joins the parts into a colon separated cache key.
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + ":" + strings.Join(parts, ":")
}

// ClipText trims surrounding whitespace and keeps at most limit runes.
func ClipText(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || utf8.RuneCountInString(value) <= limit {
		return value
	}

	return string([]rune(value)[:limit])
}

// OptionalText returns nil for blank strings so optional columns stay NULL.
func OptionalText(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	return &value
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
