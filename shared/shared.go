package shared

import (
	"hotel/shared/constant"
	"hotel/shared/dto"
	"strconv"
	"strings"
)

// ConvertStringToInt parses a positive integer query parameter.
func ConvertStringToInt(value string) (int, error) {
	res, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, err //nolint:wrapcheck
	}

	return res, nil
}

// BuildCacheKey joins the prefix and parts with a colon, e.g. "session:<id>".
func BuildCacheKey(prefix string, parts ...string) string {
	if len(parts) == 0 {
		return prefix
	}

	return prefix + constant.Colon + strings.Join(parts, constant.Colon)
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
