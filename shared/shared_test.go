package shared_test

import (
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertStringToInt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "plain number", input: "2", expected: 2},
		{name: "padded number", input: " 4 ", expected: 4},
		{name: "empty string", input: "", wantErr: true},
		{name: "not a number", input: "two", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := shared.ConvertStringToInt(tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "rooms", shared.BuildCacheKey(constant.CacheKeyRooms))
	assert.Equal(t, "session:abc", shared.BuildCacheKey(constant.CacheKeySession, "abc"))
	assert.Equal(t, "limiter:/bookings:10.0.0.1", shared.BuildCacheKey(constant.CacheKeyLimiter, "/bookings", "10.0.0.1"))
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("550e8400-e29b-41d4-a716-446655440000", "id", "bookings")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "id",
				Value:    "550e8400-e29b-41d4-a716-446655440000",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
		},
	}

	assert.Equal(t, expected, result)
}
