package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetTopFoodsQuery_LimitClamping(t *testing.T) {
	testCases := []struct {
		name     string
		limit    int
		expected int
	}{
		{"zero falls back to default", 0, 3},
		{"negative falls back to default", -5, 3},
		{"in range is kept", 7, 7},
		{"above max is clamped", 50, 10},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, err := queries.NewGetTopFoodsQuery(tc.limit, "")
			require.NoError(t, err)
			assert.Equal(t, tc.expected, query.Limit())
		})
	}
}

func TestNewGetTopFoodsQuery_MalformedRestaurantID(t *testing.T) {
	_, err := queries.NewGetTopFoodsQuery(3, "not-a-uuid")
	require.Error(t, err)
}

func TestGetTopFoodsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetTopFoodsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetTopFoodsQueryIsNotConstructed)
}
