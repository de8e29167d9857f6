package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCountersQuery_DefaultRunningStatuses(t *testing.T) {
	query, err := queries.NewGetCountersQuery("")
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Nil(t, query.RestaurantID())
	assert.Equal(t, []order.Status{order.Assigned}, query.RunningStatuses())
}

func TestGetCountersQuery_WithRunningStatuses_OverridesDefault(t *testing.T) {
	query, err := queries.NewGetCountersQuery("")
	require.NoError(t, err)

	query = query.WithRunningStatuses(order.Assigned, order.PickedUp, order.Delivering)

	assert.Equal(t,
		[]order.Status{order.Assigned, order.PickedUp, order.Delivering},
		query.RunningStatuses())
	require.NoError(t, query.Validate())
}

func TestNewGetCountersQuery_MalformedRestaurantID(t *testing.T) {
	_, err := queries.NewGetCountersQuery("not-a-uuid")
	require.Error(t, err)
}

func TestGetCountersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCountersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCountersQueryIsNotConstructed)
}
