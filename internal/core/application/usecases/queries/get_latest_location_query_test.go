package queries_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetLatestLocationQuery_Valid(t *testing.T) {
	query, err := queries.NewGetLatestLocationQuery("user-1")
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, "user-1", query.UserID())
}

func TestNewGetLatestLocationQuery_EmptyUserID(t *testing.T) {
	_, err := queries.NewGetLatestLocationQuery("")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetLatestLocationQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetLatestLocationQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetLatestLocationQueryIsNotConstructed)
}
