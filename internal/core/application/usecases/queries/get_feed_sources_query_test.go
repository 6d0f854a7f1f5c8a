package queries_test

import (
	"testing"

	"resumeflow/internal/core/application/usecases/queries"
	"resumeflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetFeedSourcesQuery_Valid(t *testing.T) {
	userID := kernel.NewUUID()

	query, err := queries.NewGetFeedSourcesQuery(userID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.UserID().IsEqual(userID))
}

func TestGetFeedSourcesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetFeedSourcesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetFeedSourcesQueryIsNotConstructed)
}
