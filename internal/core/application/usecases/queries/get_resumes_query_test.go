package queries_test

import (
	"testing"

	"resumeflow/internal/core/application/usecases/queries"
	"resumeflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetResumesQuery_Valid(t *testing.T) {
	userID := kernel.NewUUID()

	query, err := queries.NewGetResumesQuery(userID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, query.OwnerUserID().IsEqual(userID))
}

func TestNewGetResumesQuery_InvalidUser(t *testing.T) {
	_, err := queries.NewGetResumesQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetResumesQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetResumesQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetResumesQueryIsNotConstructed)
}
