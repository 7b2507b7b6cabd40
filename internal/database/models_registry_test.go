package database

import (
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/require"
)

func TestPersistentModelsIncludesGraphTables(t *testing.T) {
	var hasFollow, hasLike bool
	for _, model := range PersistentModels() {
		switch model.(type) {
		case *models.Follow:
			hasFollow = true
		case *models.Like:
			hasLike = true
		}
	}
	require.True(t, hasFollow, "PersistentModels should include Follow")
	require.True(t, hasLike, "PersistentModels should include Like")
}
