package patients

import (
	"testing"
	"time"

	"clinicore-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStampUpdatedAt(t *testing.T) {
	t.Run("partial update carries a fresh update timestamp", func(t *testing.T) {
		before := time.Now()
		fields := stampUpdatedAt(map[string]interface{}{"firstName": "Nina"})

		assert.Equal(t, "Nina", fields["firstName"])

		stamped, ok := fields[constvars.MongoFieldUpdatedAt].(time.Time)
		require.True(t, ok, "updatedAt must land in the update document")
		assert.False(t, stamped.Before(before))
	})

	t.Run("caller-supplied updatedAt is overwritten", func(t *testing.T) {
		stale := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		fields := stampUpdatedAt(map[string]interface{}{constvars.MongoFieldUpdatedAt: stale})

		stamped, ok := fields[constvars.MongoFieldUpdatedAt].(time.Time)
		require.True(t, ok)
		assert.True(t, stamped.After(stale))
	})
}
