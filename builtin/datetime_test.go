package builtin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateTimeClamp(t *testing.T) {
	t.Run("below minimum clamps up", func(t *testing.T) {
		below := NewDateTime(DateTimeMin.Time().Add(-time.Second))
		assert.Equal(t, "0001-01-01T00:00:00Z", below.ISO8601())
	})

	t.Run("above maximum clamps down", func(t *testing.T) {
		above := NewDateTime(DateTimeMax.Time().Add(time.Second))
		assert.Equal(t, "9999-12-31T23:59:59Z", above.ISO8601())
	})

	t.Run("within range passes through", func(t *testing.T) {
		d := NewDateTime(time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC))
		assert.Equal(t, "2024-03-05T12:00:00Z", d.ISO8601())
	})
}

func TestGuidString(t *testing.T) {
	g, err := ParseGuid("72962b91-fa75-4ae6-8d28-b404dc7daf63")
	assert.NoError(t, err)
	assert.Equal(t, "72962B91-FA75-4AE6-8D28-B404DC7DAF63", g.String())
}

func TestTypeIDValid(t *testing.T) {
	assert.True(t, TypeNull.Valid())
	assert.True(t, TypeBoolean.Valid())
	assert.True(t, TypeDiagnosticInfo.Valid())
	assert.False(t, TypeID(26).Valid())
	assert.False(t, TypeID(-1).Valid())
}
