package embedded

import (
	"testing"

	"github.com/ledgerly/finance-tracker-backend/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionalSet(t *testing.T) {
	t.Run("should prefix every supplied field with the positional operator", func(t *testing.T) {
		// given
		name := "Rent"
		amount := 1600.0
		patch := models.ExpensePatch{Name: &name, Amount: &amount}

		// when
		set, err := PositionalSet("expenses", &patch)

		// then
		require.NoError(t, err)
		assert.Len(t, set, 2)
		assert.Equal(t, "Rent", set["expenses.$.name"])
		assert.Equal(t, 1600.0, set["expenses.$.amount"])
	})

	t.Run("should omit absent fields entirely", func(t *testing.T) {
		// given
		patch := models.ExpensePatch{}

		// when
		set, err := PositionalSet("expenses", &patch)

		// then
		require.NoError(t, err)
		assert.Empty(t, set)
	})

	t.Run("should keep an explicit false distinct from absent", func(t *testing.T) {
		// given
		recurring := false
		patch := models.ExpensePatch{IsRecurring: &recurring}

		// when
		set, err := PositionalSet("expenses", &patch)

		// then
		require.NoError(t, err)
		require.Len(t, set, 1)
		assert.Equal(t, false, set["expenses.$.is_recurring"])
	})
}
