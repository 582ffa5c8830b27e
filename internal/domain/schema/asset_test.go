package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAsset(t *testing.T) {
	s := New()

	t.Run("should seed both histories with the initial value", func(t *testing.T) {
		// given
		in := &AssetInput{Name: "Savings", Value: 5000, Type: "cash"}

		// when
		asset, err := s.NewAsset(in)

		// then
		require.NoError(t, err)
		today := time.Now().Format(DateLayout)
		require.Len(t, asset.Values, 1)
		assert.Equal(t, 5000.0, asset.Values[0].Value)
		assert.Equal(t, today, asset.Values[0].Date)
		require.Len(t, asset.Deposits, 1)
		assert.Equal(t, 5000.0, asset.Deposits[0].Amount)
		assert.Equal(t, today, asset.Deposits[0].Date)
	})

	t.Run("should reject a missing type", func(t *testing.T) {
		// when
		_, err := s.NewAsset(&AssetInput{Name: "Savings", Value: 5000})

		// then
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Type", validationErr.Field)
	})
}

func TestNewAssetValueEntry(t *testing.T) {
	s := New()

	t.Run("should default the date to today", func(t *testing.T) {
		// given
		value := 7500.0

		// when
		entry, err := s.NewAssetValueEntry(&AssetValueInput{Value: &value})

		// then
		require.NoError(t, err)
		assert.Equal(t, 7500.0, entry.Value)
		assert.Equal(t, time.Now().Format(DateLayout), entry.Date)
	})

	t.Run("should reject a negative value", func(t *testing.T) {
		// given
		value := -100.0

		// when
		_, err := s.NewAssetValueEntry(&AssetValueInput{Value: &value})

		// then
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "Value", validationErr.Field)
	})

	t.Run("should reject a missing value", func(t *testing.T) {
		// when
		_, err := s.NewAssetValueEntry(&AssetValueInput{})

		// then
		assert.Error(t, err)
	})
}

func TestNewAssetDepositEntry(t *testing.T) {
	s := New()

	t.Run("should keep an explicit date", func(t *testing.T) {
		// given
		amount := 200.0

		// when
		entry, err := s.NewAssetDepositEntry(&AssetDepositInput{Date: "2026-01-15", Amount: &amount})

		// then
		require.NoError(t, err)
		assert.Equal(t, "2026-01-15", entry.Date)
		assert.Equal(t, 200.0, entry.Amount)
	})

	t.Run("should reject a zero deposit", func(t *testing.T) {
		// given
		amount := 0.0

		// when
		_, err := s.NewAssetDepositEntry(&AssetDepositInput{Amount: &amount})

		// then
		assert.Error(t, err)
	})
}
