package display_test

import (
	"testing"
	"time"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/display"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amount(t *testing.T, v float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(v)
	require.NoError(t, err)
	return m
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "US$13.00", display.Currency(amount(t, 13)))
	assert.Equal(t, "US$4.50", display.Currency(amount(t, 4.5)))
	assert.Equal(t, "US$1,234.50", display.Currency(amount(t, 1234.5)))
	assert.Equal(t, "US$0.00", display.Currency(kernel.ZeroMoney()))
}

func TestDate(t *testing.T) {
	ts := time.Date(2026, 8, 30, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "2026年08月30日 09:05", display.Date(ts))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	t.Run("just now under a minute", func(t *testing.T) {
		assert.Equal(t, "刚刚", display.RelativeTime(now.Add(-30*time.Second), now))
	})

	t.Run("minutes under an hour", func(t *testing.T) {
		assert.Equal(t, "5分钟前", display.RelativeTime(now.Add(-5*time.Minute), now))
		assert.Equal(t, "59分钟前", display.RelativeTime(now.Add(-59*time.Minute), now))
	})

	t.Run("hours under a day", func(t *testing.T) {
		assert.Equal(t, "1小时前", display.RelativeTime(now.Add(-90*time.Minute), now))
		assert.Equal(t, "23小时前", display.RelativeTime(now.Add(-23*time.Hour), now))
	})

	t.Run("older shows a month day date", func(t *testing.T) {
		assert.Equal(t, "08月28日", display.RelativeTime(now.Add(-48*time.Hour), now))
	})
}
