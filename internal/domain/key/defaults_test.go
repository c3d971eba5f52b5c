//go:build unit

package key_test

import (
	"testing"

	"vander-key-store/internal/domain/key"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	defaults, err := key.NewDefaults("lifetime", "unknown")
	require.NoError(t, err)
	assert.Equal(t, key.PlanLifetime, defaults.Plan())
	assert.Equal(t, "unknown", defaults.Email())

	t.Run("plan", func(t *testing.T) {
		testCases := []struct {
			name        string
			raw         string
			want        key.Plan
			wantDefault bool
		}{
			{name: "explicit monthly kept", raw: "monthly", want: key.PlanMonthly},
			{name: "explicit lifetime kept", raw: "lifetime", want: key.PlanLifetime},
			{name: "missing plan defaults", raw: "", want: key.PlanLifetime, wantDefault: true},
			{name: "unknown plan defaults", raw: "weekly", want: key.PlanLifetime, wantDefault: true},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				got, applied := defaults.ResolvePlan(tc.raw)
				assert.Equal(t, tc.want, got)
				assert.Equal(t, tc.wantDefault, applied)
			})
		}
	})

	t.Run("email", func(t *testing.T) {
		assert.Equal(t, "a@example.com", defaults.ResolveEmail("a@example.com", "b@example.com"))
		assert.Equal(t, "b@example.com", defaults.ResolveEmail("", "b@example.com"))
		assert.Equal(t, "b@example.com", defaults.ResolveEmail("  ", "b@example.com"))
		assert.Equal(t, "unknown", defaults.ResolveEmail("", ""))
		assert.Equal(t, "unknown", defaults.ResolveEmail())
	})

	t.Run("rejects invalid configuration", func(t *testing.T) {
		_, err := key.NewDefaults("weekly", "unknown")
		assert.ErrorIs(t, err, key.ErrInvalidDefaults)
		assert.ErrorIs(t, err, key.ErrInvalidPlan)

		_, err = key.NewDefaults("lifetime", "")
		assert.ErrorIs(t, err, key.ErrInvalidDefaults)
	})
}

func TestCatalog(t *testing.T) {
	catalog := key.NewCatalog("usd", 5000, 500)

	lifetime, err := catalog.Offer(key.PlanLifetime)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), lifetime.UnitAmount)
	assert.Equal(t, "usd", lifetime.Currency)
	assert.Contains(t, lifetime.Name, "Lifetime")

	monthly, err := catalog.Offer(key.PlanMonthly)
	require.NoError(t, err)
	assert.Equal(t, int64(500), monthly.UnitAmount)
	assert.Contains(t, monthly.Name, "Monthly")

	_, err = catalog.Offer(key.Plan("weekly"))
	assert.ErrorIs(t, err, key.ErrInvalidPlan)
}
