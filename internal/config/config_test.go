package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "test-token", cfg.DiscordToken)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, 0.02, cfg.SpecialChance)
	require.Equal(t, 7777, cfg.RareGateOneIn)
	require.Equal(t, 0.08, cfg.TipChance)
	require.Equal(t, 0.05, cfg.FishPenaltyRate)
	require.Equal(t, 30*time.Second, cfg.RouletteWindow)
	require.Equal(t, 10*time.Second, cfg.RouletteLastCall)
	require.Equal(t, 25000.0, cfg.BoostPrice)
	require.Equal(t, 10, cfg.LeaderboardSize)
	require.Empty(t, cfg.AdminUserIDs)
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadParsesAdminIDs(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("ADMIN_USER_IDS", " 123, 456 ,,789 ")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"123", "456", "789"}, cfg.AdminUserIDs)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"special chance over one", map[string]string{"SPECIAL_CHANCE": "1.5"}},
		{"zero rare gate", map[string]string{"RARE_GATE_ONE_IN": "0"}},
		{"fish rate at one", map[string]string{"FISH_PENALTY_RATE": "1.0"}},
		{"boost chance at one", map[string]string{"BOOST_WIN_CHANCE": "1.0"}},
		{"max bet below min", map[string]string{"WAGER_MIN_BET": "100", "WAGER_MAX_BET": "10"}},
		{"last call exceeds window", map[string]string{"ROULETTE_WINDOW": "10s", "ROULETTE_LAST_CALL": "15s"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DISCORD_TOKEN", "test-token")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
		})
	}
}
