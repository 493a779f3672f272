// Package config loads the bot's configuration from environment
// variables, mapped onto a struct with envconfig.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds every tunable of the application. Probabilities and round
// timing are injectable so test servers can run hot odds and short rounds.
type Config struct {
	// --- Discord ---
	DiscordToken  string `envconfig:"DISCORD_TOKEN" required:"true"`
	ApplicationID string `envconfig:"APPLICATION_ID"`
	// GuildID scopes command registration to one server during development
	GuildID string `envconfig:"GUILD_ID"`

	// Channel bindings; empty means the command works anywhere
	WorkChannelID     string `envconfig:"WORK_CHANNEL_ID"`
	RouletteChannelID string `envconfig:"ROULETTE_CHANNEL_ID"`

	// AnnounceChannelID receives big-win broadcasts; empty disables them
	AnnounceChannelID string `envconfig:"ANNOUNCE_CHANNEL_ID"`

	AdminUserIDsRaw string   `envconfig:"ADMIN_USER_IDS"`
	AdminUserIDs    []string `envconfig:"-"`

	// --- Redis ---
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// --- Application ---
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// RNGSeed pins the random source for test servers; 0 seeds from the
	// wall clock
	RNGSeed int64 `envconfig:"RNG_SEED" default:"0"`

	// --- Reward odds ---
	SpecialChance float64 `envconfig:"SPECIAL_CHANCE" default:"0.02"`
	RareGateOneIn int     `envconfig:"RARE_GATE_ONE_IN" default:"7777"`
	TipChance     float64 `envconfig:"TIP_CHANCE" default:"0.08"`

	// Override odds, active while test mode is on
	OverrideSpecialChance float64 `envconfig:"OVERRIDE_SPECIAL_CHANCE" default:"0.5"`
	OverrideRareGateOneIn int     `envconfig:"OVERRIDE_RARE_GATE_ONE_IN" default:"5"`
	OverrideTipChance     float64 `envconfig:"OVERRIDE_TIP_CHANCE" default:"0.9"`

	// FishPenaltyRate is the wallet fraction /fish takes
	FishPenaltyRate float64 `envconfig:"FISH_PENALTY_RATE" default:"0.05"`

	// --- Luck boost ---
	BoostPrice             float64       `envconfig:"BOOST_PRICE" default:"25000"`
	BoostUses              int           `envconfig:"BOOST_USES" default:"5"`
	BoostCooldown          time.Duration `envconfig:"BOOST_COOLDOWN" default:"6h"`
	BoostWinChance         float64       `envconfig:"BOOST_WIN_CHANCE" default:"0.55"`
	BoostSalvageChance     float64       `envconfig:"BOOST_SALVAGE_CHANCE" default:"0.10"`
	BoostSalvageMultiplier float64       `envconfig:"BOOST_SALVAGE_MULTIPLIER" default:"1.0"`

	// --- Wagers ---
	WagerMinBet       float64       `envconfig:"WAGER_MIN_BET" default:"1"`
	WagerMaxBet       float64       `envconfig:"WAGER_MAX_BET" default:"1000000"`
	RouletteWindow    time.Duration `envconfig:"ROULETTE_WINDOW" default:"30s"`
	RouletteLastCall  time.Duration `envconfig:"ROULETTE_LAST_CALL" default:"10s"`
	CoinflipWinChance float64       `envconfig:"COINFLIP_WIN_CHANCE" default:"0.5"`

	// --- Leaderboards ---
	LeaderboardSize int `envconfig:"LEADERBOARD_SIZE" default:"10"`
}

// Validate rejects configurations that would misbehave at runtime
func (c *Config) Validate() error {
	if c.SpecialChance < 0 || c.SpecialChance > 1 {
		return fmt.Errorf("SPECIAL_CHANCE must be in [0, 1], got %v", c.SpecialChance)
	}
	if c.TipChance < 0 || c.TipChance > 1 {
		return fmt.Errorf("TIP_CHANCE must be in [0, 1], got %v", c.TipChance)
	}
	if c.RareGateOneIn < 1 {
		return fmt.Errorf("RARE_GATE_ONE_IN must be >= 1, got %d", c.RareGateOneIn)
	}
	if c.FishPenaltyRate < 0 || c.FishPenaltyRate >= 1 {
		return fmt.Errorf("FISH_PENALTY_RATE must be in [0, 1), got %v", c.FishPenaltyRate)
	}
	if c.BoostWinChance <= 0 || c.BoostWinChance >= 1 {
		return fmt.Errorf("BOOST_WIN_CHANCE must be in (0, 1), got %v", c.BoostWinChance)
	}
	if c.WagerMinBet <= 0 || c.WagerMaxBet < c.WagerMinBet {
		return fmt.Errorf("bad WAGER_MIN_BET/WAGER_MAX_BET: %v/%v", c.WagerMinBet, c.WagerMaxBet)
	}
	if c.RouletteWindow <= 0 {
		return fmt.Errorf("ROULETTE_WINDOW must be > 0, got %v", c.RouletteWindow)
	}
	if c.RouletteLastCall < 0 || c.RouletteLastCall >= c.RouletteWindow {
		return fmt.Errorf("ROULETTE_LAST_CALL must be in [0, ROULETTE_WINDOW), got %v", c.RouletteLastCall)
	}
	return nil
}

// Load reads the environment and fills the Config
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	cfg.AdminUserIDs = parseCSV(cfg.AdminUserIDsRaw)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseCSV(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
