package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/hustlebot/hustle/internal/common/clock"
	"github.com/hustlebot/hustle/internal/config"
	"github.com/hustlebot/hustle/internal/handlers/discord"
	"github.com/hustlebot/hustle/internal/progression"
	ledgerRepo "github.com/hustlebot/hustle/internal/repositories/ledger"
	"github.com/hustlebot/hustle/internal/reward"
	"github.com/hustlebot/hustle/internal/rng"
	"github.com/hustlebot/hustle/internal/services/buff"
	"github.com/hustlebot/hustle/internal/services/economy"
	"github.com/hustlebot/hustle/internal/services/wager"
)

// overrideDistribution flattens the rarity table so test mode exercises
// every class quickly
var overrideDistribution = reward.Distribution{
	reward.ClassCommon:    1,
	reward.ClassUncommon:  1,
	reward.ClassRare:      1,
	reward.ClassEpic:      1,
	reward.ClassLegendary: 1,
	reward.ClassSecret:    1,
}

func main() {
	// A missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.WithError(err).Fatal("failed to connect to Redis")
	}

	ledger, err := ledgerRepo.NewRedis(&ledgerRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create ledger repository")
	}

	systemClock := &clock.DefaultClock{}
	roller := rng.New(&rng.Config{Seed: cfg.RNGSeed})

	// The session is shared by the bot, the round notifier and the work
	// announcer, so the services can post without a handler in the loop
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.WithError(err).Fatal("failed to create Discord session")
	}

	economySvc, err := economy.New(&economy.Config{
		BaseOdds: reward.Odds{
			SpecialChance: cfg.SpecialChance,
			RareGateOneIn: cfg.RareGateOneIn,
			TipChance:     cfg.TipChance,
		},
		OverrideOdds: reward.Odds{
			SpecialChance: cfg.OverrideSpecialChance,
			RareGateOneIn: cfg.OverrideRareGateOneIn,
			TipChance:     cfg.OverrideTipChance,
			Override:      overrideDistribution,
		},
		LeaderboardSize: cfg.LeaderboardSize,
		FishPenaltyRate: cfg.FishPenaltyRate,
		Announcer:       discord.NewWorkAnnouncer(session, cfg.AnnounceChannelID),
		Ledger:          ledger,
		Progression:     progression.DefaultTable(),
		Roller:          roller,
		Clock:           systemClock,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create economy service")
	}

	buffSvc, err := buff.New(&buff.Config{
		Price:             cfg.BoostPrice,
		GrantUses:         cfg.BoostUses,
		Cooldown:          cfg.BoostCooldown,
		BoostedWinChance:  cfg.BoostWinChance,
		SalvageChance:     cfg.BoostSalvageChance,
		SalvageMultiplier: cfg.BoostSalvageMultiplier,
		Ledger:            ledger,
		Clock:             systemClock,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create buff service")
	}

	wagerSvc, err := wager.New(&wager.Config{
		MinBet:            cfg.WagerMinBet,
		MaxBet:            cfg.WagerMaxBet,
		Window:            cfg.RouletteWindow,
		LastCall:          cfg.RouletteLastCall,
		CoinflipWinChance: cfg.CoinflipWinChance,
		Ledger:            ledger,
		Buff:              buffSvc,
		Roller:            roller,
		Clock:             systemClock,
		Notifier:          discord.NewRoundNotifier(session),
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create wager service")
	}

	bot, err := discord.New(&discord.Config{
		Session:           session,
		ApplicationID:     cfg.ApplicationID,
		GuildID:           cfg.GuildID,
		WorkChannelID:     cfg.WorkChannelID,
		RouletteChannelID: cfg.RouletteChannelID,
		AdminUserIDs:      cfg.AdminUserIDs,
		EconomyService:    economySvc,
		BuffService:       buffSvc,
		WagerService:      wagerSvc,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to create Discord bot")
	}

	if err := bot.Start(); err != nil {
		log.WithError(err).Fatal("failed to start Discord bot")
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.WithError(err).Error("error stopping bot")
	}

	log.Info("Bot has been shut down")
}
