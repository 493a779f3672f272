package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/hustlebot/hustle/internal/services/buff"
	"github.com/hustlebot/hustle/internal/services/economy"
	"github.com/hustlebot/hustle/internal/services/wager"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the shared Discord session; the round notifier posts
	// through the same one
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// WorkChannelID binds /work to one channel; empty allows any channel
	WorkChannelID string

	// RouletteChannelID binds /roulette to one channel; empty allows any
	RouletteChannelID string

	// AdminUserIDs may run /testmode and /reset in addition to users
	// holding the Administrator permission
	AdminUserIDs []string

	// Services
	EconomyService economy.Service
	BuffService    buff.Service
	WagerService   wager.Service
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.EconomyService == nil {
		return nil, errors.New("economy service cannot be nil")
	}

	if cfg.BuffService == nil {
		return nil, errors.New("buff service cannot be nil")
	}

	if cfg.WagerService == nil {
		return nil, errors.New("wager service cannot be nil")
	}

	bot := &Bot{
		session:    cfg.Session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
	}

	// Register the interaction handler
	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		NewWorkCommand(b.config.EconomyService, b.config.WorkChannelID),
		NewBalanceCommand(b.config.EconomyService),
		NewProgressCommand(b.config.EconomyService),
		NewFishCommand(b.config.EconomyService),
		NewPayCommand(b.config.EconomyService),
		NewLeaderboardCommand(b.config.EconomyService),
		NewCoinflipCommand(b.config.WagerService),
		NewRouletteCommand(b.config.WagerService, b.config.RouletteChannelID),
		NewLuckboostCommand(b.config.BuffService),
		NewTestmodeCommand(b.config.EconomyService, b.isAdmin),
		NewResetCommand(b.config.EconomyService, b.isAdmin),
	}

	for _, h := range handlers {
		if err := b.RegisterCommand(h); err != nil {
			return fmt.Errorf("failed to register %s command: %w", h.GetName(), err)
		}
	}

	log.Info("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.WithError(err).WithField("command", cmdName).Warn("failed to delete command")
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild.
	// Otherwise, register it globally.
	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID
	log.WithFields(log.Fields{
		"command": cmd.GetName(),
		"id":      createdCmd.ID,
	}).Info("registered command")

	return nil
}

// handleInteraction dispatches slash commands to their handlers
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
		if err := h.Handle(s, i); err != nil {
			log.WithError(err).WithField("command", i.ApplicationCommandData().Name).
				Error("error handling command")
		}
	}
}

// isAdmin reports whether the acting user may run admin commands
func (b *Bot) isAdmin(i *discordgo.InteractionCreate) bool {
	userID, _ := interactionUser(i)
	for _, id := range b.config.AdminUserIDs {
		if id == userID {
			return true
		}
	}

	if i.Member != nil && i.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}

	return false
}
