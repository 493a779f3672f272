package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/hustlebot/hustle/internal/services/economy"
)

// adminCheck reports whether the acting user may run admin commands
type adminCheck func(i *discordgo.InteractionCreate) bool

const permissionDeniedMessage = "You are not the boss of this economy."

// TestmodeCommand handles the /testmode command
type TestmodeCommand struct {
	BaseCommand
	economyService economy.Service
	isAdmin        adminCheck
}

// NewTestmodeCommand creates a new testmode command handler
func NewTestmodeCommand(economyService economy.Service, isAdmin adminCheck) *TestmodeCommand {
	return &TestmodeCommand{
		BaseCommand: BaseCommand{
			Name:        "testmode",
			Description: "Toggle override odds for testing (admin only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "state",
					Description: "on or off",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "on", Value: "on"},
						{Name: "off", Value: "off"},
					},
				},
			},
		},
		economyService: economyService,
		isAdmin:        isAdmin,
	}
}

// Handle processes a Discord interaction for the testmode command
func (c *TestmodeCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !c.isAdmin(i) {
		return RespondWithEphemeralMessage(s, i, permissionDeniedMessage)
	}

	enabled := optionMap(i.ApplicationCommandData())["state"].StringValue() == "on"

	output, err := c.economyService.SetOverrideMode(context.Background(), &economy.SetOverrideModeInput{
		Enabled: enabled,
	})
	if err != nil {
		log.WithError(err).Error("testmode toggle failed")
		return RespondWithError(s, i, "Could not toggle test mode.")
	}

	state := "off"
	if output.Enabled {
		state = "on"
	}
	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("🧪 Test mode is now **%s**.", state))
}

// ResetCommand handles the /reset command
type ResetCommand struct {
	BaseCommand
	economyService economy.Service
	isAdmin        adminCheck
}

// NewResetCommand creates a new reset command handler
func NewResetCommand(economyService economy.Service, isAdmin adminCheck) *ResetCommand {
	return &ResetCommand{
		BaseCommand: BaseCommand{
			Name:        "reset",
			Description: "Wipe one account, or everything (admin only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Account to wipe; omit to wipe the whole ledger",
				},
			},
		},
		economyService: economyService,
		isAdmin:        isAdmin,
	}
}

// Handle processes a Discord interaction for the reset command
func (c *ResetCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if !c.isAdmin(i) {
		return RespondWithEphemeralMessage(s, i, permissionDeniedMessage)
	}

	ctx := context.Background()
	opts := optionMap(i.ApplicationCommandData())

	if opt, ok := opts["user"]; ok {
		target := opt.UserValue(s)
		err := c.economyService.ResetAccount(ctx, &economy.ResetAccountInput{
			UserID: target.ID,
		})
		if err != nil {
			if errors.Is(err, economy.ErrNotFound) {
				return RespondWithError(s, i, err.Error())
			}
			log.WithError(err).WithField("user_id", target.ID).Error("account reset failed")
			return RespondWithError(s, i, "Could not reset the account.")
		}
		return RespondWithMessage(s, i, fmt.Sprintf("🧨 %s's account has been wiped.", target.Mention()))
	}

	if err := c.economyService.ResetAll(ctx); err != nil {
		log.WithError(err).Error("full reset failed")
		return RespondWithError(s, i, "Could not reset the economy.")
	}
	return RespondWithMessage(s, i, "🧨 The whole economy has been wiped. Fresh start.")
}
