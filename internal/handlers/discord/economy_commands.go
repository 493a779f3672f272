package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/hustlebot/hustle/internal/common/money"
	"github.com/hustlebot/hustle/internal/services/economy"
)

// WorkCommand handles the /work command
type WorkCommand struct {
	BaseCommand
	economyService economy.Service

	// workChannelID binds the command to one channel; empty allows any
	workChannelID string
}

// NewWorkCommand creates a new work command handler
func NewWorkCommand(economyService economy.Service, workChannelID string) *WorkCommand {
	return &WorkCommand{
		BaseCommand: BaseCommand{
			Name:        "work",
			Description: "Work an odd job for a payout",
		},
		economyService: economyService,
		workChannelID:  workChannelID,
	}
}

// Handle processes a Discord interaction for the work command
func (c *WorkCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if c.workChannelID != "" && i.ChannelID != c.workChannelID {
		return RespondWithEphemeralMessage(s, i,
			fmt.Sprintf("Take it to <#%s> — no hustling in here.", c.workChannelID))
	}

	userID, username := interactionUser(i)
	output, err := c.economyService.Work(context.Background(), &economy.WorkInput{
		UserID:   userID,
		UserName: username,
	})
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("work failed")
		return RespondWithError(s, i, "The job fell through. Try again.")
	}

	return RespondWithEmbed(s, i, workEmbed(username, output))
}

// BalanceCommand handles the /balance command
type BalanceCommand struct {
	BaseCommand
	economyService economy.Service
}

// NewBalanceCommand creates a new balance command handler
func NewBalanceCommand(economyService economy.Service) *BalanceCommand {
	return &BalanceCommand{
		BaseCommand: BaseCommand{
			Name:        "balance",
			Description: "Check your wallet",
		},
		economyService: economyService,
	}
}

// Handle processes a Discord interaction for the balance command
func (c *BalanceCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID, username := interactionUser(i)
	output, err := c.economyService.GetBalance(context.Background(), &economy.GetBalanceInput{
		UserID:   userID,
		UserName: username,
	})
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("balance read failed")
		return RespondWithError(s, i, "Could not read your balance.")
	}

	return RespondWithMessage(s, i,
		fmt.Sprintf("💰 %s, you have **%s**.", username, money.Format(output.Balance)))
}

// FishCommand handles the /fish command
type FishCommand struct {
	BaseCommand
	economyService economy.Service
}

// NewFishCommand creates a new fish command handler
func NewFishCommand(economyService economy.Service) *FishCommand {
	return &FishCommand{
		BaseCommand: BaseCommand{
			Name:        "fish",
			Description: "Try to fish (but not in this bot!)",
		},
		economyService: economyService,
	}
}

// Handle processes a Discord interaction for the fish command
func (c *FishCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID, username := interactionUser(i)
	output, err := c.economyService.Fish(context.Background(), &economy.FishInput{
		UserID:   userID,
		UserName: username,
	})
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("fish failed")
		return RespondWithError(s, i, "The line snapped. Try again.")
	}

	if !output.Penalized {
		return RespondWithMessage(s, i, "🎣 Not here, wrong server dummy. Lucky your wallet is empty.")
	}

	return RespondWithEmbed(s, i, fishEmbed(output))
}

// ProgressCommand handles the /progress command
type ProgressCommand struct {
	BaseCommand
	economyService economy.Service
}

// NewProgressCommand creates a new progress command handler
func NewProgressCommand(economyService economy.Service) *ProgressCommand {
	return &ProgressCommand{
		BaseCommand: BaseCommand{
			Name:        "progress",
			Description: "See your tier, job counts and best payout",
		},
		economyService: economyService,
	}
}

// Handle processes a Discord interaction for the progress command
func (c *ProgressCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID, username := interactionUser(i)
	output, err := c.economyService.GetProgress(context.Background(), &economy.GetProgressInput{
		UserID: userID,
	})
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Error("progress read failed")
		return RespondWithError(s, i, "Could not read your progress.")
	}

	return RespondWithEmbed(s, i, progressEmbed(username, output))
}

// PayCommand handles the /pay command
type PayCommand struct {
	BaseCommand
	economyService economy.Service
}

// NewPayCommand creates a new pay command handler
func NewPayCommand(economyService economy.Service) *PayCommand {
	return &PayCommand{
		BaseCommand: BaseCommand{
			Name:        "pay",
			Description: "Send money to another user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "Who to pay",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "amount",
					Description: "Dollars to send",
					Required:    true,
				},
			},
		},
		economyService: economyService,
	}
}

// Handle processes a Discord interaction for the pay command
func (c *PayCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID, username := interactionUser(i)
	opts := optionMap(i.ApplicationCommandData())

	recipient := opts["user"].UserValue(s)
	amount := opts["amount"].FloatValue()

	output, err := c.economyService.Pay(context.Background(), &economy.PayInput{
		FromUserID: userID,
		FromName:   username,
		ToUserID:   recipient.ID,
		ToName:     recipient.Username,
		Amount:     amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, economy.ErrInvalidAmount),
			errors.Is(err, economy.ErrSelfPayment),
			errors.Is(err, economy.ErrInsufficientFunds):
			return RespondWithError(s, i, err.Error())
		default:
			log.WithError(err).WithField("user_id", userID).Error("payment failed")
			return RespondWithError(s, i, "The payment failed. Nobody was charged.")
		}
	}

	return RespondWithMessage(s, i, fmt.Sprintf("💸 %s sent **%s** to %s.",
		username, money.Format(output.Amount), recipient.Mention()))
}

// LeaderboardCommand handles the /leaderboard command
type LeaderboardCommand struct {
	BaseCommand
	economyService economy.Service
}

// NewLeaderboardCommand creates a new leaderboard command handler
func NewLeaderboardCommand(economyService economy.Service) *LeaderboardCommand {
	return &LeaderboardCommand{
		BaseCommand: BaseCommand{
			Name:        "leaderboard",
			Description: "Show the top hustlers",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "kind",
					Description: "Rank by money or jobs",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "money", Value: string(economy.LeaderboardMoney)},
						{Name: "jobs", Value: string(economy.LeaderboardJobs)},
					},
				},
			},
		},
		economyService: economyService,
	}
}

// Handle processes a Discord interaction for the leaderboard command
func (c *LeaderboardCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	kind := economy.LeaderboardMoney
	if opt, ok := optionMap(i.ApplicationCommandData())["kind"]; ok {
		kind = economy.LeaderboardKind(opt.StringValue())
	}

	output, err := c.economyService.Leaderboard(context.Background(), &economy.LeaderboardInput{
		Kind: kind,
	})
	if err != nil {
		log.WithError(err).Error("leaderboard read failed")
		return RespondWithError(s, i, "Could not read the leaderboard.")
	}

	return RespondWithEmbed(s, i, leaderboardEmbed(output))
}
