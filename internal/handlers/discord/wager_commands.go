package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/hustlebot/hustle/internal/roulette"
	"github.com/hustlebot/hustle/internal/services/buff"
	"github.com/hustlebot/hustle/internal/services/wager"
)

// CoinflipCommand handles the /coinflip command
type CoinflipCommand struct {
	BaseCommand
	wagerService wager.Service
}

// NewCoinflipCommand creates a new coinflip command handler
func NewCoinflipCommand(wagerService wager.Service) *CoinflipCommand {
	return &CoinflipCommand{
		BaseCommand: BaseCommand{
			Name:        "coinflip",
			Description: "Double or nothing on a coin flip",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "choice",
					Description: "Heads or tails",
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "heads", Value: "heads"},
						{Name: "tails", Value: "tails"},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "amount",
					Description: "Dollars to stake",
					Required:    true,
				},
			},
		},
		wagerService: wagerService,
	}
}

// Handle processes a Discord interaction for the coinflip command
func (c *CoinflipCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID, username := interactionUser(i)
	opts := optionMap(i.ApplicationCommandData())
	choice := opts["choice"].StringValue()
	amount := opts["amount"].FloatValue()

	output, err := c.wagerService.Coinflip(context.Background(), &wager.CoinflipInput{
		UserID:   userID,
		UserName: username,
		Amount:   amount,
	})
	if err != nil {
		if wagerUserError(err) {
			return RespondWithError(s, i, err.Error())
		}
		log.WithError(err).WithField("user_id", userID).Error("coinflip failed")
		return RespondWithError(s, i, "The coin rolled under the couch. Try again.")
	}

	return RespondWithEmbed(s, i, coinflipEmbed(username, choice, amount, output))
}

// RouletteCommand handles the /roulette command
type RouletteCommand struct {
	BaseCommand
	wagerService wager.Service

	// rouletteChannelID binds the command to one channel; empty allows any
	rouletteChannelID string
}

// NewRouletteCommand creates a new roulette command handler
func NewRouletteCommand(wagerService wager.Service, rouletteChannelID string) *RouletteCommand {
	return &RouletteCommand{
		BaseCommand: BaseCommand{
			Name:        "roulette",
			Description: "Bet on the wheel; the first bet opens a round",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "bet",
					Description: "red, black, green, odd, even, 1-18, 19-36, 1st12, 2nd12, 3rd12, or a number",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionNumber,
					Name:        "amount",
					Description: "Dollars to stake",
					Required:    true,
				},
			},
		},
		wagerService:      wagerService,
		rouletteChannelID: rouletteChannelID,
	}
}

// Handle processes a Discord interaction for the roulette command
func (c *RouletteCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if c.rouletteChannelID != "" && i.ChannelID != c.rouletteChannelID {
		return RespondWithEphemeralMessage(s, i,
			fmt.Sprintf("The wheel only spins in <#%s>.", c.rouletteChannelID))
	}

	userID, username := interactionUser(i)
	opts := optionMap(i.ApplicationCommandData())
	bet := opts["bet"].StringValue()
	amount := opts["amount"].FloatValue()

	output, err := c.wagerService.PlaceBet(context.Background(), &wager.PlaceBetInput{
		ChannelID: i.ChannelID,
		UserID:    userID,
		UserName:  username,
		Bet:       bet,
		Amount:    amount,
	})
	if err != nil {
		if wagerUserError(err) || errors.Is(err, roulette.ErrInvalidBet) {
			return RespondWithError(s, i, err.Error())
		}
		log.WithError(err).WithField("user_id", userID).Error("roulette bet failed")
		return RespondWithError(s, i, "The croupier dropped the ball. Try again.")
	}

	return RespondWithEmbed(s, i, rouletteAdmitEmbed(username, amount, output))
}

// wagerUserError reports whether an error is the bettor's own fault and
// safe to echo back verbatim
func wagerUserError(err error) bool {
	return errors.Is(err, wager.ErrInvalidAmount) ||
		errors.Is(err, wager.ErrBetTooSmall) ||
		errors.Is(err, wager.ErrBetTooLarge) ||
		errors.Is(err, wager.ErrInsufficientFunds) ||
		errors.Is(err, wager.ErrRoundResolving)
}

// LuckboostCommand handles the /luckboost command
type LuckboostCommand struct {
	BaseCommand
	buffService buff.Service
}

// NewLuckboostCommand creates a new luckboost command handler
func NewLuckboostCommand(buffService buff.Service) *LuckboostCommand {
	return &LuckboostCommand{
		BaseCommand: BaseCommand{
			Name:        "luckboost",
			Description: "Buy a luck boost for your next wagers",
		},
		buffService: buffService,
	}
}

// Handle processes a Discord interaction for the luckboost command
func (c *LuckboostCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	userID, username := interactionUser(i)
	ctx := context.Background()

	output, err := c.buffService.Purchase(ctx, &buff.PurchaseInput{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, buff.ErrOnCooldown):
			// Fetch the record so the user sees when they can rebuy
			status, statusErr := c.buffService.Status(ctx, &buff.StatusInput{UserID: userID})
			if statusErr == nil && status.Record != nil {
				return RespondWithEphemeralMessage(s, i, cooldownMessage(status.Record.CooldownUntil))
			}
			return RespondWithError(s, i, err.Error())
		case errors.Is(err, buff.ErrInsufficientFunds):
			return RespondWithError(s, i, err.Error())
		default:
			log.WithError(err).WithField("user_id", userID).Error("boost purchase failed")
			return RespondWithError(s, i, "The boost dealer is out. Try again.")
		}
	}

	return RespondWithEmbed(s, i, luckboostEmbed(username, output))
}
