package discord

import (
	"github.com/bwmarrin/discordgo"
)

// CommandHandler defines the interface for Discord command handlers
type CommandHandler interface {
	// GetName returns the command name
	GetName() string

	// GetCommand returns the application command definition
	GetCommand() *discordgo.ApplicationCommand

	// Handle processes a Discord interaction
	Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error
}

// BaseCommand provides common functionality for all commands
type BaseCommand struct {
	Name        string
	Description string
	Options     []*discordgo.ApplicationCommandOption
}

// GetName returns the command name
func (c *BaseCommand) GetName() string {
	return c.Name
}

// GetCommand returns the application command definition
func (c *BaseCommand) GetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name,
		Description: c.Description,
		Options:     c.Options,
	}
}

// RespondWithMessage sends a simple text message response to an interaction
func RespondWithMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
}

// RespondWithEmbed sends an embed response to an interaction
func RespondWithEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// RespondWithError sends an error response to an interaction
func RespondWithError(s *discordgo.Session, i *discordgo.InteractionCreate, errorMessage string) error {
	embed := &discordgo.MessageEmbed{
		Title:       "Error",
		Description: errorMessage,
		Color:       colorError,
	}

	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// RespondWithEphemeralMessage sends a message only the invoking user can see
func RespondWithEphemeralMessage(s *discordgo.Session, i *discordgo.InteractionCreate, message string) error {
	return s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}

// interactionUser extracts the acting user's ID and display name. Guild
// interactions carry a Member; DMs carry a bare User.
func interactionUser(i *discordgo.InteractionCreate) (userID, username string) {
	if i.Member != nil && i.Member.User != nil {
		userID = i.Member.User.ID
		username = i.Member.User.Username
		if i.Member.Nick != "" {
			username = i.Member.Nick
		}
		return userID, username
	}
	if i.User != nil {
		return i.User.ID, i.User.Username
	}
	return "", ""
}

// optionMap indexes a command's options by name
func optionMap(data discordgo.ApplicationCommandInteractionData) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(data.Options))
	for _, opt := range data.Options {
		m[opt.Name] = opt
	}
	return m
}
