package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"github.com/hustlebot/hustle/internal/services/economy"
	"github.com/hustlebot/hustle/internal/services/wager"
)

// RoundNotifier posts round lifecycle events to the round's channel. It
// implements wager.Notifier and shares the bot's session, so it can be
// handed to the wager service before the bot itself is built.
type RoundNotifier struct {
	session *discordgo.Session
}

// NewRoundNotifier creates a notifier posting through the given session
func NewRoundNotifier(session *discordgo.Session) *RoundNotifier {
	return &RoundNotifier{session: session}
}

// RoundLastCall announces the closing betting window
func (n *RoundNotifier) RoundLastCall(_ context.Context, snapshot *wager.RoundSnapshot) {
	if _, err := n.session.ChannelMessageSendEmbed(snapshot.ChannelID, lastCallEmbed(snapshot)); err != nil {
		log.WithError(err).WithField("channel", snapshot.ChannelID).Warn("failed to post last call")
	}
}

// RoundResolved posts the drawn outcome and every bet's settlement
func (n *RoundNotifier) RoundResolved(_ context.Context, result *wager.RoundResult) {
	if _, err := n.session.ChannelMessageSendEmbed(result.ChannelID, rouletteResultEmbed(result)); err != nil {
		log.WithError(err).WithField("channel", result.ChannelID).Error("failed to post round result")
	}
}

// WorkAnnouncer broadcasts special and top-rarity work wins to a fixed
// announcement channel. It implements economy.Announcer; an empty channel
// ID disables it.
type WorkAnnouncer struct {
	session   *discordgo.Session
	channelID string
}

// NewWorkAnnouncer creates an announcer posting through the given session
func NewWorkAnnouncer(session *discordgo.Session, channelID string) *WorkAnnouncer {
	return &WorkAnnouncer{session: session, channelID: channelID}
}

// WorkHighlight posts one broadcast line for a big win
func (a *WorkAnnouncer) WorkHighlight(_ context.Context, userID string, out *economy.WorkOutput) {
	if a.channelID == "" {
		return
	}
	if _, err := a.session.ChannelMessageSend(a.channelID, workHighlightMessage(userID, out)); err != nil {
		log.WithError(err).WithField("channel", a.channelID).Warn("failed to post work announcement")
	}
}
