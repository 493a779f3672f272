package discord

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/hustlebot/hustle/internal/common/money"
	"github.com/hustlebot/hustle/internal/services/buff"
	"github.com/hustlebot/hustle/internal/services/economy"
	"github.com/hustlebot/hustle/internal/services/wager"
)

// Embed colors
const (
	colorError    = 0xe74c3c
	colorMoney    = 0x2ecc71
	colorNeutral  = 0x95a5a6
	colorBoost    = 0x9b59b6
	colorRoulette = 0xc0392b
)

var classColors = map[string]int{
	"common":    0x95a5a6,
	"uncommon":  0x2ecc71,
	"rare":      0x3498db,
	"epic":      0x9b59b6,
	"legendary": 0xf1c40f,
	"secret":    0xe91e63,
	"special":   0xe67e22,
}

var classEmojis = map[string]string{
	"common":    "🧹",
	"uncommon":  "🔧",
	"rare":      "💼",
	"epic":      "🚀",
	"legendary": "👑",
	"secret":    "🗝️",
	"special":   "✨",
}

func classColor(class string) int {
	if c, ok := classColors[class]; ok {
		return c
	}
	return colorNeutral
}

func classEmoji(class string) string {
	if e, ok := classEmojis[class]; ok {
		return e
	}
	return "💰"
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// workEmbed renders one work result
func workEmbed(username string, out *economy.WorkOutput) *discordgo.MessageEmbed {
	title := fmt.Sprintf("%s %s job!", classEmoji(out.Class), titleCase(out.Class))
	if out.Special {
		title = "✨ SPECIAL EVENT ✨"
	}

	desc := out.Label
	fields := []*discordgo.MessageEmbedField{
		{Name: "Payout", Value: money.Format(out.BasePayout), Inline: true},
	}

	if out.Tip != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s Tip: %s", out.Tip.Emoji, out.Tip.Name),
			Value:  fmt.Sprintf("×%.2f — %s", out.Tip.Mult, out.Tip.Flavor),
			Inline: true,
		})
	}

	fields = append(fields, &discordgo.MessageEmbedField{
		Name: "Total", Value: money.Format(out.TotalPayout), Inline: true,
	}, &discordgo.MessageEmbedField{
		Name: "Balance", Value: money.Format(out.Balance), Inline: true,
	})

	if out.NewBest {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name: "🏆 New personal best!", Value: money.Format(out.TotalPayout),
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       title,
		Description: desc,
		Color:       classColor(out.Class),
		Fields:      fields,
	}
	if out.TierName != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%s · %s", username, out.TierName),
		}
	}
	return embed
}

// workHighlightMessage formats the announcement-channel line for a big win
func workHighlightMessage(userID string, out *economy.WorkOutput) string {
	kind := fmt.Sprintf("a **%s job**", strings.ToUpper(out.Class))
	if out.Special {
		kind = "a **SPECIAL job**"
	}

	msg := fmt.Sprintf("%s <@%s> just hit %s and made %s",
		classEmoji(out.Class), userID, kind, money.Format(out.TotalPayout))
	if out.Tip != nil {
		msg += fmt.Sprintf(" (tipped ×%.2f)", out.Tip.Mult)
	}
	return msg + "!"
}

// fishEmbed renders the fishing penalty
func fishEmbed(out *economy.FishOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🎣 Not here, dummy!",
		Description: fmt.Sprintf(
			"Wrong server for fishing. You lost **%s**, straight off the top of your wallet.",
			money.Format(out.Penalty)),
		Color: colorError,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: money.Format(out.Balance), Inline: true},
		},
	}
}

// progressEmbed renders a user's tier standing and job counts
func progressEmbed(username string, out *economy.GetProgressOutput) *discordgo.MessageEmbed {
	var counts strings.Builder
	for _, class := range []string{"common", "uncommon", "rare", "epic", "legendary", "secret", "special"} {
		if n, ok := out.Counts[class]; ok && n > 0 {
			fmt.Fprintf(&counts, "%s %s: %d\n", classEmoji(class), class, n)
		}
	}
	if counts.Len() == 0 {
		counts.WriteString("No jobs worked yet. Get out there!")
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Tier", Value: out.Tier.Name, Inline: true},
		{Name: "Jobs worked", Value: fmt.Sprintf("%d", out.Total), Inline: true},
		{Name: "Breakdown", Value: counts.String()},
	}

	if out.Next != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Next tier",
			Value:  fmt.Sprintf("%s in %d jobs", out.Next.Name, out.Next.JobsRemaining),
			Inline: true,
		})
	}
	if out.BestPayout != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Best payout",
			Value:  fmt.Sprintf("%s — %s", money.Format(out.BestPayout.Amount), out.BestPayout.Label),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  fmt.Sprintf("📊 %s's hustle", username),
		Color:  colorNeutral,
		Fields: fields,
	}
}

// leaderboardEmbed renders the top accounts
func leaderboardEmbed(out *economy.LeaderboardOutput) *discordgo.MessageEmbed {
	title := "💰 Money Leaderboard"
	format := func(v float64) string { return money.Format(v) }
	if out.Kind == economy.LeaderboardJobs {
		title = "🛠️ Jobs Leaderboard"
		format = func(v float64) string { return fmt.Sprintf("%.0f jobs", v) }
	}

	if len(out.Entries) == 0 {
		return &discordgo.MessageEmbed{
			Title:       title,
			Description: "Nobody on the board yet.",
			Color:       colorMoney,
		}
	}

	medals := []string{"🥇", "🥈", "🥉"}
	var body strings.Builder
	for idx, entry := range out.Entries {
		rank := fmt.Sprintf("%d.", idx+1)
		if idx < len(medals) {
			rank = medals[idx]
		}
		name := entry.Name
		if name == "" {
			name = entry.UserID
		}
		fmt.Fprintf(&body, "%s **%s** — %s\n", rank, name, format(entry.Value))
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: body.String(),
		Color:       colorMoney,
	}
}

// coinflipEmbed renders a settled coinflip
func coinflipEmbed(username, choice string, stake float64, out *wager.CoinflipOutput) *discordgo.MessageEmbed {
	title := "🪙 Tails... you lose."
	color := colorError
	desc := fmt.Sprintf("%s called %s and lost %s.", username, choice, money.Format(stake))
	if out.Won {
		title = "🪙 It lands your way!"
		color = colorMoney
		desc = fmt.Sprintf("%s called %s and doubled up for %s.", username, choice, money.Format(out.Payout))
	}

	fields := []*discordgo.MessageEmbedField{
		{Name: "Balance", Value: money.Format(out.Balance), Inline: true},
	}
	if out.Boosted {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "🍀 Luck boost",
			Value:  fmt.Sprintf("%d uses left", out.BoostUsesLeft),
			Inline: true,
		})
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: desc,
		Color:       color,
		Fields:      fields,
	}
}

// rouletteAdmitEmbed renders a freshly admitted roulette bet
func rouletteAdmitEmbed(username string, stake float64, out *wager.PlaceBetOutput) *discordgo.MessageEmbed {
	desc := fmt.Sprintf("%s puts %s on **%s**.", username, money.Format(stake), out.Bet.Value)
	if out.Opened {
		desc += "\nA new round is open — place your bets!"
	}
	if out.Salvage {
		desc += "\n🍀 A luck boost use protects this bet."
	}

	return &discordgo.MessageEmbed{
		Title:       "🎡 Roulette",
		Description: desc,
		Color:       colorRoulette,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Players", Value: fmt.Sprintf("%d", out.Participants), Inline: true},
			{
				Name:   "Wheel spins",
				Value:  fmt.Sprintf("<t:%d:R>", out.ClosesAt.Unix()),
				Inline: true,
			},
		},
	}
}

// lastCallEmbed announces the closing betting window
func lastCallEmbed(snapshot *wager.RoundSnapshot) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🎡 Last call!",
		Description: fmt.Sprintf("The wheel spins <t:%d:R> — %d bet(s) down.",
			snapshot.ClosesAt.Unix(), len(snapshot.Bets)),
		Color: colorRoulette,
	}
}

// rouletteResultEmbed renders a settled round
func rouletteResultEmbed(result *wager.RoundResult) *discordgo.MessageEmbed {
	outcomeEmoji := map[string]string{"red": "🟥", "black": "⬛", "green": "🟩"}[string(result.Outcome.Color)]

	var body strings.Builder
	for _, br := range result.Results {
		name := br.UserName
		if name == "" {
			name = br.UserID
		}
		switch {
		case br.Salvaged:
			fmt.Fprintf(&body, "🍀 **%s** lost on %s but salvaged %s\n", name, br.Bet.Value, money.Format(br.Payout))
		case br.Won:
			fmt.Fprintf(&body, "✅ **%s** won %s on %s (×%.0f)\n", name, money.Format(br.Payout), br.Bet.Value, br.Multiplier)
		default:
			fmt.Fprintf(&body, "❌ **%s** lost %s on %s\n", name, money.Format(br.Stake), br.Bet.Value)
		}
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎡 The ball lands on %s %s!", outcomeEmoji, result.Outcome.Slot),
		Description: body.String(),
		Color:       colorRoulette,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Staked %s · Paid %s", money.Format(result.TotalStaked), money.Format(result.TotalPaid)),
		},
	}
}

// luckboostEmbed renders a successful boost purchase
func luckboostEmbed(username string, out *buff.PurchaseOutput) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: "🍀 Luck boost purchased!",
		Description: fmt.Sprintf("%s paid %s for %d boosted wagers.",
			username, money.Format(out.Price), out.Record.Uses),
		Color: colorBoost,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Balance", Value: money.Format(out.Balance), Inline: true},
			{
				Name:   "Next purchase",
				Value:  fmt.Sprintf("<t:%d:R>", out.Record.CooldownUntil.Unix()),
				Inline: true,
			},
		},
	}
}

// cooldownMessage formats the wait on a boost purchase rejection
func cooldownMessage(until time.Time) string {
	return fmt.Sprintf("Your luck boost is on cooldown. Try again <t:%d:R>.", until.Unix())
}
