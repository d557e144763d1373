package notifier

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/delacruz-wedding/wedding-api/internal/models"
)

// Notifier pings the couple's channel when guests interact with the
// site. Notifications are best-effort: a failure never blocks the
// guest-facing request.
type Notifier interface {
	NotifyRSVP(guest models.Guest, response models.RSVPResponse) error
	NotifyUpload(uploader string, count int) error
}

type DiscordNotifier struct {
	session   *discordgo.Session
	channelID string
	log       zerolog.Logger
}

func NewDiscordNotifier(session *discordgo.Session, channelID string, log zerolog.Logger) *DiscordNotifier {
	return &DiscordNotifier{session: session, channelID: channelID, log: log}
}

func (n *DiscordNotifier) NotifyRSVP(guest models.Guest, response models.RSVPResponse) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	status := "will be attending 🎉"
	if response.Attending != "yes" {
		status = "cannot make it 😢"
	}

	party := ""
	if len(response.AdditionalGuests) > 0 {
		party = fmt.Sprintf("\n**Party size:** %d additional guest(s)", len(response.AdditionalGuests))
	}

	messageStr := ""
	if response.Message != "" {
		messageStr = fmt.Sprintf("\n**Message:** %s", response.Message)
	}

	message := fmt.Sprintf("💌 **RSVP Update**\n**Guest:** %s\n**Status:** %s%s%s",
		guest.Name,
		status,
		party,
		messageStr,
	)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		n.log.Warn().Err(err).Msg("failed to send discord rsvp notification")
		return err
	}

	return nil
}

func (n *DiscordNotifier) NotifyUpload(uploader string, count int) error {
	if n.session == nil {
		return fmt.Errorf("discord session is nil")
	}
	if n.channelID == "" {
		return fmt.Errorf("discord channel ID is empty")
	}

	message := fmt.Sprintf("📸 **New Photos**\n**Uploader:** %s\n**Count:** %d", uploader, count)

	_, err := n.session.ChannelMessageSend(n.channelID, message)
	if err != nil {
		n.log.Warn().Err(err).Msg("failed to send discord upload notification")
		return err
	}

	return nil
}
