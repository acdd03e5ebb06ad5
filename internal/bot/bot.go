package bot

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/sokchea/rielbot/internal/config"
	"github.com/sokchea/rielbot/internal/ledger"
)

type Bot struct {
	session *discordgo.Session
	svc     *ledger.Service
	digest  *digestWorker
}

func New(cfg *config.Config, svc *ledger.Service) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	bot := &Bot{
		session: session,
		svc:     svc,
	}

	if cfg.DigestChannelID != "" {
		bot.digest = newDigestWorker(session, svc, cfg.DigestChannelID)
	}

	// Register event handlers
	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onGuildCreate)
	session.AddHandler(bot.onMessageCreate)
	session.AddHandler(bot.onInteractionCreate)

	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	return bot, nil
}

func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}
	b.digest.start()
	log.Println("Discord bot is running")
	return nil
}

func (b *Bot) Stop() error {
	b.digest.stop()
	return b.session.Close()
}
