package bot

import (
	"context"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/sokchea/rielbot/internal/commands"
	"github.com/sokchea/rielbot/internal/ledger"
)

func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	log.Printf("%s is connected!", event.User.Username)

	// Register commands for all guilds
	for _, guild := range event.Guilds {
		if err := b.registerGuildCommands(guild.ID); err != nil {
			log.Printf("Failed to register commands for guild %s: %v", guild.ID, err)
		}
	}
}

func (b *Bot) onGuildCreate(s *discordgo.Session, event *discordgo.GuildCreate) {
	log.Printf("Guild available/joined: %s (id=%s) — ensuring commands", event.Name, event.ID)
	if err := b.registerGuildCommands(event.ID); err != nil {
		log.Printf("Failed to register commands for guild %s: %v", event.ID, err)
	}
}

func (b *Bot) registerGuildCommands(guildID string) error {
	cmds := commands.GetCommands()
	// Delete existing commands and register new ones
	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, guildID, cmds)
	if err != nil {
		return err
	}

	log.Printf("Registered application commands for guild %s", guildID)
	return nil
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore bot messages
	if m.Author.Bot {
		return
	}

	content := strings.TrimSpace(m.Content)
	if content == "" {
		return
	}

	if strings.HasPrefix(content, "!") && len(content) > 1 {
		b.handleMessageCommand(s, m, content[1:])
		return
	}

	// Short day labels like "Jul 10" query that day, matching the old
	// reply-keyboard behavior.
	if scope, err := ledger.DayLabel(content, b.svc.Now()); err == nil {
		b.replySummary(s, m.ChannelID, scope)
		return
	}

	// Everything else goes through extraction; text without an amount is
	// ignored silently.
	if _, recorded, err := b.svc.Record(context.Background(), content); err != nil {
		log.Printf("Failed to record payment: %v", err)
		s.ChannelMessageSend(m.ChannelID, commands.StorageErrorText)
	} else if recorded {
		s.MessageReactionAdd(m.ChannelID, m.ID, "✅")
	}
}

func (b *Bot) handleMessageCommand(s *discordgo.Session, m *discordgo.MessageCreate, cmdline string) {
	fields := strings.Fields(cmdline)
	if len(fields) == 0 {
		s.ChannelMessageSend(m.ChannelID, commands.HelpText)
		return
	}

	switch fields[0] {
	case "today":
		b.replySummary(s, m.ChannelID, ledger.Today(b.svc.Now()))
	case "yesterday":
		b.replySummary(s, m.ChannelID, ledger.Yesterday(b.svc.Now()))
	case "week":
		b.replySummary(s, m.ChannelID, ledger.WeekOf(b.svc.Now()))
	case "month":
		b.replySummary(s, m.ChannelID, ledger.MonthOf(b.svc.Now()))
	case "total", "all":
		b.replySummary(s, m.ChannelID, ledger.All())
	case "day":
		if len(fields) < 2 {
			s.ChannelMessageSend(m.ChannelID, commands.InvalidDateText)
			return
		}
		scope, err := ledger.Day(fields[1])
		if err != nil {
			s.ChannelMessageSend(m.ChannelID, commands.InvalidDateText)
			return
		}
		b.replySummary(s, m.ChannelID, scope)
	default:
		s.ChannelMessageSend(m.ChannelID, commands.HelpText)
	}
}

func (b *Bot) replySummary(s *discordgo.Session, channelID string, scope ledger.Scope) {
	reply, err := commands.SummaryText(context.Background(), b.svc, scope)
	if err != nil {
		log.Printf("Failed to summarize ledger: %v", err)
		s.ChannelMessageSend(channelID, commands.StorageErrorText)
		return
	}
	s.ChannelMessageSend(channelID, reply)
}

func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.handleApplicationCommand(s, i)
	case discordgo.InteractionMessageComponent:
		commands.HandleComponent(s, i, b.svc)
	}
}

func (b *Bot) handleApplicationCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "menu":
		commands.HandleMenu(s, i, b.svc)
	case "today":
		commands.HandleToday(s, i, b.svc)
	case "yesterday":
		commands.HandleYesterday(s, i, b.svc)
	case "week":
		commands.HandleWeek(s, i, b.svc)
	case "month":
		commands.HandleMonth(s, i, b.svc)
	case "total":
		commands.HandleTotal(s, i, b.svc)
	case "day":
		commands.HandleDay(s, i, b.svc)
	}
}
