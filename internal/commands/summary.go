package commands

import (
	"context"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/sokchea/rielbot/internal/ledger"
)

func HandleToday(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	respondSummary(s, i, svc, ledger.Today(svc.Now()))
}

func HandleYesterday(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	respondSummary(s, i, svc, ledger.Yesterday(svc.Now()))
}

func HandleWeek(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	respondSummary(s, i, svc, ledger.WeekOf(svc.Now()))
}

func HandleMonth(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	respondSummary(s, i, svc, ledger.MonthOf(svc.Now()))
}

func HandleTotal(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	respondSummary(s, i, svc, ledger.All())
}

func HandleDay(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	var date string
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "date" {
			date = opt.StringValue()
		}
	}

	scope, err := ledger.Day(date)
	if err != nil {
		// The malformed date never reaches the store.
		respond(s, i, InvalidDateText)
		return
	}
	respondSummary(s, i, svc, scope)
}

// SummaryText loads and formats the summary for one scope. Shared by the
// interaction handlers, the message commands and the daily digest.
func SummaryText(ctx context.Context, svc *ledger.Service, scope ledger.Scope) (string, error) {
	sum, err := svc.Summarize(ctx, scope)
	if err != nil {
		return "", err
	}
	return ledger.FormatSummary(scope, sum), nil
}

func respondSummary(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service, scope ledger.Scope) {
	reply, err := SummaryText(context.Background(), svc, scope)
	if err != nil {
		log.Printf("Failed to summarize ledger: %v", err)
		respond(s, i, StorageErrorText)
		return
	}
	respond(s, i, reply)
}
