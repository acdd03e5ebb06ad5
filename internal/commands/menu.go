package commands

import (
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/sokchea/rielbot/internal/ledger"
)

const (
	menuPrompt      = "📊 សូមជ្រើសរើសរបាយការណ៍៖"
	dayPickerPrompt = "📅 សូមជ្រើសរើសថ្ងៃ៖"
	otherDayText    = "ℹ️ សូមប្រើ `/day YYYY-MM-DD` សម្រាប់ថ្ងៃផ្សេងទៀត។"
)

// HandleMenu shows the report menu: daily, weekly, monthly.
func HandleMenu(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	respondWithButtons(s, i, menuPrompt, menuRows())
}

// HandleComponent routes button presses from the menu and the day picker.
func HandleComponent(s *discordgo.Session, i *discordgo.InteractionCreate, svc *ledger.Service) {
	customID := i.MessageComponentData().CustomID

	switch {
	case customID == "menu":
		respondWithButtons(s, i, menuPrompt, menuRows())
	case customID == "menu:daily":
		respondWithButtons(s, i, dayPickerPrompt, dayPickerRows(svc.Now()))
	case customID == "menu:weekly":
		respondSummary(s, i, svc, ledger.WeekOf(svc.Now()))
	case customID == "menu:monthly":
		respondSummary(s, i, svc, ledger.MonthOf(svc.Now()))
	case customID == "day:other":
		respond(s, i, otherDayText)
	case strings.HasPrefix(customID, "day:"):
		date := strings.TrimPrefix(customID, "day:")
		scope, err := ledger.Day(date)
		if err != nil {
			respond(s, i, InvalidDateText)
			return
		}
		respondSummary(s, i, svc, scope)
	}
}

func menuRows() []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "ប្រចាំថ្ងៃ",
					Style:    discordgo.PrimaryButton,
					CustomID: "menu:daily",
				},
				discordgo.Button{
					Label:    "ប្រចាំសប្ដាហ៍",
					Style:    discordgo.PrimaryButton,
					CustomID: "menu:weekly",
				},
				discordgo.Button{
					Label:    "ប្រចាំខែ",
					Style:    discordgo.PrimaryButton,
					CustomID: "menu:monthly",
				},
			},
		},
	}
}

// dayPickerRows offers the last three days by their short labels, plus
// an escape hatch for other days and a way back to the menu.
func dayPickerRows(now time.Time) []discordgo.MessageComponent {
	var dayButtons []discordgo.MessageComponent
	for i := 0; i < 3; i++ {
		day := now.AddDate(0, 0, -i)
		dayButtons = append(dayButtons, discordgo.Button{
			Label:    day.Format(ledger.DayLabelLayout),
			Style:    discordgo.SecondaryButton,
			CustomID: "day:" + day.Format(ledger.DateLayout),
		})
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: dayButtons},
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "ថ្ងៃផ្សេងទៀត",
					Style:    discordgo.SecondaryButton,
					CustomID: "day:other",
				},
				discordgo.Button{
					Label:    "⬅ ត្រឡប់ក្រោយ",
					Style:    discordgo.SecondaryButton,
					CustomID: "menu",
				},
			},
		},
	}
}
