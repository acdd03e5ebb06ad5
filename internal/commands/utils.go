package commands

import (
	"github.com/bwmarrin/discordgo"
)

// HelpText is the static usage message shown for unrecognized commands.
const HelpText = "ខ្ញុំមិនយល់សំណើនេះទេ។ អ្នកអាចប្រើ៖\n" +
	"`/today` — សរុបថ្ងៃនេះ\n" +
	"`/yesterday` — សរុបម្សិលមិញ\n" +
	"`/week` — សរុបសប្ដាហ៍នេះ\n" +
	"`/month` — សរុបខែនេះ\n" +
	"`/total` — សរុបទាំងអស់\n" +
	"`/day YYYY-MM-DD` — សរុបថ្ងៃជាក់លាក់\n" +
	"`/menu` — បង្ហាញម៉ឺនុយ"

// InvalidDateText asks the user to resupply the date in the right form.
const InvalidDateText = "⚠️ ទម្រង់កាលបរិច្ឆេទមិនត្រឹមត្រូវ។ សូមប្រើ YYYY-MM-DD (ឧ. 2025-07-10)"

// StorageErrorText is shown when the ledger backing cannot be read.
const StorageErrorText = "⚠️ មិនអាចអានសៀវភៅបញ្ជីបានទេ សូមព្យាយាមម្ដងទៀត។"

func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
		},
	})
}

func respondWithButtons(s *discordgo.Session, i *discordgo.InteractionCreate, content string, rows []discordgo.MessageComponent) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: rows,
		},
	})
}
