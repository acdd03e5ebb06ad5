package commands

import "github.com/bwmarrin/discordgo"

func GetCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "menu",
			Description: "បង្ហាញម៉ឺនុយរបាយការណ៍",
		},
		{
			Name:        "today",
			Description: "សរុបប្រតិបត្តិការថ្ងៃនេះ",
		},
		{
			Name:        "yesterday",
			Description: "សរុបប្រតិបត្តិការម្សិលមិញ",
		},
		{
			Name:        "week",
			Description: "សរុបប្រតិបត្តិការសប្ដាហ៍នេះ",
		},
		{
			Name:        "month",
			Description: "សរុបប្រតិបត្តិការខែនេះ",
		},
		{
			Name:        "total",
			Description: "សរុបប្រតិបត្តិការទាំងអស់",
		},
		{
			Name:        "day",
			Description: "សរុបប្រតិបត្តិការសម្រាប់ថ្ងៃជាក់លាក់",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "date",
					Description: "កាលបរិច្ឆេទ (YYYY-MM-DD)",
					Required:    true,
				},
			},
		},
	}
}
