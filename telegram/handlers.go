package telegram

import (
	"fmt"
	"html"
	"strings"
	"time"

	"novonexbot/database"
	"novonexbot/menu"
	"novonexbot/session"
	"novonexbot/state"
	"novonexbot/utils"

	"github.com/PaulSonOfLars/gotgbot/v2"
	"github.com/PaulSonOfLars/gotgbot/v2/ext"
	"github.com/PaulSonOfLars/gotgbot/v2/ext/handlers"
)

type ownerCommand struct {
	command     handlers.Command
	description string
}

var commands = []ownerCommand{}

func AddTelegramHandlers() {
	dispatcher := state.State.TelegramDispatcher

	commands = append(commands,
		ownerCommand{
			handlers.NewCommand("start", StartCommandHandler),
			"Show bot status",
		},
		ownerCommand{
			handlers.NewCommand("stats", StatsCommandHandler),
			"Show how often each service was asked for",
		},
		ownerCommand{
			handlers.NewCommand("findcontact", FindContactHandler),
			"Fuzzy find contacts that talked to the bot",
		},
		ownerCommand{
			handlers.NewCommand("help", HelpCommandHandler),
			"Get all the available commands",
		},
	)

	for _, command := range commands {
		dispatcher.AddHandler(command.command)
		if command.description != "" {
			state.State.TelegramCommands = append(state.State.TelegramCommands,
				gotgbot.BotCommand{
					Command:     command.command.Command,
					Description: command.description,
				},
			)
		}
	}
}

func StartCommandHandler(b *gotgbot.Bot, c *ext.Context) error {
	if !utils.TgUpdateIsAuthorized(b, c) {
		return nil
	}

	_, err := utils.TgReplyTextByContext(b, c, StatusText(time.Now().UTC()))
	return err
}

// StatusText renders the /start reply.
func StatusText(now time.Time) string {
	var (
		startTime     = state.State.StartTime
		localLocation = state.State.LocalLocation
		timeFormat    = state.State.Config.TimeFormat
		upTime        = now.Sub(startTime).Round(time.Second)
	)

	startMessage := "Hi! The bot is up and running\n\n"
	startMessage += fmt.Sprintf("• <b>Up Since</b>: %s [ %s ]\n",
		startTime.In(localLocation).Format(timeFormat),
		upTime.String(),
	)
	startMessage += fmt.Sprintf("• <b>Version</b>: <code>%s</code>\n", state.NOVONEXBOT_VERSION)

	if sessions := state.State.Sessions; sessions != nil {
		startMessage += fmt.Sprintf("• <b>Active Conversations</b>: %d\n", sessions.Len())
	}

	if state.State.Database != nil {
		if contacts, err := database.ContactCount(); err == nil {
			startMessage += fmt.Sprintf("• <b>Known Contacts</b>: %d\n", contacts)
		}
	}

	return startMessage
}

func StatsCommandHandler(b *gotgbot.Bot, c *ext.Context) error {
	if !utils.TgUpdateIsAuthorized(b, c) {
		return nil
	}

	counts, err := database.InquiryCountByService()
	if err != nil {
		return utils.TgReplyWithErrorByContext(b, c, "Failed to load inquiry statistics", err)
	}

	_, err = utils.TgReplyTextByContext(b, c, StatsText(counts))
	return err
}

// StatsText renders inquiry counts grouped by company.
func StatsText(counts []database.ServiceCount) string {
	if len(counts) == 0 {
		return "No service has been asked for yet"
	}

	var (
		software strings.Builder
		digital  strings.Builder
	)
	for _, count := range counts {
		service, company, found := menu.LookupService(count.ServiceID)
		if !found {
			continue
		}

		line := fmt.Sprintf("- %s : <b>%d</b>\n", html.EscapeString(menu.PlainLabel(service.Label)), count.Total)
		switch company {
		case session.CompanySoftware:
			software.WriteString(line)
		default:
			digital.WriteString(line)
		}
	}

	outputString := "Service inquiries\n\n"
	if software.Len() > 0 {
		outputString += "<b>Software Solutions</b>\n" + software.String() + "\n"
	}
	if digital.Len() > 0 {
		outputString += "<b>Digital Works</b>\n" + digital.String()
	}
	return strings.TrimRight(outputString, "\n")
}

func FindContactHandler(b *gotgbot.Bot, c *ext.Context) error {
	if !utils.TgUpdateIsAuthorized(b, c) {
		return nil
	}

	usageString := "Usage : <code>" + html.EscapeString("/findcontact <name>") + "</code>"

	args := c.Args()
	if len(args) <= 1 {
		_, err := utils.TgReplyTextByContext(b, c, usageString)
		return err
	}
	query := strings.Join(args[1:], " ")

	results, err := utils.WaFuzzyFindContacts(query)
	if err != nil {
		return utils.TgReplyWithErrorByContext(b, c, "Encountered error while finding contacts", err)
	}

	if len(results) == 0 {
		_, err = utils.TgReplyTextByContext(b, c, "No matching results found :(")
		return err
	}

	outputString := "Here are the matching contacts:\n\n"
	for _, contact := range results {
		outputString += fmt.Sprintf("- <i>%s</i> [ <code>%s</code> ]\n",
			html.EscapeString(contact.PushName), html.EscapeString(contact.Jid))
	}

	_, err = utils.TgReplyTextByContext(b, c, outputString)
	return err
}

func HelpCommandHandler(b *gotgbot.Bot, c *ext.Context) error {
	if !utils.TgUpdateIsAuthorized(b, c) {
		return nil
	}

	helpString := "Here are the available commands:\n\n"

	for _, command := range state.State.TelegramCommands {
		helpString += fmt.Sprintf("- <code>/%s</code> : %s\n",
			command.Command, html.EscapeString(command.Description))
	}

	_, err := utils.TgReplyTextByContext(b, c, helpString)
	return err
}
