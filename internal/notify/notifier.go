// Package notify forwards noteworthy backend events to the team's
// Telegram chat. It only sends; nothing is read back from Telegram.
package notify

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"pickandtip/backend/internal/models"
)

// Notifier posts messages to a fixed admin chat.
type Notifier struct {
	BotAPI *tgbotapi.BotAPI
	ChatID int64
}

// NewNotifier authorizes the bot. The chat ID is the admin group the
// team reads submissions in.
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	log.Printf("✅ Authorized on account %s", bot.Self.UserName)

	return &Notifier{BotAPI: bot, ChatID: chatID}, nil
}

// SubmissionReceived announces a new contact submission.
func (n *Notifier) SubmissionReceived(sub *models.ContactSubmission) {
	text := fmt.Sprintf("📬 New contact submission\nFrom: %s <%s>\nSubject: %s\nTopics: %s\nLanguage: %s",
		sub.Name, sub.Email, sub.Subject, strings.Join(sub.Topics, ", "), sub.Language)

	msg := tgbotapi.NewMessage(n.ChatID, text)
	if _, err := n.BotAPI.Send(msg); err != nil {
		log.Printf("ERROR: Failed to send Telegram notification: %v", err)
	}
}

// DatasetsReloaded announces an admin-triggered dataset reload.
func (n *Notifier) DatasetsReloaded(countries int) {
	msg := tgbotapi.NewMessage(n.ChatID, fmt.Sprintf("♻️ Datasets reloaded (%d countries).", countries))
	if _, err := n.BotAPI.Send(msg); err != nil {
		log.Printf("ERROR: Failed to send Telegram notification: %v", err)
	}
}
