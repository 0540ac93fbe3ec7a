// Package telegram bridges the chat topic to a Telegram chat. It is
// optional: the bridge only runs when a bot token is configured.
package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"workbench/backend/internal/chathub"
	"workbench/backend/internal/logging"
)

const sendBuffer = 64

// BotService forwards chat broadcasts to one Telegram chat and posts
// inbound Telegram messages through the chat orchestrator under the
// Telegram sender's name.
type BotService struct {
	BotAPI *tgbotapi.BotAPI
	Hub    *chathub.Hub
	Chat   *chathub.ChatService
	chatID int64
}

// NewBotService authorizes the bot. chatID is the Telegram chat the
// bridge mirrors into.
func NewBotService(token string, chatID int64, hub *chathub.Hub, chat *chathub.ChatService) (*BotService, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	bot.Debug = false
	logging.Logger.Info("telegram bridge authorized", zap.String("account", bot.Self.UserName))

	return &BotService{BotAPI: bot, Hub: hub, Chat: chat, chatID: chatID}, nil
}

// Run subscribes the bridge client to the chat topic and consumes
// Telegram updates until the update channel closes.
func (s *BotService) Run() {
	client := newClient(s.BotAPI, s.chatID, sendBuffer)
	s.Hub.Subscribe(chathub.ChatTopic, client)
	client.Run()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	for update := range s.BotAPI.GetUpdatesChan(u) {
		msg := update.Message
		if msg == nil || msg.From == nil || msg.Text == "" {
			continue
		}
		if msg.Chat.ID != s.chatID {
			continue
		}

		name := msg.From.FirstName
		if name == "" {
			name = msg.From.UserName
		}
		s.Chat.Post(name, msg.Text)
	}
}
