package telegram

import (
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"workbench/backend/internal/logging"
	"workbench/backend/internal/models"
)

// Client implements chathub.Client over a Telegram chat: every broadcast
// delivered by the hub is forwarded as a bot message.
type Client struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	send   chan models.ChatMessagePayload

	closeOnce sync.Once
}

func newClient(bot *tgbotapi.BotAPI, chatID int64, buffer int) *Client {
	return &Client{
		bot:    bot,
		chatID: chatID,
		send:   make(chan models.ChatMessagePayload, buffer),
	}
}

func (c *Client) GetSessionID() string { return "telegram-bridge" }

func (c *Client) GetSendChannel() chan<- models.ChatMessagePayload { return c.send }

// Run drains the send channel into the Telegram chat.
func (c *Client) Run() {
	go func() {
		for payload := range c.send {
			text := fmt.Sprintf("[%s] %s: %s", payload.CreatedAt, payload.UserName, payload.Message)
			if _, err := c.bot.Send(tgbotapi.NewMessage(c.chatID, text)); err != nil {
				logging.Logger.Error("failed to forward message to telegram", zap.Error(err))
			}
		}
	}()
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}
