package mock_bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// MockSender records everything the bot tried to send.
type MockSender struct {
	SentMessages []tgbotapi.Chattable
	Requests     []tgbotapi.Chattable
}

func (m *MockSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	m.SentMessages = append(m.SentMessages, c)
	return tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}}, nil
}

func (m *MockSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	m.Requests = append(m.Requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}
