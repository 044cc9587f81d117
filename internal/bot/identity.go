package bot

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Identity derives a stable user key from the chat transport, keeping
// the rest of the system transport-agnostic.
type Identity interface {
	UserKey(from *tgbotapi.User, chatID int64) string
}

type telegramIdentity struct{}

func NewIdentity() Identity {
	return telegramIdentity{}
}

// UserKey prefers the username; some Telegram accounts only have a
// numeric id, which then becomes the key. The chat id is the last resort.
func (telegramIdentity) UserKey(from *tgbotapi.User, chatID int64) string {
	if from != nil {
		if from.UserName != "" {
			return from.UserName
		}
		return strconv.FormatInt(from.ID, 10)
	}
	return strconv.FormatInt(chatID, 10)
}
