package bot

import (
	"net/http"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

// WebhookHandler adapts Telegram's webhook POSTs to HandleUpdate.
// Telegram only cares about the status code, so errors are logged and
// answered with 200 to stop redelivery of broken updates.
func (b *Bot) WebhookHandler() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var update tgbotapi.Update
		if err := ctx.ShouldBindJSON(&update); err != nil {
			log.Warn().Err(err).Msg("Malformed webhook update")
			ctx.Status(http.StatusOK)
			return
		}
		b.HandleUpdate(update)
		ctx.Status(http.StatusOK)
	}
}
