package bot

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gmorandi/parlaquiz/config"
	"github.com/gmorandi/parlaquiz/internal/dto"
	"github.com/gmorandi/parlaquiz/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"
)

const (
	cmdStart         = "start"
	triggerStartQuiz = "start_quiz"
)

// Sender is the slice of the Telegram API the bot needs; tests swap in
// a mock.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Bot translates Telegram updates into quiz driver calls. It is webhook
// driven: updates arrive over HTTP, one logical quiz turn per update.
type Bot struct {
	sender    Sender
	quiz      service.QuizService
	questions service.QuestionService
	identity  Identity
}

func NewBot(cfg *config.Config, quiz service.QuizService, questions service.QuestionService) (*Bot, error) {
	b := &Bot{
		quiz:      quiz,
		questions: questions,
		identity:  NewIdentity(),
	}

	if cfg.Telegram.BotToken == "" {
		log.Warn().Msg("TELEGRAM_BOT_TOKEN is not set, bot transport disabled")
		return b, nil
	}

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	b.sender = api
	log.Info().Str("account", api.Self.UserName).Msg("Telegram bot authorized")
	return b, nil
}

// NewBotWithSender wires an explicit sender; used by tests.
func NewBotWithSender(sender Sender, quiz service.QuizService, questions service.QuestionService, identity Identity) *Bot {
	return &Bot{sender: sender, quiz: quiz, questions: questions, identity: identity}
}

// Enabled reports whether the Telegram transport is configured.
func (b *Bot) Enabled() bool {
	return b.sender != nil
}

// HandleUpdate processes one webhook update.
func (b *Bot) HandleUpdate(update tgbotapi.Update) {
	if !b.Enabled() {
		log.Warn().Msg("Ignoring update, bot transport disabled")
		return
	}

	if update.Message != nil {
		if update.Message.IsCommand() {
			if update.Message.Command() == cmdStart {
				b.handleStart(update.Message)
			}
			return
		}
		b.handleText(update.Message)
		return
	}

	if update.CallbackQuery != nil {
		b.handleCallback(update.CallbackQuery)
	}
}

func (b *Bot) handleStart(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	user := b.identity.UserKey(message.From, chatID)

	if _, err := b.quiz.StartSession(user); err != nil {
		log.Error().Err(err).Str("user", user).Msg("Failed to start session")
		b.sendText(chatID, "Произошла ошибка. Попробуйте ещё раз чуть позже.")
		return
	}

	total, err := b.questions.Count()
	if err != nil {
		log.Error().Err(err).Msg("Failed to count questions for greeting")
	}

	text := "Мы поможем тебе!\n\n" +
		fmt.Sprintf("Всего в тесте %d вопросов 🇮🇹\n", total) +
		"Для прохождения — просто выбери правильный ответ. Узнай свой уровень!\n\n" +
		"Жми — пройти тест👇"

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Пройти тест 📝", triggerStartQuiz),
		),
	)
	b.send(msg)
}

// handleText answers free-form text: mid-quiz users are steered back to
// the option buttons, everyone else to /start.
func (b *Bot) handleText(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	user := b.identity.UserKey(message.From, chatID)

	if _, err := b.quiz.LatestSessionID(user); err != nil {
		b.sendText(chatID, "Нажмите /start, чтобы начать тест.")
		return
	}
	b.sendText(chatID, "Пожалуйста, выберите один из вариантов⬇")
}

func (b *Bot) handleCallback(query *tgbotapi.CallbackQuery) {
	if query.Message == nil {
		log.Warn().Str("queryID", query.ID).Msg("Callback query without message")
		return
	}
	chatID := query.Message.Chat.ID
	user := b.identity.UserKey(query.From, chatID)

	if _, err := b.sender.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Warn().Err(err).Msg("Failed to answer callback query")
	}

	if query.Data == triggerStartQuiz {
		b.resumeQuiz(chatID, user)
		return
	}

	optionID, err := strconv.Atoi(query.Data)
	if err != nil {
		log.Warn().Str("data", query.Data).Msg("Invalid callback payload")
		b.sendText(chatID, "Пожалуйста, выберите один из вариантов⬇")
		return
	}
	b.processAnswer(chatID, user, optionID)
}

// resumeQuiz picks up the user's latest session at its current question,
// creating a session on the fly for users who lost their /start state.
func (b *Bot) resumeQuiz(chatID int64, user string) {
	sessionID, err := b.quiz.LatestSessionID(user)
	if err != nil {
		if !errors.Is(err, service.ErrNotFound) {
			log.Error().Err(err).Str("user", user).Msg("Failed to resolve session")
			b.sendText(chatID, "Произошла ошибка. Попробуйте ещё раз чуть позже.")
			return
		}
		session, startErr := b.quiz.StartSession(user)
		if startErr != nil {
			log.Error().Err(startErr).Str("user", user).Msg("Failed to start session")
			b.sendText(chatID, "Произошла ошибка. Попробуйте ещё раз чуть позже.")
			return
		}
		sessionID = session.ID
	}

	question, index, total, err := b.quiz.CurrentQuestion(sessionID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			b.sendText(chatID, "Вопросы пока недоступны. Загляните позже!")
			return
		}
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to load current question")
		b.sendText(chatID, "Произошла ошибка. Попробуйте ещё раз чуть позже.")
		return
	}
	if question == nil {
		b.sendReport(chatID, user, sessionID, total)
		return
	}

	b.sendText(chatID, fmt.Sprintf("Всего в тесте %d вопросов 🤩\nВыбери правильный ответ⬇", total))
	b.sendQuestion(chatID, question, index)
}

func (b *Bot) processAnswer(chatID int64, user string, optionID int) {
	sessionID, err := b.quiz.LatestSessionID(user)
	if err != nil {
		b.sendText(chatID, "Нажмите /start, чтобы начать тест.")
		return
	}

	question, index, total, err := b.quiz.CurrentQuestion(sessionID)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to load current question")
		b.sendText(chatID, "Произошла ошибка. Попробуйте ещё раз чуть позже.")
		return
	}
	if question == nil {
		// Session already finished; just resend the results.
		b.sendReport(chatID, user, sessionID, total)
		return
	}

	outcome, err := b.quiz.SubmitAnswer(sessionID, user, question.ID, optionID)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			b.sendText(chatID, "Пожалуйста, выберите один из вариантов⬇")
			return
		}
		log.Error().Err(err).Str("sessionID", sessionID).Int("questionID", question.ID).Msg("Failed to submit answer")
		b.sendText(chatID, "Не получилось сохранить ответ. Попробуйте ещё раз.")
		return
	}

	if outcome.Finished {
		b.sendText(chatID, "🎉 Тест пройден!\n\nВ течение минуты тут появятся твои результаты")
		b.sendFinalReport(chatID, outcome.Report, total)
		return
	}

	next, nextIndex, _, err := b.quiz.CurrentQuestion(sessionID)
	if err != nil || next == nil {
		log.Error().Err(err).Str("sessionID", sessionID).Int("index", index).Msg("Failed to load next question")
		b.sendText(chatID, "Произошла ошибка. Попробуйте ещё раз чуть позже.")
		return
	}
	b.sendQuestion(chatID, next, nextIndex)
}

func (b *Bot) sendQuestion(chatID int64, question *dto.QuestionResponse, index int) {
	log.Info().Int("questionID", question.ID).Int64("chatID", chatID).Msg("Sending question")

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, option := range question.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option.Text, strconv.Itoa(option.ID)),
		))
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Вопрос №%d\n%s", index+1, question.Text))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	b.send(msg)
}

func (b *Bot) sendReport(chatID int64, user, sessionID string, total int) {
	report, err := b.quiz.SessionReport(sessionID, user)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("Failed to load session report")
		b.sendText(chatID, "Произошла ошибка: бот не смог загрузить результаты теста.\nНе переживайте, мы свяжемся с вами и пришлем результаты")
		return
	}
	b.sendFinalReport(chatID, report, total)
}

func (b *Bot) sendFinalReport(chatID int64, report *dto.ScoreReportResponse, total int) {
	text := fmt.Sprintf("🎉 Вы прошли тест!\n\nПравильных ответов: %d из %d\nВаш уровень: %s",
		report.CorrectAnswers, total, report.ProficiencyLevel)
	b.sendText(chatID, text)
}

func (b *Bot) sendText(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) send(msg tgbotapi.Chattable) {
	if _, err := b.sender.Send(msg); err != nil {
		log.Error().Err(err).Msg("Failed to send telegram message")
	}
}
