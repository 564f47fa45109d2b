package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	telegramBot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"bullion/internal/board"
	"bullion/internal/config"
	"bullion/internal/render"
)

type Board interface {
	Snapshot() board.Snapshot
}

type CycleRunner interface {
	RunCycle(ctx context.Context) bool
}

type Interaction struct {
	logger   *slog.Logger
	TgBot    *telegramBot.Bot
	renderer *render.Renderer
	board    Board
	cycle    CycleRunner
}

func NewInteraction(logger *slog.Logger, token string, client telegramBot.HttpClient, renderer *render.Renderer, b Board, cycle CycleRunner) *Interaction {
	cnt := &Interaction{
		logger:   logger.With("component", "telegram"),
		renderer: renderer,
		board:    b,
		cycle:    cycle,
	}

	opts := []telegramBot.Option{
		telegramBot.WithHTTPClient(time.Minute, client),
		telegramBot.WithSkipGetMe(),
		telegramBot.WithDefaultHandler(cnt.handler),
	}

	tgBot, _ := telegramBot.New(token, opts...)
	tgBot.RegisterHandler(telegramBot.HandlerTypeMessageText, "/start", telegramBot.MatchTypeExact, cnt.handlerStart)
	tgBot.RegisterHandler(telegramBot.HandlerTypeMessageText, "/help", telegramBot.MatchTypeExact, cnt.handlerHelp)
	tgBot.RegisterHandler(telegramBot.HandlerTypeMessageText, "/price", telegramBot.MatchTypeExact, cnt.handlerPrice)
	tgBot.RegisterHandler(telegramBot.HandlerTypeMessageText, "/refresh", telegramBot.MatchTypeExact, cnt.handlerRefresh)

	cnt.TgBot = tgBot
	return cnt
}

// Start polls Telegram until ctx is done.
func (that *Interaction) Start(ctx context.Context) {
	that.TgBot.Start(ctx)
}

func (that *Interaction) handler(_ context.Context, _ *telegramBot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	that.logger.With("method", "handler", "user_id", userID(update)).Debug("ignoring message", "text", update.Message.Text)
}

// userID returns the sender id, or 0 when Telegram sent no sender.
func userID(update *models.Update) int64 {
	if update.Message.From == nil {
		return 0
	}

	return update.Message.From.ID
}

// userLanguage returns the language code Telegram reports for the user.
func userLanguage(update *models.Update) string {
	if update.Message.From == nil || update.Message.From.LanguageCode == "" {
		return config.DefaultLanguageCode
	}

	return update.Message.From.LanguageCode
}

// sendLocaledMessage sends a localized plain text message to the user.
func (that *Interaction) sendLocaledMessage(ctx context.Context, bot *telegramBot.Bot, update *models.Update, messageID string) (*models.Message, error) {
	text := that.renderer.Localize(userLanguage(update), messageID, nil)

	msg, err := bot.SendMessage(ctx, &telegramBot.SendMessageParams{ChatID: update.Message.Chat.ID, Text: text})
	if err != nil {
		return nil, fmt.Errorf("send message to telegram user: %w", err)
	}

	return msg, nil
}

// sendBoard sends the current board in the user's language.
func (that *Interaction) sendBoard(ctx context.Context, bot *telegramBot.Bot, update *models.Update) (*models.Message, error) {
	snapshot := that.board.Snapshot()
	if !snapshot.Ready() {
		return that.sendLocaledMessage(ctx, bot, update, "noPricesMessage")
	}

	msg, err := bot.SendMessage(ctx, &telegramBot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      that.renderer.Text(userLanguage(update), snapshot),
		ParseMode: models.ParseModeHTML,
	})
	if err != nil {
		return nil, fmt.Errorf("send board to telegram user: %w", err)
	}

	return msg, nil
}
