package telegram

import (
	"context"

	telegramBot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

func (that *Interaction) handlerStart(ctx context.Context, bot *telegramBot.Bot, update *models.Update) {
	log := that.logger.With("method", "handlerStart", "user_id", userID(update), "language", userLanguage(update))

	if _, err := that.sendLocaledMessage(ctx, bot, update, "startWelcomeMessage"); err != nil {
		log.Error("failed to send message", "error", err)
		return
	}
}

func (that *Interaction) handlerHelp(ctx context.Context, bot *telegramBot.Bot, update *models.Update) {
	log := that.logger.With("method", "handlerHelp", "user_id", userID(update))

	if _, err := that.sendLocaledMessage(ctx, bot, update, "helpMessage"); err != nil {
		log.Error("error sending message", "error", err)
		return
	}
}

func (that *Interaction) handlerPrice(ctx context.Context, bot *telegramBot.Bot, update *models.Update) {
	log := that.logger.With("method", "handlerPrice", "user_id", userID(update))

	if _, err := that.sendBoard(ctx, bot, update); err != nil {
		log.Error("error sending message", "error", err)
		return
	}
}

func (that *Interaction) handlerRefresh(ctx context.Context, bot *telegramBot.Bot, update *models.Update) {
	log := that.logger.With("method", "handlerRefresh", "user_id", userID(update))

	if !that.cycle.RunCycle(context.WithoutCancel(ctx)) {
		if _, err := that.sendLocaledMessage(ctx, bot, update, "busyMessage"); err != nil {
			log.Error("error sending message", "error", err)
		}
		return
	}

	if _, err := that.sendBoard(ctx, bot, update); err != nil {
		log.Error("error sending message", "error", err)
		return
	}
}
