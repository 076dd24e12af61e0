// Package bot - тонкий командный слой: разбирает входящее сообщение,
// вызывает сервисы и рендерит результат обратно в чат. Вся доменная логика
// живет ниже, здесь только склейка и граница восстановления ошибок.
package bot

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/funketh/shinobu-bot/internal/chat"
	"github.com/funketh/shinobu-bot/internal/chat/react"
	"github.com/funketh/shinobu-bot/internal/domain"
	"github.com/funketh/shinobu-bot/internal/service"
)

const (
	colourGreen = 0x2ECC71
	colourRed   = 0xE74C3C
	colourGold  = 0xF1C40F
)

type Config struct {
	Currency       string
	ConfirmTimeout time.Duration
}

type Bot struct {
	gw       chat.Gateway
	react    *react.Engine
	svs      *service.AppServices
	l        *logrus.Entry
	currency string
	timeout  time.Duration
}

func New(gw chat.Gateway, engine *react.Engine, svs *service.AppServices, l *logrus.Logger, cfg Config) *Bot {
	return &Bot{
		gw:       gw,
		react:    engine,
		svs:      svs,
		l:        l.WithField("component", "bot"),
		currency: cfg.Currency,
		timeout:  cfg.ConfirmTimeout,
	}
}

// Run обрабатывает входящие команды до отмены контекста или закрытия потока.
// Каждая команда обрабатывается в своей горутине: раунд подтверждения одного
// юзера не должен задерживать команды остальных.
func (b *Bot) Run(ctx context.Context) {
	b.l.Info("Starting command loop")
	for {
		select {
		case <-ctx.Done():
			b.l.Info("Got stop signal, exiting...")
			return
		case in, ok := <-b.gw.Incoming():
			if !ok {
				b.l.Warn("Incoming stream closed")
				return
			}
			go b.HandleCommand(ctx, in)
		}
	}
}

// HandleCommand обрабатывает одну команду. Любая доменная ошибка
// восстанавливается здесь и рендерится юзеру; процесс не падает никогда.
func (b *Bot) HandleCommand(ctx context.Context, in chat.Incoming) {
	args := strings.Fields(in.Content)
	if len(args) == 0 {
		return
	}

	if err := b.svs.UserService.EnsureUser(ctx, in.AuthorID); err != nil {
		b.reportError(ctx, in, err)
		return
	}

	if err := b.dispatch(ctx, in, args[0], args[1:]); err != nil {
		b.reportError(ctx, in, err)
	}
}

func (b *Bot) dispatch(ctx context.Context, in chat.Incoming, cmd string, args []string) error {
	switch cmd {
	case "balance", "bl":
		return b.balanceCmd(ctx, in, args)
	case "withdraw":
		return b.withdrawCmd(ctx, in)
	case "pack", "p":
		return b.packCmd(ctx, in, args)
	case "waifu", "w":
		return b.waifuCmd(ctx, in, args)
	case "transaction", "t":
		return b.transactionCmd(ctx, in, args)
	default:
		return nil
	}
}

// reportError рендерит доменные ошибки как есть, остальное логирует с полным
// контекстом и отвечает обезличенно, не раскрывая внутренностей.
func (b *Bot) reportError(ctx context.Context, in chat.Incoming, err error) {
	var notEnough *domain.NotEnoughMoneyError
	var invalidChange *domain.InvalidChangeError

	var msg string
	switch {
	case errors.As(err, &notEnough):
		msg = "You don't have enough " + b.currency + "!"
	case errors.As(err, &invalidChange):
		msg = strings.ToUpper(invalidChange.Reason[:1]) + invalidChange.Reason[1:] + "!"
	case errors.Is(err, domain.ErrUnknownPackName):
		msg = "There is no pack with that name!"
	case errors.Is(err, domain.ErrEmptyPack):
		msg = "This pack has no characters to give out right now. Your purchase was cancelled."
	case errors.Is(err, domain.ErrOwnershipConflict):
		msg = "You can't give someone a waifu they already own!"
	case errors.Is(err, domain.ErrNoMatchingItem):
		msg = "You don't own a waifu matching that search!"
	case errors.Is(err, domain.ErrNotUpgradable):
		msg = "This rarity is not upgradable!"
	case errors.Is(err, domain.ErrInTransaction):
		msg = "You can't do this while you're in a transaction!"
	case errors.Is(err, domain.ErrNotInTransaction):
		msg = "You can only do this while you're in a transaction!"
	case errors.Is(err, domain.ErrWithdrawalNotReady):
		msg = "You already collected your income, come back later!"
	default:
		b.l.WithError(err).
			WithFields(logrus.Fields{"userID": in.AuthorID, "content": in.Content}).
			Error("command failed")
		msg = "Something went wrong, try again later."
	}

	b.error(ctx, in, msg)
}

func (b *Bot) inform(ctx context.Context, in chat.Incoming, description string) {
	b.sendEmbed(ctx, in, &chat.Embed{Colour: colourGreen, Description: description})
}

func (b *Bot) error(ctx context.Context, in chat.Incoming, description string) {
	b.sendEmbed(ctx, in, &chat.Embed{Colour: colourRed, Description: description})
}

func (b *Bot) sendEmbed(ctx context.Context, in chat.Incoming, embed *chat.Embed) {
	if _, err := b.gw.Send(ctx, in.Message.ChannelID, chat.Message{Embed: embed}); err != nil {
		b.l.WithError(err).Warn("sending reply")
	}
}

// waifuEmbed рендерит карточку вайфы в цвете ее редкости.
func waifuEmbed(w *domain.Waifu) *chat.Embed {
	embed := &chat.Embed{
		Colour:      w.Rarity.Colour,
		Title:       w.Character.Name + " [" + w.Character.Series + "]",
		Description: "**" + w.Rarity.Name + "**",
	}
	if w.Character.ImageURL != nil {
		embed.ImageURL = *w.Character.ImageURL
	}
	return embed
}
