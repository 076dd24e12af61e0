// Package react реализует примитив "дождаться реакции": на сообщение
// вешаются эмодзи-кнопки, после чего вызывающий поток приостанавливается до
// подходящей реакции или таймаута. Снятие кнопок гарантируется на любом пути
// выхода, включая ошибку и отмену контекста.
package react

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/funketh/shinobu-bot/internal/chat"
)

const (
	EmojiYes = "\U0001F44D" // 👍
	EmojiNo  = "\U0001F44E" // 👎
)

// Response - подошедшая реакция: кто и каким эмодзи ответил.
type Response struct {
	Emoji  string
	UserID int64
}

type Engine struct {
	gw chat.Gateway
	l  *logrus.Entry
}

func New(gw chat.Gateway, l *logrus.Logger) *Engine {
	return &Engine{
		gw: gw,
		l:  l.WithField("component", "react"),
	}
}

// Each вешает на сообщение ref эмодзи emojis и передает в fn каждую
// подходящую реакцию (эмодзи из emojis, юзер из users) до тех пор, пока fn
// возвращает true. Возвращает nil и при штатном завершении, и по таймауту:
// таймаут означает лишь конец последовательности. Каждый вызов начинает
// ожидание заново, продолжить прерванное нельзя.
func (e *Engine) Each(
	ctx context.Context,
	ref chat.MessageRef,
	emojis []string,
	users []int64,
	timeout time.Duration,
	fn func(Response) bool,
) error {
	events, unsubscribe := e.gw.SubscribeReactions(ref)
	defer unsubscribe()
	defer e.cleanup(ctx, ref)

	for _, emoji := range emojis {
		if err := e.gw.AddReaction(ctx, ref, emoji); err != nil {
			return errors.Wrap(err, "attaching reaction")
		}
	}

	candidates := make(map[string]struct{}, len(emojis))
	for _, emoji := range emojis {
		candidates[emoji] = struct{}{}
	}
	eligible := make(map[int64]struct{}, len(users))
	for _, id := range users {
		eligible[id] = struct{}{}
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck
		case <-timer.C:
			return nil
		case ev := <-events:
			if _, ok := candidates[ev.Emoji]; !ok {
				continue
			}
			if _, ok := eligible[ev.UserID]; !ok {
				continue
			}
			if !fn(Response{Emoji: ev.Emoji, UserID: ev.UserID}) {
				return nil
			}
		}
	}
}

// AwaitFirst возвращает первую подходящую реакцию или nil по таймауту.
func (e *Engine) AwaitFirst(
	ctx context.Context,
	ref chat.MessageRef,
	emojis []string,
	users []int64,
	timeout time.Duration,
) (*Response, error) {
	var first *Response
	err := e.Each(ctx, ref, emojis, users, timeout, func(r Response) bool {
		first = &r
		return false
	})
	if err != nil {
		return nil, err
	}
	return first, nil
}

// Confirm ждет от юзера 👍 или 👎. Таймаут считается отказом.
func (e *Engine) Confirm(
	ctx context.Context,
	ref chat.MessageRef,
	userID int64,
	timeout time.Duration,
) (bool, error) {
	r, err := e.AwaitFirst(ctx, ref, []string{EmojiYes, EmojiNo}, []int64{userID}, timeout)
	if err != nil {
		return false, err
	}
	return r != nil && r.Emoji == EmojiYes, nil
}

// ConfirmAll ждет единогласного 👍 от каждого из users. Единственное 👎 или
// истекший таймаут завершают ожидание отказом. Повторные 👍 одного юзера
// учитываются один раз.
func (e *Engine) ConfirmAll(
	ctx context.Context,
	ref chat.MessageRef,
	users []int64,
	timeout time.Duration,
) (bool, error) {
	remaining := make(map[int64]struct{}, len(users))
	for _, id := range users {
		remaining[id] = struct{}{}
	}

	rejected := false
	err := e.Each(ctx, ref, []string{EmojiYes, EmojiNo}, users, timeout, func(r Response) bool {
		if r.Emoji == EmojiNo {
			rejected = true
			return false
		}
		delete(remaining, r.UserID)
		return len(remaining) > 0
	})
	if err != nil {
		return false, err
	}
	return !rejected && len(remaining) == 0, nil
}

// cleanup снимает кнопки-реакции. Выполняется и при отмененном контексте:
// сообщение не должно остаться с висящими кнопками.
func (e *Engine) cleanup(ctx context.Context, ref chat.MessageRef) {
	if err := e.gw.ClearReactions(context.WithoutCancel(ctx), ref); err != nil {
		e.l.WithError(err).WithField("messageID", ref.MessageID).Warn("clearing reactions")
	}
}
