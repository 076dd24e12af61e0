// Package chat описывает границу с чат-платформой. Ядро экономики не знает,
// какой мессенджер за ней стоит: ему нужны только отправка/редактирование
// сообщений, реакции и преобразование упоминания в id юзера.
package chat

import "context"

// MessageRef однозначно указывает на сообщение в канале.
type MessageRef struct {
	ChannelID int64
	MessageID int64
}

type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// Embed - rich-каркас сообщения. Рендеринг на стороне платформы.
type Embed struct {
	Title       string
	Description string
	Colour      int
	ImageURL    string
	Fields      []EmbedField
}

type Message struct {
	Content string
	Embed   *Embed
}

// Reaction - событие реакции юзера на сообщение.
type Reaction struct {
	Message MessageRef
	UserID  int64
	Emoji   string
}

// Incoming - входящее командное сообщение.
type Incoming struct {
	Message  MessageRef
	AuthorID int64
	Content  string
}

//go:generate mockgen -source=gateway.go -destination=mocks/mocks.go -package=mocks

// Gateway - минимальная поверхность чат-платформы, которую потребляет ядро.
type Gateway interface {
	Send(ctx context.Context, channelID int64, msg Message) (MessageRef, error)
	Edit(ctx context.Context, ref MessageRef, msg Message) error

	AddReaction(ctx context.Context, ref MessageRef, emoji string) error
	ClearReactions(ctx context.Context, ref MessageRef) error
	// SubscribeReactions возвращает канал событий реакций на сообщение ref
	// и функцию отписки. Канал закрывается после отписки.
	SubscribeReactions(ref MessageRef) (<-chan Reaction, func())

	// ResolveMention преобразует человекочитаемое упоминание в id юзера.
	ResolveMention(ctx context.Context, mention string) (int64, error)

	// Incoming - поток входящих командных сообщений. Канал закрывается при
	// разрыве соединения с платформой.
	Incoming() <-chan Incoming
}
