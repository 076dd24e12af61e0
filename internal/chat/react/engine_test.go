package react

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/funketh/shinobu-bot/internal/chat"
)

// fakeGateway - ручной двойник шлюза: реакции подаются в тест через канал,
// вызовы AddReaction/ClearReactions записываются для проверки.
type fakeGateway struct {
	mu        sync.Mutex
	events    chan chat.Reaction
	added     []string
	cleared   int
	subbed    int
	unsubbed  int
	clearDone chan struct{}
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		events:    make(chan chat.Reaction, 16),
		clearDone: make(chan struct{}, 1),
	}
}

func (g *fakeGateway) Send(_ context.Context, _ int64, _ chat.Message) (chat.MessageRef, error) {
	return chat.MessageRef{}, nil
}

func (g *fakeGateway) Edit(_ context.Context, _ chat.MessageRef, _ chat.Message) error {
	return nil
}

func (g *fakeGateway) AddReaction(_ context.Context, _ chat.MessageRef, emoji string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.added = append(g.added, emoji)
	return nil
}

func (g *fakeGateway) ClearReactions(_ context.Context, _ chat.MessageRef) error {
	g.mu.Lock()
	g.cleared++
	g.mu.Unlock()
	select {
	case g.clearDone <- struct{}{}:
	default:
	}
	return nil
}

func (g *fakeGateway) SubscribeReactions(_ chat.MessageRef) (<-chan chat.Reaction, func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.subbed++
	return g.events, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.unsubbed++
	}
}

func (g *fakeGateway) ResolveMention(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func (g *fakeGateway) Incoming() <-chan chat.Incoming {
	return nil
}

func (g *fakeGateway) react(userID int64, emoji string) {
	g.events <- chat.Reaction{UserID: userID, Emoji: emoji}
}

type EngineTestSuite struct {
	suite.Suite
	gw     *fakeGateway
	engine *Engine
	ref    chat.MessageRef
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.gw = newFakeGateway()

	l := logrus.New()
	l.SetOutput(io.Discard)
	s.engine = New(s.gw, l)

	s.ref = chat.MessageRef{ChannelID: 1, MessageID: 100}
}

func (s *EngineTestSuite) TestAwaitFirst() {
	go s.gw.react(5, EmojiYes)

	r, err := s.engine.AwaitFirst(s.T().Context(), s.ref, []string{EmojiYes, EmojiNo}, []int64{5}, time.Second)
	s.Require().NoError(err)
	s.Require().NotNil(r)
	s.Equal(EmojiYes, r.Emoji)
	s.Equal(int64(5), r.UserID)

	// Кнопки повешены и сняты, подписка закрыта.
	s.Equal([]string{EmojiYes, EmojiNo}, s.gw.added)
	s.Equal(1, s.gw.cleared)
	s.Equal(1, s.gw.unsubbed)
}

func (s *EngineTestSuite) TestAwaitFirstIgnoresForeignReactions() {
	go func() {
		// Чужой юзер и неподходящий эмодзи пропускаются молча.
		s.gw.react(99, EmojiYes)
		s.gw.react(5, "\U0001F600")
		s.gw.react(5, EmojiNo)
	}()

	r, err := s.engine.AwaitFirst(s.T().Context(), s.ref, []string{EmojiYes, EmojiNo}, []int64{5}, time.Second)
	s.Require().NoError(err)
	s.Require().NotNil(r)
	s.Equal(EmojiNo, r.Emoji)
}

func (s *EngineTestSuite) TestAwaitFirstTimeout() {
	r, err := s.engine.AwaitFirst(s.T().Context(), s.ref, []string{EmojiYes}, []int64{5}, 20*time.Millisecond)
	s.Require().NoError(err)
	s.Nil(r)
}

func (s *EngineTestSuite) TestConfirm() {
	go s.gw.react(5, EmojiYes)
	ok, err := s.engine.Confirm(s.T().Context(), s.ref, 5, time.Second)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *EngineTestSuite) TestConfirmTimeoutMeansRefusal() {
	ok, err := s.engine.Confirm(s.T().Context(), s.ref, 5, 20*time.Millisecond)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *EngineTestSuite) TestConfirmAllUnanimous() {
	go func() {
		s.gw.react(1, EmojiYes)
		// Повторное согласие учитывается один раз.
		s.gw.react(1, EmojiYes)
		s.gw.react(2, EmojiYes)
	}()

	ok, err := s.engine.ConfirmAll(s.T().Context(), s.ref, []int64{1, 2}, time.Second)
	s.Require().NoError(err)
	s.True(ok)
}

func (s *EngineTestSuite) TestConfirmAllSingleRejection() {
	go func() {
		s.gw.react(1, EmojiYes)
		s.gw.react(2, EmojiNo)
	}()

	ok, err := s.engine.ConfirmAll(s.T().Context(), s.ref, []int64{1, 2}, time.Second)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *EngineTestSuite) TestConfirmAllTimeout() {
	go s.gw.react(1, EmojiYes)

	// Второй подписант молчит - отказ по таймауту.
	ok, err := s.engine.ConfirmAll(s.T().Context(), s.ref, []int64{1, 2}, 50*time.Millisecond)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *EngineTestSuite) TestCleanupOnCancelledContext() {
	ctx, cancel := context.WithCancel(s.T().Context())
	cancel()

	err := s.engine.Each(ctx, s.ref, []string{EmojiYes}, []int64{5}, time.Second, func(Response) bool {
		return true
	})
	s.Require().ErrorIs(err, context.Canceled)

	// Снятие кнопок происходит даже при отмененном контексте.
	select {
	case <-s.gw.clearDone:
	case <-time.After(time.Second):
		s.Fail("reactions were not cleared")
	}
}
