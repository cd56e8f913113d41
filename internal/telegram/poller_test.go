package telegram

import (
	"context"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/dispatch"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/intent"
	"github.com/sevast2006-dotcom/volunteer-telegram-bot/internal/telegram/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

type fakeBot struct {
	updates chan tgbotapi.Update

	mu        sync.Mutex
	sent      []tgbotapi.Chattable
	callbacks []string
	stopped   bool
}

func newFakeBot() *fakeBot {
	return &fakeBot{updates: make(chan tgbotapi.Update, 16)}
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, c)
	return tgbotapi.Message{}, nil
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if cb, ok := c.(tgbotapi.CallbackConfig); ok {
		b.callbacks = append(b.callbacks, cb.CallbackQueryID)
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (b *fakeBot) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return b.updates
}

func (b *fakeBot) StopReceivingUpdates() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopped = true
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func textUpdate(userID int64, text string) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID, FirstName: "U"},
		Chat: &tgbotapi.Chat{ID: userID},
		Text: text,
	}}
}

func TestPoller_DispatchesAndReplies(t *testing.T) {
	bot := newFakeBot()
	d := mocks.NewMockDispatcher(t)
	p := NewPoller(bot, d, NewRenderer(), Options{Workers: 2}, newTestLogger(t))

	d.EXPECT().Handle(mock.Anything, mock.MatchedBy(func(a intent.Action) bool {
		return a.Identity == 42 && a.Intent == intent.ListEvents{}
	})).Return(dispatch.Result{Kind: dispatch.KindEventList})

	bot.updates <- textUpdate(42, "/events")
	bot.updates <- tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb1",
		From:    &tgbotapi.User{ID: 42},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 42}},
		Data:    "events",
	}}
	close(bot.updates)

	require.NoError(t, p.Run(context.Background()))

	bot.mu.Lock()
	defer bot.mu.Unlock()
	assert.Len(t, bot.sent, 2)
	assert.Equal(t, []string{"cb1"}, bot.callbacks)
}

func TestPoller_PreservesPerUserOrder(t *testing.T) {
	bot := newFakeBot()
	d := mocks.NewMockDispatcher(t)
	p := NewPoller(bot, d, NewRenderer(), Options{Workers: 4}, newTestLogger(t))

	var mu sync.Mutex
	var seen []string
	d.EXPECT().Handle(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, a intent.Action) dispatch.Result {
			if txt, ok := a.Intent.(intent.Text); ok && a.Identity == 7 {
				time.Sleep(5 * time.Millisecond)
				mu.Lock()
				seen = append(seen, txt.Body)
				mu.Unlock()
			}
			return dispatch.Result{Kind: dispatch.KindUnknown}
		})

	for _, body := range []string{"one", "two", "three"} {
		bot.updates <- textUpdate(7, body)
		bot.updates <- textUpdate(8, body)
	}
	close(bot.updates)

	require.NoError(t, p.Run(context.Background()))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"one", "two", "three"}, seen)
}

func TestPoller_StopsOnContextCancel(t *testing.T) {
	bot := newFakeBot()
	d := mocks.NewMockDispatcher(t)
	p := NewPoller(bot, d, NewRenderer(), Options{}, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on context cancel")
	}

	bot.mu.Lock()
	defer bot.mu.Unlock()
	assert.True(t, bot.stopped)
}

func TestPoller_SkipsUnusableUpdates(t *testing.T) {
	bot := newFakeBot()
	d := mocks.NewMockDispatcher(t)
	p := NewPoller(bot, d, NewRenderer(), Options{Workers: 1}, newTestLogger(t))

	bot.updates <- tgbotapi.Update{}
	close(bot.updates)

	require.NoError(t, p.Run(context.Background()))
	assert.Empty(t, bot.sent)
}
