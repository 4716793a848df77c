package telegram

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler remembers the message ids it saw per user
type recordingHandler struct {
	mu   sync.Mutex
	seen map[int64][]int
}

func (h *recordingHandler) HandleUpdate(_ context.Context, update *tgbotapi.Update) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.seen[update.Message.From.ID] = append(h.seen[update.Message.From.ID], update.Message.MessageID)
}

func messageFrom(userID int64, messageID int) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		MessageID: messageID,
		From:      &tgbotapi.User{ID: userID},
		Chat:      &tgbotapi.Chat{ID: userID},
	}}
}

func TestDispatcher_KeepsPerUserOrder(t *testing.T) {
	// 1. Setup
	handler := &recordingHandler{seen: make(map[int64][]int)}
	d := newDispatcher(4, handler, zerolog.Nop())
	d.start()

	// 2. Interleave updates of several users
	users := []int64{101, 202, 303, 404, 505}
	for i := 0; i < 200; i++ {
		d.dispatch(messageFrom(users[i%len(users)], i))
	}
	d.stop()

	// 3. Verify every user saw their updates in order
	for _, u := range users {
		ids := handler.seen[u]
		require.Len(t, ids, 40)
		for i := 1; i < len(ids); i++ {
			assert.Less(t, ids[i-1], ids[i], "user %d out of order", u)
		}
	}
}

func TestDispatcher_StopIsIdempotent(t *testing.T) {
	d := newDispatcher(0, &recordingHandler{seen: make(map[int64][]int)}, zerolog.Nop())
	d.start()
	assert.Len(t, d.shards, 1)
	d.stop()
	assert.NotPanics(t, d.stop)
}

func TestShardFor(t *testing.T) {
	assert.Equal(t, shardFor(12345, 8), shardFor(12345, 8))
	assert.Equal(t, 0, shardFor(0, 3))
	assert.Equal(t, 2, shardFor(-5, 3))
}

func TestSenderID(t *testing.T) {
	assert.Equal(t, int64(7), senderID(messageFrom(7, 1)))
	assert.Equal(t, int64(9), senderID(tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{From: &tgbotapi.User{ID: 9}}}))
	assert.Equal(t, int64(0), senderID(tgbotapi.Update{}))
}

// fakeParser returns a canned update or error
type fakeParser struct {
	update *tgbotapi.Update
	err    error
}

func (f fakeParser) HandleUpdate(*http.Request) (*tgbotapi.Update, error) {
	return f.update, f.err
}

func TestWebhookHandler(t *testing.T) {
	tests := []struct {
		name       string
		parser     fakeParser
		wantStatus int
		wantSeen   int
	}{
		{"valid update is dispatched", fakeParser{update: ptr(messageFrom(1, 10))}, http.StatusOK, 1},
		{"malformed payload", fakeParser{err: errors.New("bad json")}, http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := &recordingHandler{seen: make(map[int64][]int)}
			d := newDispatcher(1, handler, zerolog.Nop())
			d.start()

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/webhook/token", strings.NewReader("{}"))
			rec := httptest.NewRecorder()

			err := webhookHandler(tt.parser, d, zerolog.Nop())(e.NewContext(req, rec))
			d.stop()

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Len(t, handler.seen[1], tt.wantSeen)
		})
	}
}

func ptr[T any](v T) *T { return &v }
