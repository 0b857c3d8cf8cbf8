package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medbridge360/backend/internal/api/handlers"
	"github.com/medbridge360/backend/internal/application/services"
	"github.com/medbridge360/backend/internal/domain/entities"
)

func newChatHandler() *handlers.ChatHandler {
	// No completion provider wired: replies come from the local responder.
	return handlers.NewChatHandler(services.NewChatService(nil, nil, time.Second))
}

func TestChatHandler_RepliesWithSegments(t *testing.T) {
	handler := newChatHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"how much does a knee replacement cost?"}`))
	rec := httptest.NewRecorder()
	handler.Chat(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var reply entities.ChatReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.Equal(t, "fallback", reply.Source)
	assert.NotEmpty(t, reply.Text)
	assert.NotEmpty(t, reply.Segments)
	assert.NotContains(t, segmentTexts(reply.Segments), "**")
}

func segmentTexts(segments []entities.ChatSegment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Text)
	}
	return b.String()
}

func TestChatHandler_RequiresMessage(t *testing.T) {
	handler := newChatHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"history":[]}`))
	rec := httptest.NewRecorder()
	handler.Chat(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatHandler_RejectsOversizedMessage(t *testing.T) {
	handler := newChatHandler()

	huge := strings.Repeat("a", 3000)
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message":"`+huge+`"}`))
	rec := httptest.NewRecorder()
	handler.Chat(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
