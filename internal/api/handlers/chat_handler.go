package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/medbridge360/backend/internal/application/services"
	"github.com/medbridge360/backend/internal/domain/entities"
)

// maxChatMessageLength keeps a single message from blowing the upstream
// token budget.
const maxChatMessageLength = 2000

// ChatHandler handles assistant chat HTTP requests
type ChatHandler struct {
	chat *services.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *services.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type chatRequest struct {
	Message string                 `json:"message"`
	History []entities.ChatMessage `json:"history"`
}

// Chat handles POST /api/chat
//
// The client sends its message plus the visible conversation history.
// The reply always succeeds from the caller's point of view; upstream
// failures degrade to the local responder.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		respondWithError(w, http.StatusBadRequest, "message is required")
		return
	}
	if len(req.Message) > maxChatMessageLength {
		respondWithError(w, http.StatusBadRequest, "message is too long")
		return
	}

	conversation := &entities.Conversation{
		Messages: append(req.History, entities.ChatMessage{
			Role:    entities.RoleUser,
			Content: req.Message,
		}),
	}

	reply := h.chat.Respond(r.Context(), conversation)
	respondWithJSON(w, http.StatusOK, reply)
}
