package entities

import (
	"strings"
)

// ChatRole is the author of a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry of a conversation history.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Conversation is the caller-owned, session-scoped message history
// threaded through each chat invocation.
type Conversation struct {
	Messages []ChatMessage `json:"messages"`
}

// LastUserMessage returns the content of the most recent user message,
// or the empty string when there is none.
func (c *Conversation) LastUserMessage() string {
	for i := len(c.Messages) - 1; i >= 0; i-- {
		if c.Messages[i].Role == RoleUser {
			return c.Messages[i].Content
		}
	}
	return ""
}

// Tail returns the most recent n messages.
func (c *Conversation) Tail(n int) []ChatMessage {
	if len(c.Messages) <= n {
		return c.Messages
	}
	return c.Messages[len(c.Messages)-n:]
}

// ChatSegment is one inline run of reply text. Bold marks emphasis; the
// client renders segments structurally instead of interpreting markup.
type ChatSegment struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// ChatReply is the responder's answer: the raw text plus its parsed
// segment form.
type ChatReply struct {
	Text     string        `json:"text"`
	Segments []ChatSegment `json:"segments"`
	Source   string        `json:"source"`
}

// ParseSegments splits text into plain and bold runs. The only inline
// token recognized is the closed **...** pair; an unterminated marker is
// kept as literal text.
func ParseSegments(text string) []ChatSegment {
	var segments []ChatSegment
	rest := text
	for rest != "" {
		open := strings.Index(rest, "**")
		if open < 0 {
			segments = append(segments, ChatSegment{Text: rest})
			break
		}
		close := strings.Index(rest[open+2:], "**")
		if close < 0 {
			segments = append(segments, ChatSegment{Text: rest})
			break
		}
		if open > 0 {
			segments = append(segments, ChatSegment{Text: rest[:open]})
		}
		bold := rest[open+2 : open+2+close]
		if bold != "" {
			segments = append(segments, ChatSegment{Text: bold, Bold: true})
		}
		rest = rest[open+2+close+2:]
	}
	return segments
}
