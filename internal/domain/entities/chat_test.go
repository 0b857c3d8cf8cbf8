package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSegments(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []ChatSegment
	}{
		{
			name: "plain text",
			text: "no markup here",
			want: []ChatSegment{{Text: "no markup here"}},
		},
		{
			name: "single bold run",
			text: "costs **60-80% less** abroad",
			want: []ChatSegment{
				{Text: "costs "},
				{Text: "60-80% less", Bold: true},
				{Text: " abroad"},
			},
		},
		{
			name: "leading and trailing bold",
			text: "**Hello** and **goodbye**",
			want: []ChatSegment{
				{Text: "Hello", Bold: true},
				{Text: " and "},
				{Text: "goodbye", Bold: true},
			},
		},
		{
			name: "unterminated marker stays literal",
			text: "price is **unknown",
			want: []ChatSegment{{Text: "price is **unknown"}},
		},
		{
			name: "empty bold pair is dropped",
			text: "a****b",
			want: []ChatSegment{{Text: "a"}, {Text: "b"}},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSegments(tt.text))
		})
	}
}

func TestConversationLastUserMessage(t *testing.T) {
	conv := Conversation{Messages: []ChatMessage{
		{Role: RoleUser, Content: "first"},
		{Role: RoleAssistant, Content: "reply"},
		{Role: RoleUser, Content: "second"},
		{Role: RoleAssistant, Content: "another reply"},
	}}
	assert.Equal(t, "second", conv.LastUserMessage())

	empty := Conversation{}
	assert.Equal(t, "", empty.LastUserMessage())
}

func TestConversationTail(t *testing.T) {
	conv := Conversation{}
	for i := 0; i < 12; i++ {
		conv.Messages = append(conv.Messages, ChatMessage{Role: RoleUser, Content: "m"})
	}
	assert.Len(t, conv.Tail(10), 10)
	assert.Len(t, conv.Tail(20), 12)
}
