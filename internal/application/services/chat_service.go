package services

import (
	"context"
	"strings"
	"time"

	"github.com/medbridge360/backend/internal/domain/entities"
	"github.com/medbridge360/backend/internal/domain/providers"
	"github.com/medbridge360/backend/internal/infrastructure/observability"
)

const (
	// historyWindow caps how much conversation is forwarded upstream
	historyWindow = 10

	systemPrompt = "You are a helpful medical tourism assistant for MedBridge360, " +
		"a platform that helps patients compare hospitals in India, Thailand, " +
		"Singapore and Turkey for affordable treatment. Answer questions about " +
		"treatment costs, hospital quality, travel logistics and recovery " +
		"timelines. Be concise and factual. Never give a diagnosis; direct " +
		"clinical questions to a doctor."

	sourceCompletion = "completion"
	sourceFallback   = "fallback"
)

// fallbackRule pairs trigger keywords with a canned reply. Rules are
// checked in priority order against the last user message; the first hit
// wins.
type fallbackRule struct {
	name     string
	keywords []string
	reply    string
}

// fallbackRules hold hand-authored guidance with indicative figures from
// the platform's own catalog, so the assistant stays useful when the
// completion service is down or unconfigured.
var fallbackRules = []fallbackRule{
	{
		name:     "budget",
		keywords: []string{"budget", "cost", "price", "cheap", "afford", "expensive"},
		reply: "Treatment abroad typically costs **60-80% less** than in the US or UK. " +
			"For example, a cardiac bypass that costs $120,000+ in the US runs " +
			"**$7,000-$10,000** at top hospitals in India. Use the search filters to " +
			"set your treatment and compare total costs side by side.",
	},
	{
		name:     "cardiac",
		keywords: []string{"cardiac", "heart", "bypass", "valve"},
		reply: "For cardiac care, look at hospitals with a **Cardiology** specialization " +
			"and a rating above 4.5. Bypass surgery packages start around **$7,000** " +
			"including surgery, medication and a 10-day hospital stay.",
	},
	{
		name:     "cancer",
		keywords: []string{"cancer", "oncology", "tumor", "tumour", "chemo"},
		reply: "Several listed hospitals run dedicated **Oncology** centers. Cancer " +
			"treatment plans vary widely, so request a remote consultation first; " +
			"typical chemotherapy cycles abroad cost **$2,500-$5,000** versus " +
			"$15,000+ in the US.",
	},
	{
		name:     "orthopedic",
		keywords: []string{"orthopedic", "orthopaedic", "knee", "hip", "joint", "replacement"},
		reply: "Knee and hip replacements are among the most common procedures for " +
			"international patients. Expect **$6,000-$9,000** all-inclusive with a " +
			"**14-day stay**, against $40,000+ at home. Filter by the Orthopedics " +
			"specialization to compare packages.",
	},
	{
		name:     "timeline",
		keywords: []string{"timeline", "duration", "how long", "days", "stay", "recovery"},
		reply: "Most treatment trips follow the same shape: arrival on **day 1**, " +
			"consultation on **day 2**, procedure on **day 3**, then in-patient " +
			"recovery until departure. Generate an itinerary from any hospital page " +
			"to see the day-by-day plan for your dates.",
	},
	{
		name:     "greeting",
		keywords: []string{"hello", "hi", "hey", "good morning", "good evening"},
		reply: "Hello! I can help you compare hospitals for treatment abroad. Ask me " +
			"about **costs**, **specializations**, or **trip timelines**, or use the " +
			"search to find hospitals for a specific treatment.",
	},
}

const defaultFallbackReply = "I can help with treatment costs, hospital quality and trip planning. " +
	"Try asking about a specific treatment, like **\"How much is a knee replacement?\"**, " +
	"or use the search filters to browse hospitals by country and specialization."

// ChatService answers patient questions. It forwards the trailing
// conversation window to the completion provider at most once per
// message; on any failure it answers from the local rule table instead.
// Callers always get a non-empty reply.
type ChatService struct {
	completion providers.CompletionProvider
	metrics    *observability.Metrics
	timeout    time.Duration
}

// NewChatService creates a new chat service. A nil provider disables the
// upstream path entirely; every reply then comes from the rule table.
func NewChatService(completion providers.CompletionProvider, metrics *observability.Metrics, timeout time.Duration) *ChatService {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ChatService{
		completion: completion,
		metrics:    metrics,
		timeout:    timeout,
	}
}

// Respond produces the assistant's reply to the conversation. The
// upstream completion is attempted once, with no retry; failures are
// absorbed into a local fallback and never surfaced to the caller.
func (s *ChatService) Respond(ctx context.Context, conversation *entities.Conversation) *entities.ChatReply {
	logger := observability.LoggerFromContext(ctx)

	if s.completion != nil {
		callCtx, cancel := context.WithTimeout(ctx, s.timeout)
		text, err := s.completion.Complete(callCtx, systemPrompt, conversation.Tail(historyWindow))
		cancel()
		if err == nil && text != "" {
			return reply(text, sourceCompletion)
		}
		logger.Warn().Err(err).Msg("completion unavailable, answering locally")
	}

	text, rule := fallbackReply(conversation.LastUserMessage())
	if s.metrics != nil {
		observability.RecordChatFallback(ctx, s.metrics, rule)
	}
	return reply(text, sourceFallback)
}

func reply(text, source string) *entities.ChatReply {
	return &entities.ChatReply{
		Text:     text,
		Segments: entities.ParseSegments(text),
		Source:   source,
	}
}

// fallbackReply picks the first rule whose keywords appear in the
// message, falling through to the generic reply.
func fallbackReply(message string) (string, string) {
	m := strings.ToLower(message)
	for _, rule := range fallbackRules {
		for _, kw := range rule.keywords {
			if strings.Contains(m, kw) {
				return rule.reply, rule.name
			}
		}
	}
	return defaultFallbackReply, "default"
}
