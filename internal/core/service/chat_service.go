package service

import (
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/soulofsrilanka/travel-api/internal/api/metrics"
	"github.com/soulofsrilanka/travel-api/internal/core/domain"
)

const (
	sessionTTL     = 30 * time.Minute
	sessionCleanup = 10 * time.Minute
)

// ChatService is the rule-based tour assistant. Responding is a pure scan
// over the ordered keyword table; transcripts are kept per session in an
// expiring in-memory cache and are never persisted.
type ChatService struct {
	rules    []chatRule
	sessions *gocache.Cache
	log      zerolog.Logger
}

func NewChatService(log zerolog.Logger) *ChatService {
	return &ChatService{
		rules:    chatRules,
		sessions: gocache.New(sessionTTL, sessionCleanup),
		log:      log,
	}
}

// Respond maps free-text input to a canned reply. The input is lowercased
// and trimmed, then matched against the rule table in order; the first rule
// whose keyword is a substring of the input wins even when a later keyword
// would also match. With no match, the default reply echoes the input back.
func (s *ChatService) Respond(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))

	for _, rule := range s.rules {
		if strings.Contains(normalized, rule.Keyword) {
			metrics.ChatRepliesTotal.WithLabelValues("matched").Inc()
			return rule.Reply
		}
	}

	metrics.ChatRepliesTotal.WithLabelValues("fallback").Inc()
	return strings.ReplaceAll(defaultChatReply, "{input}", normalized)
}

// Converse answers input and appends both turns to the session transcript.
// An empty sessionID starts a new conversation seeded with the welcome
// message.
func (s *ChatService) Converse(sessionID, input string) (string, string) {
	transcript := []domain.ChatMessage{{Sender: domain.ChatSenderBot, Text: welcomeChatReply}}

	if sessionID == "" {
		sessionID = uuid.NewString()
		s.log.Debug().Str("session_id", sessionID).Msg("chat session started")
	} else if cached, ok := s.sessions.Get(sessionID); ok {
		transcript = cached.([]domain.ChatMessage)
	}

	reply := s.Respond(input)
	transcript = append(transcript,
		domain.ChatMessage{Sender: domain.ChatSenderUser, Text: input},
		domain.ChatMessage{Sender: domain.ChatSenderBot, Text: reply},
	)
	s.sessions.Set(sessionID, transcript, gocache.DefaultExpiration)

	return sessionID, reply
}

// Transcript returns a copy of the session history, or nil for unknown or
// expired sessions.
func (s *ChatService) Transcript(sessionID string) []domain.ChatMessage {
	cached, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil
	}
	transcript := cached.([]domain.ChatMessage)
	out := make([]domain.ChatMessage, len(transcript))
	copy(out, transcript)
	return out
}
