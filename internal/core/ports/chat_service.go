package ports

import "github.com/soulofsrilanka/travel-api/internal/core/domain"

// ChatService answers free-text assistant messages with canned replies.
type ChatService interface {
	// Respond maps one input to one reply. Pure and deterministic.
	Respond(input string) string

	// Converse records the exchange in the session transcript and returns the
	// session id (a fresh one when sessionID is empty) plus the reply.
	Converse(sessionID, input string) (string, string)

	// Transcript returns the messages exchanged so far in a session, or nil
	// when the session is unknown or expired.
	Transcript(sessionID string) []domain.ChatMessage
}
