package domain

const (
	ChatSenderUser = "user"
	ChatSenderBot  = "bot"
)

// ChatMessage is a single turn in an assistant conversation. Transcripts are
// ephemeral: they live in an expiring in-memory session store and are never
// persisted.
type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}
