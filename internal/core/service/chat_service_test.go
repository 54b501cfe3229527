package service

import (
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/soulofsrilanka/travel-api/internal/core/domain"
)

func TestChatService_Respond_FirstRuleWins(t *testing.T) {
	svc := NewChatService(zerolog.Nop())

	// "sigiriya" sits earlier in the table than "surfing"; table order
	// decides, not position in the input.
	reply := svc.Respond("I want to go surfing and also see Sigiriya")
	if !strings.Contains(reply, "Lion Rock") {
		t.Fatalf("expected the sigiriya reply, got %q", reply)
	}
}

func TestChatService_Respond_CaseAndWhitespace(t *testing.T) {
	svc := NewChatService(zerolog.Nop())

	exact := svc.Respond("sigiriya")
	for _, input := range []string{"SIGIRIYA", "  Sigiriya  ", "tell me about SiGiRiYa please"} {
		if got := svc.Respond(input); got != exact {
			t.Fatalf("Respond(%q) = %q, want %q", input, got, exact)
		}
	}
}

func TestChatService_Respond_SubstringMatch(t *testing.T) {
	svc := NewChatService(zerolog.Nop())

	// Keywords match as substrings, so "kitesurfing" still hits the
	// earlier "surfing" rule.
	reply := svc.Respond("kitesurfing")
	if !strings.Contains(reply, "Hikkaduwa") {
		t.Fatalf("expected the surfing reply for embedded keyword, got %q", reply)
	}
}

func TestChatService_Respond_DefaultEchoesInput(t *testing.T) {
	svc := NewChatService(zerolog.Nop())

	reply := svc.Respond("  Quantum Chromodynamics  ")
	if !strings.Contains(reply, `You said: "quantum chromodynamics"`) {
		t.Fatalf("default reply should echo the normalized input, got %q", reply)
	}
	if strings.Contains(reply, "{input}") {
		t.Fatalf("placeholder left unexpanded: %q", reply)
	}
}

func TestChatService_Converse_SessionTranscript(t *testing.T) {
	svc := NewChatService(zerolog.Nop())

	sessionID, first := svc.Converse("", "kandy")
	if sessionID == "" {
		t.Fatalf("expected a generated session id")
	}
	sameID, second := svc.Converse(sessionID, "ella")
	if sameID != sessionID {
		t.Fatalf("session id changed: %q -> %q", sessionID, sameID)
	}

	transcript := svc.Transcript(sessionID)
	want := []domain.ChatMessage{
		{Sender: domain.ChatSenderBot, Text: welcomeChatReply},
		{Sender: domain.ChatSenderUser, Text: "kandy"},
		{Sender: domain.ChatSenderBot, Text: first},
		{Sender: domain.ChatSenderUser, Text: "ella"},
		{Sender: domain.ChatSenderBot, Text: second},
	}
	if len(transcript) != len(want) {
		t.Fatalf("transcript length = %d, want %d", len(transcript), len(want))
	}
	for i := range want {
		if transcript[i] != want[i] {
			t.Fatalf("transcript[%d] = %+v, want %+v", i, transcript[i], want[i])
		}
	}
}

func TestChatService_Converse_DistinctSessions(t *testing.T) {
	svc := NewChatService(zerolog.Nop())

	a, _ := svc.Converse("", "kandy")
	b, _ := svc.Converse("", "galle")
	if a == b {
		t.Fatalf("independent conversations shared a session id")
	}
	if got := len(svc.Transcript(a)); got != 3 {
		t.Fatalf("session %s transcript length = %d, want 3", a, got)
	}
}

func TestChatService_Transcript_Unknown(t *testing.T) {
	svc := NewChatService(zerolog.Nop())
	if got := svc.Transcript("no-such-session"); got != nil {
		t.Fatalf("expected nil transcript, got %v", got)
	}
}
