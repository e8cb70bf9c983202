package chat

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"

	"titan-server/internal/domain/persona"
)

func testPersona() *persona.Persona {
	return &persona.Persona{
		PublicID:  "pers_test",
		Name:      "Ava",
		Archetype: "Fitness Coach",
		Bio:       "Helps people build sustainable habits.",
		Active:    true,
		Behavior: persona.Behavior{
			Tone:           "Warm",
			Style:          "Conversational",
			Vocabulary:     "Plain",
			Guidelines:     "Keep answers short",
			Responsiveness: 7,
		},
	}
}

func TestBuildSystemPromptIncludesIdentityAndBehavior(t *testing.T) {
	prompt := BuildSystemPrompt(testPersona())

	for _, want := range []string{"You are Ava", "Fitness Coach", "sustainable habits", "Tone: Warm", "Style: Conversational", "Vocabulary: Plain", "Instructions: Keep answers short"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if !strings.Contains(prompt, "Stay in character") {
		t.Fatalf("prompt missing character instruction:\n%s", prompt)
	}
}

func TestBuildSystemPromptFallsBackOnEmptyBehavior(t *testing.T) {
	p := &persona.Persona{PublicID: "pers_raw", Name: "Raw"}
	prompt := BuildSystemPrompt(p)

	if !strings.Contains(prompt, "Tone: "+persona.DefaultTone) {
		t.Fatalf("empty tone not defaulted:\n%s", prompt)
	}
	if !strings.Contains(prompt, "Instructions: "+persona.DefaultGuidelines) {
		t.Fatalf("empty guidelines not defaulted:\n%s", prompt)
	}
}

func TestBuildMessagesOrdering(t *testing.T) {
	history := []*Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RolePersona, Content: "hello there"},
	}

	msgs := BuildMessages(testPersona(), history, "how are you?")

	if len(msgs) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(msgs))
	}
	if msgs[0].Role != openai.ChatMessageRoleSystem {
		t.Fatalf("first message must be the system turn, got %s", msgs[0].Role)
	}
	if msgs[1].Role != openai.ChatMessageRoleUser || msgs[1].Content != "hi" {
		t.Fatalf("unexpected history turn: %+v", msgs[1])
	}
	if msgs[2].Role != openai.ChatMessageRoleAssistant || msgs[2].Content != "hello there" {
		t.Fatalf("persona history row must map to assistant: %+v", msgs[2])
	}
	if msgs[3].Role != openai.ChatMessageRoleUser || msgs[3].Content != "how are you?" {
		t.Fatalf("last message must be the new user turn: %+v", msgs[3])
	}
}

func TestBuildMessagesTruncatesToHistoryWindow(t *testing.T) {
	history := make([]*Message, HistoryWindow+5)
	for i := range history {
		history[i] = &Message{Role: RoleUser, Content: fmt.Sprintf("m%d", i)}
	}

	msgs := BuildMessages(testPersona(), history, "latest")

	// system + window + new message
	if len(msgs) != HistoryWindow+2 {
		t.Fatalf("expected %d messages, got %d", HistoryWindow+2, len(msgs))
	}
	// the oldest retained turn is the first inside the window
	if msgs[1].Content != fmt.Sprintf("m%d", 5) {
		t.Fatalf("window kept the wrong tail, first history turn is %q", msgs[1].Content)
	}
}
