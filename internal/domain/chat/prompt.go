package chat

import (
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"titan-server/internal/domain/persona"
)

// HistoryWindow bounds how many past messages are replayed into the prompt.
const HistoryWindow = 10

// BuildSystemPrompt composes the system turn from the persona's identity and
// behavior. Empty behavior fields are substituted with the documented
// defaults before this is called (Persona.Normalize), but the fallbacks are
// applied here as well so a raw record still yields a complete prompt.
func BuildSystemPrompt(p *persona.Persona) string {
	tone := fallback(p.Behavior.Tone, persona.DefaultTone)
	style := fallback(p.Behavior.Style, persona.DefaultStyle)
	vocabulary := fallback(p.Behavior.Vocabulary, persona.DefaultVocabulary)
	guidelines := fallback(p.Behavior.Guidelines, persona.DefaultGuidelines)

	var b strings.Builder
	fmt.Fprintf(&b, "You are %s", p.Name)
	if p.Archetype != "" {
		fmt.Fprintf(&b, ", a %s", p.Archetype)
	}
	b.WriteString(".")
	if p.Bio != "" {
		fmt.Fprintf(&b, " %s", p.Bio)
	}
	fmt.Fprintf(&b, "\n\nTone: %s\nStyle: %s\nVocabulary: %s\nInstructions: %s", tone, style, vocabulary, guidelines)
	b.WriteString("\n\nStay in character at all times. Respond as this persona would, in first person.")
	return b.String()
}

// BuildMessages produces the ordered turn list for one completion call: the
// system turn, the recent history oldest first, then the new user message.
// Pure function; never mutates its inputs.
func BuildMessages(p *persona.Persona, history []*Message, userMessage string) []openai.ChatCompletionMessage {
	msgs := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: BuildSystemPrompt(p),
	})

	start := 0
	if len(history) > HistoryWindow {
		start = len(history) - HistoryWindow
	}
	for _, msg := range history[start:] {
		role := openai.ChatMessageRoleUser
		if msg.FromPersona() {
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}

	msgs = append(msgs, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})
	return msgs
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return value
}
