package explain

import (
	"context"
	"strings"
	"testing"
)

func TestIndisponivelReturnsCannedMessage(t *testing.T) {
	tutor := Indisponivel{}

	got := tutor.Explicar(context.Background(), "enunciado", "SIM", "comentario")

	if got != MsgSemChave {
		t.Errorf("expected the canned no-key message, got %q", got)
	}
}

func TestNewTutorWithoutKey(t *testing.T) {
	tutor := NewTutor(context.Background(), "")

	if _, ok := tutor.(Indisponivel); !ok {
		t.Fatalf("expected the Indisponivel tutor without a key, got %T", tutor)
	}
}

func TestBuildPromptCarriesQuestionFields(t *testing.T) {
	prompt := buildPrompt("Qual é a capital?", "A", "ver geografia")

	for _, trecho := range []string{"Professor PassaAê", "Qual é a capital?", `"A"`, "ver geografia"} {
		if !strings.Contains(prompt, trecho) {
			t.Errorf("prompt missing %q:\n%s", trecho, prompt)
		}
	}
}
