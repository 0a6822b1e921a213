package explain

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const modeloGemini = "gemini-2.0-flash"

type geminiTutor struct {
	client *genai.Client
}

// NewTutor builds the Gemini-backed tutor. Without an API key, or when
// the client cannot be created, the Indisponivel tutor takes its place
// and the rest of the app keeps working.
func NewTutor(ctx context.Context, apiKey string) Tutor {
	if apiKey == "" {
		return Indisponivel{}
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		logrus.WithError(err).Warn("falha ao criar cliente Gemini, tutor indisponível")
		return Indisponivel{}
	}
	return &geminiTutor{client: client}
}

func (t *geminiTutor) Explicar(ctx context.Context, enunciado, resposta, comentario string) string {
	result, err := t.client.Models.GenerateContent(
		ctx,
		modeloGemini,
		genai.Text(buildPrompt(enunciado, resposta, comentario)),
		nil,
	)
	if err != nil {
		logrus.WithError(err).Error("falha ao gerar explicação do Gemini")
		return MsgImprevisto
	}

	texto := strings.TrimSpace(result.Text())
	if texto == "" {
		return MsgSemTexto
	}
	return texto
}
