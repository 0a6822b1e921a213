package explain

import "context"

// Tutor produces a natural-language explanation for an answered
// question. Implementations never fail: degraded conditions come back
// as canned text so the feedback screen always has something to show.
type Tutor interface {
	Explicar(ctx context.Context, enunciado, resposta, comentario string) string
}

// Canned responses for the degraded paths.
const (
	MsgSemChave   = "O Tutor IA está configurando os livros. (Chave de API não encontrada)"
	MsgSemTexto   = "Não foi possível gerar a explicação agora."
	MsgImprevisto = "O Professor IA teve um imprevisto técnico. Tente novamente em breve."
)

// Indisponivel is the tutor used when no API key is configured. Not an
// error condition: the screen shows the canned line instead.
type Indisponivel struct{}

func (Indisponivel) Explicar(context.Context, string, string, string) string {
	return MsgSemChave
}
