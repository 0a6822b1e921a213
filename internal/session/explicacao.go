package session

import "context"

// ExplicacaoTask is one in-flight tutor call. The result arrives on
// Resultado and must be handed back through AplicarExplicacao, which
// drops it when the session has already moved to another question.
type ExplicacaoTask struct {
	epoca     int
	Resultado <-chan string
}

// PedirExplicacao starts a single tutor call for the question in
// feedback. Nil when there is nothing to explain or no tutor is wired.
// The call never blocks the session: it runs on its own goroutine and
// only the owner goroutine applies the outcome.
func (s *Session) PedirExplicacao(ctx context.Context) *ExplicacaoTask {
	if s.estado != EstadoFeedback || s.tutor == nil || s.explicando || s.explicacao != "" {
		return nil
	}
	q := *s.Atual()
	ch := make(chan string, 1)
	s.explicando = true
	go func() {
		ch <- s.tutor.Explicar(ctx, q.Enunciado, q.Resposta, q.Comentario)
	}()
	return &ExplicacaoTask{epoca: s.epoca, Resultado: ch}
}

// AplicarExplicacao attaches a finished task's text to the feedback
// view. Results for a question the session already left are discarded.
func (s *Session) AplicarExplicacao(t *ExplicacaoTask, texto string) bool {
	if t == nil || t.epoca != s.epoca {
		return false
	}
	s.explicando = false
	s.explicacao = texto
	return true
}

// Explicacao returns the text attached to the current feedback, empty
// while none has arrived.
func (s *Session) Explicacao() string { return s.explicacao }

// ExplicacaoPendente reports whether a tutor call is still in flight for
// the current question.
func (s *Session) ExplicacaoPendente() bool { return s.explicando }
