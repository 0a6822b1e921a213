package session

import (
	"context"

	"github.com/BRTheDuality/passae/internal/explain"
	"github.com/BRTheDuality/passae/internal/models"
	"github.com/BRTheDuality/passae/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Estado enumerates the lifecycle of a quiz screen.
type Estado int

const (
	// EstadoSemQuestoes is the dead-end for an empty pool; only
	// navigating away leaves it.
	EstadoSemQuestoes Estado = iota
	EstadoAguardandoResposta
	EstadoFeedback
	EstadoFinalizada
)

func (e Estado) String() string {
	switch e {
	case EstadoSemQuestoes:
		return "sem-questoes"
	case EstadoAguardandoResposta:
		return "aguardando-resposta"
	case EstadoFeedback:
		return "feedback"
	case EstadoFinalizada:
		return "finalizada"
	}
	return "desconhecido"
}

// TempoPorQuestao is the countdown allotted to each question, in ticks.
const TempoPorQuestao = 75

// Recorder receives exactly one call per answered quick-mode question.
type Recorder interface {
	Registrar(ctx context.Context, materia string, acertou bool) error
}

// Placar is the per-session running tally.
type Placar struct {
	Acertos int
	Erros   int
}

// Session drives one quiz screen: a fixed pool answered one question at
// a time, with feedback, a per-question countdown and an optional AI
// explanation. All mutating methods are meant for a single goroutine,
// matching the single active session the stats contract assumes.
type Session struct {
	ID     string
	Filtro service.Filtro

	questoes []models.Question
	indice   int
	estado   Estado
	resposta string
	placar   Placar
	restante int

	// epoca changes on every question transition; late explanation
	// results from a previous question are dropped by comparing it.
	epoca      int
	explicacao string
	explicando bool

	recorder Recorder
	tutor    explain.Tutor
}

// New opens a session over an already-fetched pool. An empty pool lands
// straight in EstadoSemQuestoes, keeping the filter for diagnostics.
func New(filtro service.Filtro, questoes []models.Question, recorder Recorder, tutor explain.Tutor) *Session {
	s := &Session{
		ID:       uuid.NewString(),
		Filtro:   filtro,
		questoes: questoes,
		recorder: recorder,
		tutor:    tutor,
	}
	if len(questoes) == 0 {
		s.estado = EstadoSemQuestoes
		return s
	}
	s.estado = EstadoAguardandoResposta
	s.restante = TempoPorQuestao
	return s
}

func (s *Session) Estado() Estado { return s.estado }

// Atual returns the question on screen, nil when there is none.
func (s *Session) Atual() *models.Question {
	if s.estado == EstadoSemQuestoes || s.estado == EstadoFinalizada {
		return nil
	}
	return &s.questoes[s.indice]
}

func (s *Session) Indice() int    { return s.indice }
func (s *Session) Total() int     { return len(s.questoes) }
func (s *Session) Placar() Placar { return s.placar }
func (s *Session) Restante() int  { return s.restante }

// Resposta returns the token submitted for the current question, empty
// while the answer is still open.
func (s *Session) Resposta() string { return s.resposta }

// Acertou reports whether the current feedback is a correct answer.
func (s *Session) Acertou() bool {
	q := s.Atual()
	return s.estado == EstadoFeedback && q != nil && q.Corrigir(s.resposta)
}

// Responder submits an answer token for the current question. Once
// feedback is showing the answer is locked and later submissions are
// no-ops. The countdown stops the moment feedback shows.
func (s *Session) Responder(ctx context.Context, token string) {
	if s.estado != EstadoAguardandoResposta {
		return
	}
	q := s.Atual()
	s.resposta = token
	s.estado = EstadoFeedback

	acertou := q.Corrigir(token)
	if acertou {
		s.placar.Acertos++
	} else {
		s.placar.Erros++
	}

	if q.Menu == models.MenuRapida && s.recorder != nil {
		if err := s.recorder.Registrar(ctx, q.MateriaOuGeral(), acertou); err != nil {
			logrus.WithError(err).Warn("falha ao registrar desempenho")
		}
	}
}

// Tick consumes one countdown unit. Ticks are inert outside the
// awaiting-answer state, so a stale tick cannot touch a new question.
// Running out of time submits the TIME_UP token.
func (s *Session) Tick(ctx context.Context) {
	if s.estado != EstadoAguardandoResposta {
		return
	}
	s.restante--
	if s.restante <= 0 {
		s.Responder(ctx, models.RespostaTempoEsgotado)
	}
}

// Avancar moves past the current feedback: next question with a fresh
// countdown, or EstadoFinalizada when none remain. Returns true while
// the session continues.
func (s *Session) Avancar() bool {
	if s.estado != EstadoFeedback {
		return s.estado == EstadoAguardandoResposta
	}
	s.epoca++
	s.resposta = ""
	s.explicacao = ""
	s.explicando = false
	if s.indice < len(s.questoes)-1 {
		s.indice++
		s.estado = EstadoAguardandoResposta
		s.restante = TempoPorQuestao
		return true
	}
	s.estado = EstadoFinalizada
	return false
}
