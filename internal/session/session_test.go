package session

import (
	"context"
	"fmt"
	"testing"

	"github.com/BRTheDuality/passae/internal/models"
	"github.com/BRTheDuality/passae/internal/service"
)

type registroFake struct {
	materia string
	acertou bool
}

type recorderFake struct {
	registros []registroFake
	err       error
}

func (r *recorderFake) Registrar(ctx context.Context, materia string, acertou bool) error {
	r.registros = append(r.registros, registroFake{materia: materia, acertou: acertou})
	return r.err
}

type tutorFake struct {
	texto string
}

func (t tutorFake) Explicar(ctx context.Context, enunciado, resposta, comentario string) string {
	return t.texto
}

func poolRapida(n int) []models.Question {
	questoes := make([]models.Question, n)
	for i := range questoes {
		questoes[i] = models.Question{
			ID:       fmt.Sprintf("q-%d", i),
			Materia:  "Direito",
			Menu:     models.MenuRapida,
			Resposta: models.RespostaSim,
		}
	}
	return questoes
}

func TestNewEmptyPool(t *testing.T) {
	f := service.Filtro{Concurso: "INSS", Cargo: "Técnico", Menu: models.MenuRapida}

	s := New(f, nil, nil, nil)

	if s.Estado() != EstadoSemQuestoes {
		t.Fatalf("expected sem-questoes, got %s", s.Estado())
	}
	if s.Atual() != nil {
		t.Error("no current question should exist without a pool")
	}
	if s.Filtro != f {
		t.Errorf("session must keep the applied filter for diagnostics, got %+v", s.Filtro)
	}
}

func TestResponderCorrect(t *testing.T) {
	rec := &recorderFake{}
	s := New(service.Filtro{Menu: models.MenuRapida}, poolRapida(2), rec, nil)

	s.Responder(context.Background(), models.RespostaSim)

	if s.Estado() != EstadoFeedback {
		t.Fatalf("expected feedback, got %s", s.Estado())
	}
	if !s.Acertou() {
		t.Error("SIM against SIM must score correct")
	}
	if p := s.Placar(); p.Acertos != 1 || p.Erros != 0 {
		t.Errorf("placar = %+v, want 1/0", p)
	}
	if len(rec.registros) != 1 {
		t.Fatalf("expected exactly 1 stats record, got %d", len(rec.registros))
	}
	if r := rec.registros[0]; r.materia != "Direito" || !r.acertou {
		t.Errorf("record = %+v", r)
	}
}

func TestResponderWrong(t *testing.T) {
	rec := &recorderFake{}
	s := New(service.Filtro{Menu: models.MenuRapida}, poolRapida(1), rec, nil)

	s.Responder(context.Background(), models.RespostaNao)

	if s.Acertou() {
		t.Error("NAO against SIM must score wrong")
	}
	if p := s.Placar(); p.Acertos != 0 || p.Erros != 1 {
		t.Errorf("placar = %+v, want 0/1", p)
	}
	if len(rec.registros) != 1 || rec.registros[0].acertou {
		t.Errorf("expected one wrong record, got %+v", rec.registros)
	}
}

func TestResponderLockedAfterFeedback(t *testing.T) {
	rec := &recorderFake{}
	s := New(service.Filtro{Menu: models.MenuRapida}, poolRapida(1), rec, nil)
	ctx := context.Background()

	s.Responder(ctx, models.RespostaNao)
	s.Responder(ctx, models.RespostaSim)
	s.Responder(ctx, models.RespostaSim)

	if p := s.Placar(); p.Acertos != 0 || p.Erros != 1 {
		t.Errorf("re-submissions must be no-ops, placar = %+v", p)
	}
	if len(rec.registros) != 1 {
		t.Errorf("stats must fire exactly once per question, got %d", len(rec.registros))
	}
	if s.Resposta() != models.RespostaNao {
		t.Errorf("locked answer changed to %q", s.Resposta())
	}
}

func TestCountdownExpiresToTimeUp(t *testing.T) {
	rec := &recorderFake{}
	s := New(service.Filtro{Menu: models.MenuRapida}, poolRapida(1), rec, nil)
	ctx := context.Background()

	if s.Restante() != TempoPorQuestao {
		t.Fatalf("fresh countdown = %d, want %d", s.Restante(), TempoPorQuestao)
	}
	for i := 0; i < TempoPorQuestao; i++ {
		s.Tick(ctx)
	}

	if s.Estado() != EstadoFeedback {
		t.Fatalf("expired countdown must show feedback, got %s", s.Estado())
	}
	if s.Resposta() != models.RespostaTempoEsgotado {
		t.Errorf("expected TIME_UP submission, got %q", s.Resposta())
	}
	if s.Acertou() {
		t.Error("TIME_UP must always score wrong")
	}
	if len(rec.registros) != 1 || rec.registros[0].acertou {
		t.Errorf("expected one wrong record, got %+v", rec.registros)
	}
}

func TestTickInertAfterFeedback(t *testing.T) {
	s := New(service.Filtro{Menu: models.MenuRapida}, poolRapida(1), nil, nil)
	ctx := context.Background()

	s.Responder(ctx, models.RespostaSim)
	restante := s.Restante()
	s.Tick(ctx)

	if s.Restante() != restante {
		t.Error("ticks must be inert once feedback is showing")
	}
}

func TestAvancarResetsCountdownAndAdvances(t *testing.T) {
	s := New(service.Filtro{Menu: models.MenuRapida}, poolRapida(3), nil, nil)
	ctx := context.Background()

	s.Tick(ctx)
	s.Responder(ctx, models.RespostaSim)

	if !s.Avancar() {
		t.Fatal("expected the session to continue")
	}
	if s.Indice() != 1 {
		t.Errorf("indice = %d, want 1", s.Indice())
	}
	if s.Estado() != EstadoAguardandoResposta {
		t.Errorf("expected aguardando-resposta, got %s", s.Estado())
	}
	if s.Restante() != TempoPorQuestao {
		t.Errorf("countdown not refreshed: %d", s.Restante())
	}
	if s.Resposta() != "" {
		t.Errorf("answer not cleared: %q", s.Resposta())
	}
}

func TestAvancarFinishesOnLastQuestion(t *testing.T) {
	s := New(service.Filtro{Menu: models.MenuRapida}, poolRapida(1), nil, nil)
	ctx := context.Background()

	s.Responder(ctx, models.RespostaSim)

	if s.Avancar() {
		t.Error("last question answered, session must signal completion")
	}
	if s.Estado() != EstadoFinalizada {
		t.Errorf("expected finalizada, got %s", s.Estado())
	}
	if s.Atual() != nil {
		t.Error("finished session has no current question")
	}
}

func TestAvancarWithoutFeedbackIsNoop(t *testing.T) {
	s := New(service.Filtro{Menu: models.MenuRapida}, poolRapida(2), nil, nil)

	if !s.Avancar() {
		t.Error("advancing an open question keeps the session alive")
	}
	if s.Indice() != 0 {
		t.Error("advancing without feedback must not skip the question")
	}
}

func TestNonRapidaDoesNotRecordStats(t *testing.T) {
	rec := &recorderFake{}
	questoes := []models.Question{{
		ID:       "q-0",
		Materia:  "Direito",
		Menu:     models.MenuSimulado,
		Resposta: models.RespostaSim,
	}}
	s := New(service.Filtro{Menu: models.MenuSimulado}, questoes, rec, nil)

	s.Responder(context.Background(), models.RespostaSim)

	if len(rec.registros) != 0 {
		t.Errorf("simulado answers must not persist stats, got %d records", len(rec.registros))
	}
}

func TestFullSessionTally(t *testing.T) {
	rec := &recorderFake{}
	s := New(service.Filtro{Menu: models.MenuRapida}, poolRapida(3), rec, nil)
	ctx := context.Background()

	respostas := []string{models.RespostaSim, models.RespostaNao, models.RespostaSim}
	for _, r := range respostas {
		s.Responder(ctx, r)
		s.Avancar()
	}

	if s.Estado() != EstadoFinalizada {
		t.Fatalf("expected finalizada, got %s", s.Estado())
	}
	if p := s.Placar(); p.Acertos != 2 || p.Erros != 1 {
		t.Errorf("placar = %+v, want 2/1", p)
	}
	if len(rec.registros) != 3 {
		t.Errorf("expected 3 stats records, got %d", len(rec.registros))
	}
}

func TestPedirExplicacao(t *testing.T) {
	s := New(service.Filtro{Menu: models.MenuRapida}, poolRapida(2), nil, tutorFake{texto: "porque sim"})
	ctx := context.Background()

	if task := s.PedirExplicacao(ctx); task != nil {
		t.Fatal("no explanation before feedback")
	}

	s.Responder(ctx, models.RespostaSim)
	task := s.PedirExplicacao(ctx)
	if task == nil {
		t.Fatal("expected a task in feedback state")
	}
	if !s.ExplicacaoPendente() {
		t.Error("task in flight must be visible as pending")
	}

	texto := <-task.Resultado
	if !s.AplicarExplicacao(task, texto) {
		t.Fatal("result for the current question must apply")
	}
	if s.Explicacao() != "porque sim" {
		t.Errorf("explicacao = %q", s.Explicacao())
	}
	if s.ExplicacaoPendente() {
		t.Error("pending flag must clear after the result lands")
	}
}

func TestExplicacaoStaleResultDropped(t *testing.T) {
	s := New(service.Filtro{Menu: models.MenuRapida}, poolRapida(2), nil, tutorFake{texto: "atrasada"})
	ctx := context.Background()

	s.Responder(ctx, models.RespostaSim)
	task := s.PedirExplicacao(ctx)
	texto := <-task.Resultado

	// The user moved on before the tutor answered.
	s.Avancar()

	if s.AplicarExplicacao(task, texto) {
		t.Error("result for an abandoned question must be dropped")
	}
	if s.Explicacao() != "" {
		t.Errorf("stale text leaked into the new question: %q", s.Explicacao())
	}
}

func TestExplicacaoSingleInFlight(t *testing.T) {
	s := New(service.Filtro{Menu: models.MenuRapida}, poolRapida(1), nil, tutorFake{texto: "x"})
	ctx := context.Background()

	s.Responder(ctx, models.RespostaSim)
	primeiro := s.PedirExplicacao(ctx)
	segundo := s.PedirExplicacao(ctx)

	if primeiro == nil {
		t.Fatal("first request must start a task")
	}
	if segundo != nil {
		t.Error("a second request while one is in flight must be a no-op")
	}
	// Drain so the goroutine finishes.
	s.AplicarExplicacao(primeiro, <-primeiro.Resultado)
}
