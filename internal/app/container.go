package app

import (
	"context"

	"github.com/BRTheDuality/passae/internal/event"
	"github.com/BRTheDuality/passae/internal/explain"
	"github.com/BRTheDuality/passae/internal/repository"
	"github.com/BRTheDuality/passae/internal/service"
	"github.com/BRTheDuality/passae/internal/session"
	"github.com/BRTheDuality/passae/internal/stats"

	"go.mongodb.org/mongo-driver/mongo"
)

// Deps are the external collaborators the screens run against.
type Deps struct {
	Database  *mongo.Database
	StatsRepo stats.Repository
	Tutor     explain.Tutor
	// Publisher is optional; without a broker the answer events simply
	// are not announced.
	Publisher *event.EventPublisher
}

// Container wires the repositories, services and collaborators.
type Container struct {
	Concursos *service.ConcursoService
	Questoes  *service.QuestaoService
	Stats     *stats.Aggregator
	Tutor     explain.Tutor
}

func New(deps Deps) *Container {
	concursoRepo := repository.NewConcursoRepository(deps.Database)
	questaoRepo := repository.NewQuestionRepository(deps.Database)
	desempenhoRepo := repository.NewDesempenhoRepository(deps.Database)

	mirrors := []stats.Mirror{desempenhoRepo}
	if deps.Publisher != nil {
		mirrors = append(mirrors, &event.RespostaMirror{Publisher: deps.Publisher})
	}

	return &Container{
		Concursos: service.NewConcursoService(concursoRepo),
		Questoes:  service.NewQuestaoService(questaoRepo),
		Stats:     stats.NewAggregator(deps.StatsRepo, mirrors...),
		Tutor:     deps.Tutor,
	}
}

// NovaSessao fetches the pool for the filter and opens a quiz session
// over it. A fetch failure still opens the session (on the empty-pool
// screen); the error rides along so the caller can offer a retry.
func (c *Container) NovaSessao(ctx context.Context, f service.Filtro) (*session.Session, error) {
	questoes, err := c.Questoes.BuscarQuestoes(ctx, f)
	return session.New(f, questoes, c.Stats, c.Tutor), err
}
