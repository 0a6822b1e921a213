package service

import (
	"context"

	"github.com/BRTheDuality/passae/internal/models"
	"github.com/BRTheDuality/passae/internal/repository"
	"github.com/BRTheDuality/passae/internal/selection"

	"github.com/sirupsen/logrus"
)

// Filtro identifies one question pool. The empty-pool screen echoes its
// fields back so users can check them against the stored records.
type Filtro struct {
	Concurso string
	Cargo    string
	Menu     string
	Materia  string // optional
}

type QuestaoService struct {
	Repo    *repository.QuestionRepository
	Sampler *selection.Sampler
}

func NewQuestaoService(repo *repository.QuestionRepository) *QuestaoService {
	return &QuestaoService{Repo: repo, Sampler: selection.NewSampler()}
}

// BuscarQuestoes fetches the pool matching the filter and applies the
// quick-mode draw policy. A fetch failure degrades to an empty pool,
// with the error alongside for the retry affordance.
func (s *QuestaoService) BuscarQuestoes(ctx context.Context, f Filtro) ([]models.Question, error) {
	questoes, err := s.Repo.FindByFilter(ctx, f.Concurso, f.Cargo, f.Menu, f.Materia)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"concurso": f.Concurso,
			"cargo":    f.Cargo,
			"menu":     f.Menu,
		}).Error("erro ao buscar questões")
		return []models.Question{}, err
	}
	return s.Sampler.Selecionar(f.Menu, questoes), nil
}
