package service

import (
	"context"

	"github.com/BRTheDuality/passae/internal/models"
	"github.com/BRTheDuality/passae/internal/repository"

	"github.com/sirupsen/logrus"
)

type ConcursoService struct {
	Repo *repository.ConcursoRepository
}

func NewConcursoService(repo *repository.ConcursoRepository) *ConcursoService {
	return &ConcursoService{Repo: repo}
}

// ListarConcursos returns every contest. A fetch failure degrades to an
// empty list; the error rides along so the screen can offer a retry.
func (s *ConcursoService) ListarConcursos(ctx context.Context) ([]models.Concurso, error) {
	concursos, err := s.Repo.FindAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("erro ao buscar concursos")
		return []models.Concurso{}, err
	}
	return concursos, nil
}
