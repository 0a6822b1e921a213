package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/BRTheDuality/passae/internal/models"

	"github.com/sirupsen/logrus"
)

// Mirror receives a best-effort copy of each answered question. A
// failing mirror is logged and ignored; it never rolls back the local
// record.
type Mirror interface {
	Create(ctx context.Context, ev *models.RespostaEvento) error
}

// Aggregator is the single writer of the performance record: each
// quick-mode answer goes through Registrar exactly once.
type Aggregator struct {
	repo    Repository
	mirrors []Mirror
}

func NewAggregator(repo Repository, mirrors ...Mirror) *Aggregator {
	return &Aggregator{repo: repo, mirrors: mirrors}
}

// Registrar records one answered quick question: the local record is
// read, incremented and written back synchronously, then the event is
// mirrored to the remote store fire-and-forget.
func (a *Aggregator) Registrar(ctx context.Context, materia string, acertou bool) error {
	s, err := a.repo.Carregar()
	if err != nil {
		return fmt.Errorf("failed to load performance record: %w", err)
	}
	s.Registrar(materia, acertou)
	if err := a.repo.Salvar(s); err != nil {
		return fmt.Errorf("failed to save performance record: %w", err)
	}

	ev := &models.RespostaEvento{
		Materia:   materia,
		Correta:   acertou,
		CreatedAt: time.Now().UTC(),
	}
	for _, m := range a.mirrors {
		if err := m.Create(ctx, ev); err != nil {
			logrus.WithError(err).WithField("materia", materia).
				Warn("falha ao espelhar desempenho remoto")
		}
	}
	return nil
}

// Carregar exposes the current record for the performance screen.
func (a *Aggregator) Carregar() (models.PerformanceStats, error) {
	return a.repo.Carregar()
}
