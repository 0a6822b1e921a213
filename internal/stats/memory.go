package stats

import "github.com/BRTheDuality/passae/internal/models"

// MemoryRepository keeps the performance record in process memory. Used
// by tests and as a fallback when no durable path is configured.
type MemoryRepository struct {
	stats models.PerformanceStats
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{stats: models.NewPerformanceStats()}
}

func (r *MemoryRepository) Carregar() (models.PerformanceStats, error) {
	return r.stats.Clone(), nil
}

func (r *MemoryRepository) Salvar(s models.PerformanceStats) error {
	r.stats = s.Clone()
	return nil
}
