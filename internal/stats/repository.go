package stats

import "github.com/BRTheDuality/passae/internal/models"

// Repository persists the cumulative performance record. The record is
// always handled whole: no partial updates, no versioning.
type Repository interface {
	// Carregar returns the stored record, or an all-zero one when
	// nothing has been stored yet.
	Carregar() (models.PerformanceStats, error)
	Salvar(models.PerformanceStats) error
}
