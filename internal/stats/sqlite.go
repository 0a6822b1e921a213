package stats

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BRTheDuality/passae/internal/models"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// ChaveDesempenho is the well-known key the whole performance record
// lives under.
const ChaveDesempenho = "passaae_performance"

const schema = `
CREATE TABLE IF NOT EXISTS armazenamento (
	chave TEXT PRIMARY KEY,
	payload TEXT NOT NULL
);`

// SQLiteRepository keeps the performance record in a local sqlite file,
// the device-storage side of the stats contract.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (or creates) the local stats database.
// Safe to call against an existing file; the schema uses IF NOT EXISTS.
func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open stats database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create stats schema: %w", err)
	}
	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Carregar() (models.PerformanceStats, error) {
	var payload string
	err := r.db.QueryRow(
		`SELECT payload FROM armazenamento WHERE chave = ?`, ChaveDesempenho,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewPerformanceStats(), nil
	}
	if err != nil {
		return models.PerformanceStats{}, fmt.Errorf("failed to load stats: %w", err)
	}

	var s models.PerformanceStats
	if err := json.Unmarshal([]byte(payload), &s); err != nil {
		// A corrupt record counts as a missing one; availability over
		// strict validation.
		logrus.WithError(err).Warn("registro de desempenho corrompido, recomeçando do zero")
		return models.NewPerformanceStats(), nil
	}
	if s.PorMateria == nil {
		s.PorMateria = map[string]models.MateriaStats{}
	}
	return s, nil
}

func (r *SQLiteRepository) Salvar(s models.PerformanceStats) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	_, err = r.db.Exec(
		`INSERT INTO armazenamento (chave, payload) VALUES (?, ?)
		 ON CONFLICT(chave) DO UPDATE SET payload = excluded.payload`,
		ChaveDesempenho, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to save stats: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
