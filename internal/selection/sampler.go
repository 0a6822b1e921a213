package selection

import (
	"math/rand"
	"time"

	"github.com/BRTheDuality/passae/internal/models"
)

// TamanhoRapida is the draw size for quick-mode sessions.
const TamanhoRapida = 10

// Sampler draws a bounded, materia-balanced random subset from a
// question pool for quick-mode sessions. Every other menu bypasses it
// and keeps its full pool.
//
// The draw is a coverage policy, not a quota: once the smaller materias
// run out, the larger ones keep contributing, so a dominant materia can
// still hold a majority of the final set.
type Sampler struct {
	rand *rand.Rand

	// TamanhoMax caps the draw. Zero means TamanhoRapida.
	TamanhoMax int

	// Reshuffle controls the final pass that hides the per-materia draw
	// order from the presentation. On by default.
	Reshuffle bool
}

func NewSampler() *Sampler {
	return NewSeededSampler(time.Now().UnixNano())
}

// NewSeededSampler builds a sampler with a fixed seed, for deterministic
// draws in tests.
func NewSeededSampler(seed int64) *Sampler {
	return &Sampler{
		rand:       rand.New(rand.NewSource(seed)),
		TamanhoMax: TamanhoRapida,
		Reshuffle:  true,
	}
}

// Selecionar applies the quick-mode draw policy when menu is "rapida"
// and passes every other menu through unchanged.
func (s *Sampler) Selecionar(menu string, pool []models.Question) []models.Question {
	if menu != models.MenuRapida {
		return pool
	}
	return s.Amostrar(pool)
}

// Amostrar draws at most TamanhoMax questions from the pool. Pools at or
// under the cap come back whole, in random order. Larger pools are drawn
// round-robin across their materias so coverage stays as balanced as the
// available stock allows.
func (s *Sampler) Amostrar(pool []models.Question) []models.Question {
	max := s.TamanhoMax
	if max <= 0 {
		max = TamanhoRapida
	}
	if len(pool) == 0 {
		return []models.Question{}
	}
	if len(pool) <= max {
		return Shuffle(s.rand, pool)
	}

	grupos := s.agruparPorMateria(pool)

	ordem := make([]string, 0, len(grupos))
	for materia := range grupos {
		ordem = append(ordem, materia)
	}
	ordem = Shuffle(s.rand, ordem)

	selecionadas := make([]models.Question, 0, max)
	for len(selecionadas) < max && len(ordem) > 0 {
		restantes := make([]string, 0, len(ordem))
		for _, materia := range ordem {
			if len(selecionadas) == max {
				break
			}
			grupo := grupos[materia]
			// Pop from the end of the pre-shuffled group; the group is
			// already in uniform random order, so the end is as good as
			// the front.
			selecionadas = append(selecionadas, grupo[len(grupo)-1])
			grupo = grupo[:len(grupo)-1]
			grupos[materia] = grupo
			if len(grupo) > 0 {
				restantes = append(restantes, materia)
			}
		}
		ordem = restantes
	}

	if s.Reshuffle {
		return Shuffle(s.rand, selecionadas)
	}
	return selecionadas
}

// agruparPorMateria splits the pool by materia label (unlabeled
// questions land in the implicit "Geral" group) and shuffles each group
// independently.
func (s *Sampler) agruparPorMateria(pool []models.Question) map[string][]models.Question {
	grupos := make(map[string][]models.Question)
	for _, q := range pool {
		materia := q.MateriaOuGeral()
		grupos[materia] = append(grupos[materia], q)
	}
	for materia, grupo := range grupos {
		grupos[materia] = Shuffle(s.rand, grupo)
	}
	return grupos
}
