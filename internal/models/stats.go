package models

import "time"

type MateriaStats struct {
	Acertos int `bson:"acertos" json:"acertos"`
	Erros   int `bson:"erros" json:"erros"`
}

// PerformanceStats is the cumulative quick-mode record. It is always
// read, mutated and written back as a whole.
type PerformanceStats struct {
	TotalRespondidas int                     `bson:"totalRespondidas" json:"totalRespondidas"`
	Acertos          int                     `bson:"acertos" json:"acertos"`
	Erros            int                     `bson:"erros" json:"erros"`
	PorMateria       map[string]MateriaStats `bson:"porMateria" json:"porMateria"`
}

func NewPerformanceStats() PerformanceStats {
	return PerformanceStats{PorMateria: map[string]MateriaStats{}}
}

// Registrar applies one answered question to the counters, creating the
// materia entry when absent.
func (s *PerformanceStats) Registrar(materia string, acertou bool) {
	if s.PorMateria == nil {
		s.PorMateria = map[string]MateriaStats{}
	}
	s.TotalRespondidas++
	m := s.PorMateria[materia]
	if acertou {
		s.Acertos++
		m.Acertos++
	} else {
		s.Erros++
		m.Erros++
	}
	s.PorMateria[materia] = m
}

// Consistente checks the record invariant: total == acertos + erros and
// the per-materia counters sum back to the same total.
func (s *PerformanceStats) Consistente() bool {
	if s.TotalRespondidas != s.Acertos+s.Erros {
		return false
	}
	soma := 0
	for _, m := range s.PorMateria {
		soma += m.Acertos + m.Erros
	}
	return soma == s.TotalRespondidas
}

// Clone returns an independent copy, so callers can mutate freely.
func (s PerformanceStats) Clone() PerformanceStats {
	out := s
	out.PorMateria = make(map[string]MateriaStats, len(s.PorMateria))
	for materia, m := range s.PorMateria {
		out.PorMateria[materia] = m
	}
	return out
}

// RespostaEvento is the single-answer record mirrored to the remote
// store after each quick-mode answer.
type RespostaEvento struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Materia   string    `bson:"materia" json:"materia"`
	Correta   bool      `bson:"correta" json:"correta"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
