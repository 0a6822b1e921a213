package models

import "strings"

// Menu values distinguish the three practice modes.
const (
	MenuRapida   = "rapida"
	MenuSimulado = "simulado"
	MenuOriginal = "original"
)

// Answer tokens a question can store or receive.
const (
	RespostaSim = "SIM"
	RespostaNao = "NAO"

	// RespostaTempoEsgotado is the synthetic token submitted when the
	// countdown expires. It never equals a stored answer, so it always
	// scores wrong.
	RespostaTempoEsgotado = "TIME_UP"
)

// MateriaGeral groups questions that carry no materia label.
const MateriaGeral = "Geral"

type Question struct {
	ID        string `bson:"_id,omitempty" json:"id"`
	Concurso  string `bson:"concurso" json:"concurso"`
	Cargo     string `bson:"cargo" json:"cargo"`
	Materia   string `bson:"materia" json:"materia"`
	Menu      string `bson:"menu" json:"menu"`
	Enunciado string `bson:"enunciado" json:"enunciado"`
	// Alternativas maps choice letters (A-D) to their text. Present only
	// for menu "original"; the other menus are SIM/NAO questions.
	Alternativas map[string]string `bson:"alternativas,omitempty" json:"alternativas,omitempty"`
	Resposta     string            `bson:"resposta" json:"resposta"`
	Comentario   string            `bson:"comentario" json:"comentario"`
}

// MateriaOuGeral returns the materia label, falling back to MateriaGeral
// for unlabeled questions.
func (q *Question) MateriaOuGeral() string {
	if strings.TrimSpace(q.Materia) == "" {
		return MateriaGeral
	}
	return q.Materia
}

// Corrigir reports whether the submitted token matches the stored answer.
// The comparison is exact.
func (q *Question) Corrigir(token string) bool {
	return token == q.Resposta
}

// Normalize trims the reference fields and enforces that alternativas
// only exist on multiple-choice questions.
func (q *Question) Normalize() {
	q.Concurso = strings.TrimSpace(q.Concurso)
	q.Cargo = strings.TrimSpace(q.Cargo)
	q.Materia = strings.TrimSpace(q.Materia)
	q.Menu = strings.TrimSpace(q.Menu)
	if q.Menu != MenuOriginal {
		q.Alternativas = nil
	}
}
