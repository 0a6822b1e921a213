package app

// View enumerates the screens. Exactly one is active at a time.
type View int

const (
	ViewHome View = iota
	ViewConcursos
	ViewCargoMenu
	ViewQuiz
	ViewPerformance
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewConcursos:
		return "concursos"
	case ViewCargoMenu:
		return "cargo-menu"
	case ViewQuiz:
		return "quiz"
	case ViewPerformance:
		return "performance"
	}
	return "desconhecida"
}
