package app

import (
	"strings"

	"github.com/BRTheDuality/passae/internal/models"
	"github.com/BRTheDuality/passae/internal/service"
)

// Shell is the navigation state machine: the current view plus the
// selections the later screens depend on. Transitions that would land a
// screen without its inputs are rejected, independent of any rendering.
type Shell struct {
	view     View
	concurso *models.Concurso
	cargo    string
	menu     string
	materia  string
}

func NewShell() *Shell {
	return &Shell{view: ViewHome}
}

func (s *Shell) View() View                 { return s.view }
func (s *Shell) Concurso() *models.Concurso { return s.concurso }
func (s *Shell) Cargo() string              { return s.cargo }
func (s *Shell) Menu() string               { return s.menu }
func (s *Shell) Materia() string            { return s.materia }

// AbrirConcursos opens the contest list from home.
func (s *Shell) AbrirConcursos() bool {
	if s.view != ViewHome {
		return false
	}
	s.view = ViewConcursos
	return true
}

// SelecionarCargo records the chosen contest and role and opens its
// mode menu.
func (s *Shell) SelecionarCargo(c *models.Concurso, cargo string) bool {
	if s.view != ViewConcursos || c == nil || strings.TrimSpace(cargo) == "" {
		return false
	}
	s.concurso = c
	s.cargo = cargo
	s.view = ViewCargoMenu
	return true
}

// IniciarQuiz opens a quiz screen for the given mode; materia narrows
// the pool when set.
func (s *Shell) IniciarQuiz(menu, materia string) bool {
	if s.view != ViewCargoMenu || s.concurso == nil {
		return false
	}
	switch menu {
	case models.MenuRapida, models.MenuSimulado, models.MenuOriginal:
	default:
		return false
	}
	s.menu = menu
	s.materia = materia
	s.view = ViewQuiz
	return true
}

// AbrirDesempenho opens the performance screen from the mode menu.
func (s *Shell) AbrirDesempenho() bool {
	if s.view != ViewCargoMenu {
		return false
	}
	s.view = ViewPerformance
	return true
}

// Voltar steps one screen back: concursos to home, cargo-menu to
// concursos, quiz and performance to cargo-menu. Home has nowhere to go.
func (s *Shell) Voltar() bool {
	switch s.view {
	case ViewConcursos:
		s.view = ViewHome
	case ViewCargoMenu:
		s.view = ViewConcursos
	case ViewQuiz, ViewPerformance:
		s.view = ViewCargoMenu
	default:
		return false
	}
	return true
}

// FiltroAtual builds the question filter for the active selections.
func (s *Shell) FiltroAtual() service.Filtro {
	f := service.Filtro{
		Cargo:   s.cargo,
		Menu:    s.menu,
		Materia: s.materia,
	}
	if s.concurso != nil {
		f.Concurso = s.concurso.Nome
	}
	return f
}
