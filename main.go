package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BRTheDuality/passae/internal/app"
	"github.com/BRTheDuality/passae/internal/config"
	"github.com/BRTheDuality/passae/internal/db"
	"github.com/BRTheDuality/passae/internal/event"
	"github.com/BRTheDuality/passae/internal/explain"
	"github.com/BRTheDuality/passae/internal/models"
	"github.com/BRTheDuality/passae/internal/session"
	"github.com/BRTheDuality/passae/internal/stats"

	"github.com/sirupsen/logrus"
)

func main() {
	config.InitLogger()
	cfg := config.Load()

	if cfg.MongoURI == "" {
		logrus.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoURI)
	database := db.Client.Database("passae")

	var publisher *event.EventPublisher
	if cfg.RabbitURI != "" && cfg.RabbitExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitURI, cfg.RabbitExchange)
		if err != nil {
			logrus.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		logrus.Info("RabbitMQ not configured, answer events will not be published")
	}

	statsRepo, err := stats.NewSQLiteRepository(cfg.StatsDBPath)
	if err != nil {
		logrus.Fatalf("Failed to open stats storage: %v", err)
	}
	defer statsRepo.Close()

	ctx := context.Background()
	container := app.New(app.Deps{
		Database:  database,
		StatsRepo: statsRepo,
		Tutor:     explain.NewTutor(ctx, cfg.GeminiAPIKey),
		Publisher: publisher,
	})

	linhas := make(chan string)
	go func() {
		defer close(linhas)
		in := bufio.NewScanner(os.Stdin)
		for in.Scan() {
			linhas <- strings.TrimSpace(in.Text())
		}
	}()

	run(ctx, container, app.NewShell(), linhas)
}

// run is a bare-bones terminal driver standing in for the page shell.
// All behavior lives in the container and the session; this loop only
// renders and forwards input. A closed input channel ends the program.
func run(ctx context.Context, c *app.Container, shell *app.Shell, linhas <-chan string) {
	for {
		switch shell.View() {
		case app.ViewHome:
			fmt.Println("\nPassaAê — [enter] concursos, [q] sair")
			linha, ok := <-linhas
			if !ok || linha == "q" {
				return
			}
			shell.AbrirConcursos()

		case app.ViewConcursos:
			concursos, err := c.Concursos.ListarConcursos(ctx)
			if err != nil {
				fmt.Println("Falha ao buscar concursos; [enter] tenta de novo, [v] volta")
			}
			for i, con := range concursos {
				fmt.Printf("%d. %s (%s) — cargos: %s\n", i+1, con.Nome, con.Tipo, strings.Join(con.Cargos, ", "))
			}
			fmt.Print("concurso cargo> ")
			linha, ok := <-linhas
			if !ok {
				return
			}
			if linha == "v" {
				shell.Voltar()
				continue
			}
			partes := strings.Fields(linha)
			if len(partes) < 2 {
				continue
			}
			idx, err := strconv.Atoi(partes[0])
			if err != nil || idx < 1 || idx > len(concursos) {
				continue
			}
			shell.SelecionarCargo(&concursos[idx-1], strings.Join(partes[1:], " "))

		case app.ViewCargoMenu:
			fmt.Printf("\n%s / %s — [1] rapida [2] simulado [3] original [d] desempenho [v] voltar\n",
				shell.Concurso().Nome, shell.Cargo())
			linha, ok := <-linhas
			if !ok {
				return
			}
			switch linha {
			case "1":
				shell.IniciarQuiz(models.MenuRapida, "")
			case "2":
				shell.IniciarQuiz(models.MenuSimulado, "")
			case "3":
				shell.IniciarQuiz(models.MenuOriginal, "")
			case "d":
				shell.AbrirDesempenho()
			case "v":
				shell.Voltar()
			}

		case app.ViewQuiz:
			if !runQuiz(ctx, c, shell, linhas) {
				return
			}
			shell.Voltar()

		case app.ViewPerformance:
			s, err := c.Stats.Carregar()
			if err != nil {
				fmt.Println("Falha ao carregar desempenho")
			} else {
				fmt.Printf("\nRespondidas: %d | Acertos: %d | Erros: %d\n", s.TotalRespondidas, s.Acertos, s.Erros)
				for materia, m := range s.PorMateria {
					fmt.Printf("  %s: %d acertos, %d erros\n", materia, m.Acertos, m.Erros)
				}
			}
			fmt.Println("[enter] voltar")
			if _, ok := <-linhas; !ok {
				return
			}
			shell.Voltar()
		}
	}
}

// runQuiz drives one quiz session. Returns false when input ran out and
// the program should exit.
func runQuiz(ctx context.Context, c *app.Container, shell *app.Shell, linhas <-chan string) bool {
	sess, err := c.NovaSessao(ctx, shell.FiltroAtual())
	if err != nil {
		fmt.Println("Falha ao buscar questões; verifique a conexão e tente de novo.")
	}

	if sess.Estado() == session.EstadoSemQuestoes {
		f := sess.Filtro
		fmt.Println("\nOps! Não encontramos nada. Confira os dados no banco:")
		fmt.Printf("  concurso: %q\n  cargo: %q\n  menu: %q\n", f.Concurso, f.Cargo, f.Menu)
		if f.Materia != "" {
			fmt.Printf("  materia: %q\n", f.Materia)
		}
		fmt.Println("[enter] voltar")
		_, ok := <-linhas
		return ok
	}

	for sess.Estado() != session.EstadoFinalizada {
		q := sess.Atual()
		fmt.Printf("\n[%d/%d] %s\n", sess.Indice()+1, sess.Total(), q.Enunciado)
		if q.Menu == models.MenuOriginal {
			for letra, texto := range q.Alternativas {
				fmt.Printf("  %s) %s\n", letra, texto)
			}
		}

		ticker := session.NewTicker(time.Second)
		for sess.Estado() == session.EstadoAguardandoResposta {
			select {
			case <-ticker.C:
				sess.Tick(ctx)
			case linha, ok := <-linhas:
				if !ok {
					ticker.Stop()
					return false
				}
				sess.Responder(ctx, strings.ToUpper(linha))
			}
		}
		ticker.Stop()

		if sess.Resposta() == models.RespostaTempoEsgotado {
			fmt.Println("O tempo acabou!")
		} else if sess.Acertou() {
			fmt.Println("Você acertou!")
		} else {
			fmt.Println("Você errou! Resposta:", q.Resposta)
		}
		fmt.Println("Comentário:", q.Comentario)

		fmt.Println("[enter] próxima, [e] explicação do Professor IA")
		linha, ok := <-linhas
		if !ok {
			return false
		}
		if linha == "e" {
			if task := sess.PedirExplicacao(ctx); task != nil {
				sess.AplicarExplicacao(task, <-task.Resultado)
				fmt.Println(sess.Explicacao())
			}
			if _, ok := <-linhas; !ok {
				return false
			}
		}
		sess.Avancar()
	}

	placar := sess.Placar()
	fmt.Printf("\nSessão finalizada: %d acertos, %d erros\n", placar.Acertos, placar.Erros)
	return true
}
