package explain

import "fmt"

func buildPrompt(enunciado, resposta, comentario string) string {
	return fmt.Sprintf(`Você é o Professor PassaAê, tutor especializado em concursos públicos.
Explique de forma didática e objetiva por que a resposta correta para a questão abaixo é %q.

ENUNCIADO: %s
DICA TÉCNICA: %s

Sua explicação deve ser curta, motivadora e focada na lógica da aprovação.`,
		resposta, enunciado, comentario)
}
