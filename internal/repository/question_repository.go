package repository

import (
	"context"
	"strings"

	"github.com/BRTheDuality/passae/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questoes")}
}

// FindByFilter returns the questions matching the exact-match filter
// {concurso, cargo, menu} plus materia when given. Inputs are trimmed
// before matching, mirroring how the records are stored.
func (r *QuestionRepository) FindByFilter(ctx context.Context, concurso, cargo, menu, materia string) ([]models.Question, error) {
	filter := bson.M{
		"concurso": strings.TrimSpace(concurso),
		"cargo":    strings.TrimSpace(cargo),
		"menu":     strings.TrimSpace(menu),
	}
	if m := strings.TrimSpace(materia); m != "" {
		filter["materia"] = m
	}

	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questoes []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		q.Normalize()
		questoes = append(questoes, q)
	}
	return questoes, nil
}
