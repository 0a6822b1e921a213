package repository

import (
	"context"

	"github.com/BRTheDuality/passae/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type ConcursoRepository struct {
	Col *mongo.Collection
}

func NewConcursoRepository(db *mongo.Database) *ConcursoRepository {
	return &ConcursoRepository{Col: db.Collection("concursos")}
}

// FindAll returns every stored contest. Malformed records are repaired
// by Normalize instead of rejected.
func (r *ConcursoRepository) FindAll(ctx context.Context) ([]models.Concurso, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var concursos []models.Concurso
	for cur.Next(ctx) {
		var c models.Concurso
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		c.Normalize()
		concursos = append(concursos, c)
	}
	return concursos, nil
}
