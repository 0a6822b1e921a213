package repository

import (
	"context"
	"time"

	"github.com/BRTheDuality/passae/internal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// DesempenhoRepository stores one document per answered quick question.
// It is the remote mirror of the local performance record.
type DesempenhoRepository struct {
	Col *mongo.Collection
}

func NewDesempenhoRepository(db *mongo.Database) *DesempenhoRepository {
	return &DesempenhoRepository{Col: db.Collection("desempenho")}
}

func (r *DesempenhoRepository) Create(ctx context.Context, ev *models.RespostaEvento) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}
	_, err := r.Col.InsertOne(ctx, ev)
	return err
}
