package candidateRepo

import (
	"context"

	"hireflow/config"
	"hireflow/database"
	"hireflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type CandidateRepository interface {
	Create(ctx context.Context, candidate models.Candidate) (string, error)
	GetByID(ctx context.Context, id string) (*models.Candidate, error)
	ListByJob(ctx context.Context, jobID string) ([]models.Candidate, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoCandidateRepo struct {
	coll *mongo.Collection
}

// NewMongoCandidateRepo returns a new CandidateRepository instance using MongoDB.
func NewMongoCandidateRepo() CandidateRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoCandidateRepo{
		coll: db.Collection("candidates"),
	}
}
