package jobRepo

import (
	"context"

	"hireflow/config"
	"hireflow/database"
	"hireflow/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type JobRepository interface {
	Create(ctx context.Context, job models.JobDescription) (string, error)
	GetByID(ctx context.Context, id string) (*models.JobDescription, error)
	List(ctx context.Context) ([]models.JobDescription, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoJobRepo struct {
	coll *mongo.Collection
}

// NewMongoJobRepo returns a new JobRepository instance using MongoDB.
func NewMongoJobRepo() JobRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoJobRepo{
		coll: db.Collection("job_descriptions"),
	}
}
