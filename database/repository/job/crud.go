package jobRepo

import (
	"context"
	"errors"
	"time"

	"hireflow/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a summarized job description and returns its ID.
func (r *mongoJobRepo) Create(ctx context.Context, job models.JobDescription) (string, error) {
	if job.ID == "" {
		job.ID = uuid.New().String()
	}
	job.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, job)
	if err != nil {
		return "", err
	}
	return job.ID, nil
}

// GetByID returns a job description by its ID.
func (r *mongoJobRepo) GetByID(ctx context.Context, id string) (*models.JobDescription, error) {
	var job models.JobDescription
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&job)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// List fetches all job descriptions, newest first.
func (r *mongoJobRepo) List(ctx context.Context) ([]models.JobDescription, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []models.JobDescription
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// DeleteByID removes a job description by ID.
func (r *mongoJobRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("job description not found")
	}
	return nil
}
