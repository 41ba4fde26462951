package candidateRepo

import (
	"context"
	"errors"
	"time"

	"hireflow/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new scored candidate record and returns its ID.
func (r *mongoCandidateRepo) Create(ctx context.Context, candidate models.Candidate) (string, error) {
	if candidate.ID == "" {
		candidate.ID = uuid.New().String()
	}
	candidate.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, candidate)
	if err != nil {
		return "", err
	}
	return candidate.ID, nil
}

// GetByID returns a candidate by its ID.
func (r *mongoCandidateRepo) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	var candidate models.Candidate
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&candidate)
	if err != nil {
		return nil, err
	}
	return &candidate, nil
}

// ListByJob fetches all candidates scored against a job, ranked by match
// score descending.
func (r *mongoCandidateRepo) ListByJob(ctx context.Context, jobID string) ([]models.Candidate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "matchScore", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"jobId": jobID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var candidates []models.Candidate
	if err := cursor.All(ctx, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}

// DeleteByID removes a candidate record by ID.
func (r *mongoCandidateRepo) DeleteByID(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("candidate not found")
	}
	return nil
}
