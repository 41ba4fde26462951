package models

import "time"

// Candidate is an upstream-scored applicant record. CV parsing and scoring
// happen outside this service; only the computed fields arrive here.
type Candidate struct {
	ID         string         `bson:"id" json:"id"`
	JobID      string         `bson:"jobId" json:"jobId"`
	Name       string         `bson:"name" json:"name" binding:"required"`
	Email      string         `bson:"email" json:"email" binding:"required,email"`
	MatchScore int            `bson:"matchScore" json:"matchScore" binding:"min=0,max=100"`
	Breakdown  map[string]int `bson:"breakdown,omitempty" json:"breakdown,omitempty"`
	CreatedAt  time.Time      `bson:"createdAt" json:"createdAt"`
}
