package models

import "time"

// JobDescription is a summarized job posting produced by the upstream
// ingestion pipeline.
type JobDescription struct {
	ID               string    `bson:"id" json:"id"`
	Title            string    `bson:"title" json:"title" binding:"required"`
	Summary          string    `bson:"summary" json:"summary"`
	Skills           []string  `bson:"skills" json:"skills"`
	Responsibilities []string  `bson:"responsibilities" json:"responsibilities"`
	Requirements     []string  `bson:"requirements" json:"requirements"`
	Keywords         []string  `bson:"keywords" json:"keywords"`
	OriginalText     string    `bson:"originalText,omitempty" json:"originalText,omitempty"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
}
