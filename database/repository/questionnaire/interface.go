package questionnaireRepo

import (
	"context"
	"errors"

	"nutrify/database"
	"nutrify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no record exists for a session identifier.
var ErrNotFound = errors.New("questionnaire record not found")

// Repository owns the canonical questionnaire records. Records are write-once:
// there is no update or delete in the submission flow.
type Repository interface {
	Save(ctx context.Context, record models.QuestionnaireRecord) (*models.QuestionnaireRecord, error)
	FindBySessionID(ctx context.Context, sessionID string) (*models.QuestionnaireRecord, error)
}

type mongoQuestionnaireRepo struct {
	coll *mongo.Collection
}

// NewMongoQuestionnaireRepo returns a Repository backed by MongoDB.
func NewMongoQuestionnaireRepo() Repository {
	db := database.MongoClient.Database("nutrify")
	return &mongoQuestionnaireRepo{
		coll: db.Collection("questionnaires"),
	}
}
