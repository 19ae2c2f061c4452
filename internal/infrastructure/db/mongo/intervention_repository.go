package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Tripno08/innerview-backend/internal/core/domain"
)

const interventionsCollection = "interventions"

// InterventionRepository is the MongoDB-backed intervention store.
type InterventionRepository struct {
	coll *mongo.Collection
}

func NewInterventionRepository(db *mongo.Database) *InterventionRepository {
	return &InterventionRepository{coll: db.Collection(interventionsCollection)}
}

type interventionDoc struct {
	ID          string    `bson:"_id"`
	StudentID   string    `bson:"student_id"`
	Difficulty  string    `bson:"difficulty,omitempty"`
	Description string    `bson:"description"`
	Status      string    `bson:"status"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func toInterventionDoc(i *domain.Intervention) interventionDoc {
	return interventionDoc{
		ID:          i.ID,
		StudentID:   i.StudentID,
		Difficulty:  i.Difficulty,
		Description: i.Description,
		Status:      string(i.Status),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func (d interventionDoc) toDomain() *domain.Intervention {
	return &domain.Intervention{
		ID:          d.ID,
		StudentID:   d.StudentID,
		Difficulty:  d.Difficulty,
		Description: d.Description,
		Status:      domain.InterventionStatus(d.Status),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}
}

func (r *InterventionRepository) Save(ctx context.Context, intervention *domain.Intervention) (*domain.Intervention, error) {
	if _, err := r.coll.InsertOne(ctx, toInterventionDoc(intervention)); err != nil {
		return nil, fmt.Errorf("insert intervention: %w", err)
	}
	return intervention, nil
}

func (r *InterventionRepository) FindByID(ctx context.Context, id string) (*domain.Intervention, error) {
	var doc interventionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrInterventionNotFound
		}
		return nil, fmt.Errorf("find intervention: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *InterventionRepository) Update(ctx context.Context, intervention *domain.Intervention) (*domain.Intervention, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": intervention.ID}, toInterventionDoc(intervention))
	if err != nil {
		return nil, fmt.Errorf("update intervention: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrInterventionNotFound
	}
	return intervention, nil
}

func (r *InterventionRepository) ListByStudent(ctx context.Context, studentID string) ([]*domain.Intervention, error) {
	cur, err := r.coll.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, fmt.Errorf("list interventions: %w", err)
	}
	defer cur.Close(ctx)

	var interventions []*domain.Intervention
	for cur.Next(ctx) {
		var doc interventionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode intervention: %w", err)
		}
		interventions = append(interventions, doc.toDomain())
	}
	return interventions, cur.Err()
}
