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

const studentsCollection = "students"

// StudentRepository is the MongoDB-backed student store.
type StudentRepository struct {
	coll *mongo.Collection
}

func NewStudentRepository(db *mongo.Database) *StudentRepository {
	return &StudentRepository{coll: db.Collection(studentsCollection)}
}

type studentDoc struct {
	ID            string    `bson:"_id"`
	InstitutionID string    `bson:"institution_id"`
	Name          string    `bson:"name"`
	BirthDate     time.Time `bson:"birth_date"`
	Grade         string    `bson:"grade"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func toStudentDoc(s *domain.Student) studentDoc {
	return studentDoc{
		ID:            s.ID,
		InstitutionID: s.InstitutionID,
		Name:          s.Name,
		BirthDate:     s.BirthDate,
		Grade:         s.Grade,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func (d studentDoc) toDomain() *domain.Student {
	return &domain.Student{
		ID:            d.ID,
		InstitutionID: d.InstitutionID,
		Name:          d.Name,
		BirthDate:     d.BirthDate.UTC(),
		Grade:         d.Grade,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

func (r *StudentRepository) Save(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	if _, err := r.coll.InsertOne(ctx, toStudentDoc(student)); err != nil {
		return nil, fmt.Errorf("insert student: %w", err)
	}
	return student, nil
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (*domain.Student, error) {
	var doc studentDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *StudentRepository) Update(ctx context.Context, student *domain.Student) (*domain.Student, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": student.ID}, toStudentDoc(student))
	if err != nil {
		return nil, fmt.Errorf("update student: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrStudentNotFound
	}
	return student, nil
}

func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrStudentNotFound
	}
	return nil
}

func (r *StudentRepository) List(ctx context.Context, institutionID string) ([]*domain.Student, error) {
	filter := bson.M{}
	if institutionID != "" {
		filter["institution_id"] = institutionID
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer cur.Close(ctx)

	var students []*domain.Student
	for cur.Next(ctx) {
		var doc studentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode student: %w", err)
		}
		students = append(students, doc.toDomain())
	}
	return students, cur.Err()
}
