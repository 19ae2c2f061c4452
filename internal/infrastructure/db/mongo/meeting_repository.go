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

const meetingsCollection = "meetings"

// MeetingRepository is the MongoDB-backed meeting store.
type MeetingRepository struct {
	coll *mongo.Collection
}

func NewMeetingRepository(db *mongo.Database) *MeetingRepository {
	return &MeetingRepository{coll: db.Collection(meetingsCollection)}
}

type meetingDoc struct {
	ID            string    `bson:"_id"`
	InstitutionID string    `bson:"institution_id"`
	Title         string    `bson:"title"`
	ScheduledAt   time.Time `bson:"scheduled_at"`
	Participants  []string  `bson:"participants"`
	Decisions     []string  `bson:"decisions"`
	CreatedAt     time.Time `bson:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func toMeetingDoc(m *domain.Meeting) meetingDoc {
	return meetingDoc{
		ID:            m.ID,
		InstitutionID: m.InstitutionID,
		Title:         m.Title,
		ScheduledAt:   m.ScheduledAt,
		Participants:  m.Participants,
		Decisions:     m.Decisions,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (d meetingDoc) toDomain() *domain.Meeting {
	participants := d.Participants
	if participants == nil {
		participants = []string{}
	}
	decisions := d.Decisions
	if decisions == nil {
		decisions = []string{}
	}
	return &domain.Meeting{
		ID:            d.ID,
		InstitutionID: d.InstitutionID,
		Title:         d.Title,
		ScheduledAt:   d.ScheduledAt.UTC(),
		Participants:  participants,
		Decisions:     decisions,
		CreatedAt:     d.CreatedAt.UTC(),
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

func (r *MeetingRepository) Save(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error) {
	if _, err := r.coll.InsertOne(ctx, toMeetingDoc(meeting)); err != nil {
		return nil, fmt.Errorf("insert meeting: %w", err)
	}
	return meeting, nil
}

func (r *MeetingRepository) FindByID(ctx context.Context, id string) (*domain.Meeting, error) {
	var doc meetingDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("find meeting: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *MeetingRepository) Update(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error) {
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": meeting.ID}, toMeetingDoc(meeting))
	if err != nil {
		return nil, fmt.Errorf("update meeting: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrMeetingNotFound
	}
	return meeting, nil
}

func (r *MeetingRepository) List(ctx context.Context, institutionID string) ([]*domain.Meeting, error) {
	cur, err := r.coll.Find(ctx, bson.M{"institution_id": institutionID})
	if err != nil {
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	defer cur.Close(ctx)

	var meetings []*domain.Meeting
	for cur.Next(ctx) {
		var doc meetingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode meeting: %w", err)
		}
		meetings = append(meetings, doc.toDomain())
	}
	return meetings, cur.Err()
}
