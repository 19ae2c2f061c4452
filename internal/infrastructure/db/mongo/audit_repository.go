package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Tripno08/innerview-backend/internal/core/domain"
)

const auditCollection = "audit_events"

// AuditRepository is the append-only audit store.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	ActorID  string    `bson:"actor_id"`
	Action   string    `bson:"action"`
	Entity   string    `bson:"entity"`
	EntityID string    `bson:"entity_id,omitempty"`
	Occurred time.Time `bson:"occurred"`
}

func (r *AuditRepository) Insert(ctx context.Context, event domain.AuditEvent) error {
	_, err := r.coll.InsertOne(ctx, auditDoc{
		ActorID:  event.ActorID,
		Action:   string(event.Action),
		Entity:   event.Entity,
		EntityID: event.EntityID,
		Occurred: event.Occurred,
	})
	if err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

func (r *AuditRepository) ListByActor(ctx context.Context, actorID string, limit int) ([]domain.AuditEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "occurred", Value: -1}}).
		SetLimit(int64(limit))

	cur, err := r.coll.Find(ctx, bson.M{"actor_id": actorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer cur.Close(ctx)

	var events []domain.AuditEvent
	for cur.Next(ctx) {
		var doc auditDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode audit event: %w", err)
		}
		events = append(events, domain.AuditEvent{
			ActorID:  doc.ActorID,
			Action:   domain.AuditAction(doc.Action),
			Entity:   doc.Entity,
			EntityID: doc.EntityID,
			Occurred: doc.Occurred.UTC(),
		})
	}
	return events, cur.Err()
}
