package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const membershipCollection = "institution_members"

// MembershipRepository answers institution membership queries from the
// institution_members collection.
type MembershipRepository struct {
	coll *mongo.Collection
}

func NewMembershipRepository(db *mongo.Database) *MembershipRepository {
	return &MembershipRepository{coll: db.Collection(membershipCollection)}
}

func (r *MembershipRepository) IsMember(ctx context.Context, userID, institutionID string) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{
		"user_id":        userID,
		"institution_id": institutionID,
	})
	if err != nil {
		return false, fmt.Errorf("membership lookup: %w", err)
	}
	return n > 0, nil
}
