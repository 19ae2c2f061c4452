package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Tripno08/innerview-backend/internal/core/ports"
)

const defaultMembershipTTL = 5 * time.Minute

// MembershipCache wraps an InstitutionMembership source with a Redis cache.
// Cache failures fall through to the source: a broken cache degrades latency,
// never correctness. Key format: member:<user_id>:<institution_id>
type MembershipCache struct {
	client *redis.Client
	source ports.InstitutionMembership
	ttl    time.Duration
}

// NewMembershipCache creates a MembershipCache in front of source.
// A non-positive ttl falls back to defaultMembershipTTL.
func NewMembershipCache(client *redis.Client, source ports.InstitutionMembership, ttl time.Duration) *MembershipCache {
	if ttl <= 0 {
		ttl = defaultMembershipTTL
	}
	return &MembershipCache{client: client, source: source, ttl: ttl}
}

func (c *MembershipCache) IsMember(ctx context.Context, userID, institutionID string) (bool, error) {
	key := c.key(userID, institutionID)

	cached, err := c.client.Get(ctx, key).Result()
	if err == nil {
		return cached == "1", nil
	}

	member, srcErr := c.source.IsMember(ctx, userID, institutionID)
	if srcErr != nil {
		return false, srcErr
	}

	val := "0"
	if member {
		val = "1"
	}
	// Best effort: a failed SET just means a cache miss next time.
	_ = c.client.Set(ctx, key, val, c.ttl).Err()

	return member, nil
}

func (c *MembershipCache) key(userID, institutionID string) string {
	return fmt.Sprintf("member:%s:%s", userID, institutionID)
}
