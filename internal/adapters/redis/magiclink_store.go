package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stackfall/workdesk/internal/domain/party"
)

// magicLinkRecord is the stored shape of a magic-link token. Expiry is
// recorded explicitly as well as via the Redis TTL so a clock-skewed
// replica cannot serve a token past its absolute deadline.
type magicLinkRecord struct {
	ResourceID   string    `json:"resource_id"`
	SubjectEmail string    `json:"subject_email"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// MagicLinkStore holds magic-link tokens in Redis so any replica can
// consume a token issued by another. Consume uses GETDEL, which removes
// the entry atomically on first lookup: concurrent replays race for one
// destructive read and at most one caller ever validates successfully.
type MagicLinkStore struct {
	client redis.UniversalClient
	prefix string
}

// NewMagicLinkStore creates a Redis-backed magic-link token store.
func NewMagicLinkStore(client redis.UniversalClient) *MagicLinkStore {
	return &MagicLinkStore{
		client: client,
		prefix: "magiclink:",
	}
}

func (s *MagicLinkStore) Issue(ctx context.Context, resourceID, subjectEmail string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = time.Hour
	}
	rec := magicLinkRecord{
		ResourceID:   resourceID,
		SubjectEmail: strings.ToLower(strings.TrimSpace(subjectEmail)),
		ExpiresAt:    time.Now().Add(ttl),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", fmt.Errorf("marshal magic link: %w", err)
	}

	token := party.NewToken(16)
	if err := s.client.Set(ctx, s.prefix+token, data, ttl).Err(); err != nil {
		return "", fmt.Errorf("store magic link: %w", err)
	}
	return token, nil
}

func (s *MagicLinkStore) Consume(ctx context.Context, token, resourceID, subjectEmail string) (bool, error) {
	data, err := s.client.GetDel(ctx, s.prefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis getdel: %w", err)
	}

	var rec magicLinkRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return false, nil
	}
	if rec.ResourceID != resourceID {
		return false, nil
	}
	if rec.SubjectEmail != strings.ToLower(strings.TrimSpace(subjectEmail)) {
		return false, nil
	}
	if !time.Now().Before(rec.ExpiresAt) {
		return false, nil
	}
	return true, nil
}
