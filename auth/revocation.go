// auth/revocation.go
package auth

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tgechev/gonotes/cache"
	logger "github.com/tgechev/gonotes/logging"
)

// RevocationList records tokens invalidated before their natural expiry.
// Each entry is keyed by owner and token expiry and lives exactly as long as
// the token it revokes, so the list never outgrows the set of live tokens.
type RevocationList struct {
	store cache.Cache
}

func NewRevocationList(store cache.Cache) *RevocationList {
	return &RevocationList{store: store}
}

// Revoke marks the token owned by userID and expiring at exp as invalid.
// Revoking an already-expired token is a no-op. Idempotent.
func (r *RevocationList) Revoke(ctx context.Context, userID string, exp time.Time) error {
	ttl := time.Until(exp)
	if ttl <= 0 {
		return nil
	}
	key := cache.LogoutKey(userID, exp.Unix())
	if err := r.store.Put(ctx, key, []byte(userID), ttl); err != nil {
		return err
	}
	logger.Debug("Token revoked",
		zap.String("userID", userID),
		zap.Time("tokenExpiry", exp))
	return nil
}

// IsRevoked reports whether a live revocation entry exists for the token
// owned by userID and expiring at exp.
func (r *RevocationList) IsRevoked(ctx context.Context, userID string, exp time.Time) (bool, error) {
	return r.store.Has(ctx, cache.LogoutKey(userID, exp.Unix()))
}
