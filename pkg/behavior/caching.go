package behavior

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/mateusmacedo/go-mediator/pkg/application"
	"github.com/mateusmacedo/go-mediator/pkg/domain"
)

// queryCaching caches query results under a content-derived key. A fresh
// entry is returned without calling next; otherwise next runs once and its
// result is stored for the configured TTL.
//
// The key is the SHA-256 of the query name plus the JSON-marshalled payload,
// so equal payload content hits the same entry regardless of value identity.
// Results must round-trip through JSON. Read-path store errors fail the
// dispatch; a write-back error is logged and the fresh result is still
// returned, since the handler already produced it.
//
// Caching applies to queries only. Commands bypass it structurally: the
// command bus carries no caching behavior.
type queryCaching[Q domain.Query[D], D any, R any] struct {
	store  CacheStore
	ttl    time.Duration
	logger application.AppLogger
}

func NewQueryCaching[Q domain.Query[D], D any, R any](store CacheStore, ttl time.Duration, logger application.AppLogger) application.QueryBehavior[Q, D, R] {
	return &queryCaching[Q, D, R]{store: store, ttl: ttl, logger: logger}
}

func (b *queryCaching[Q, D, R]) Handle(ctx context.Context, query Q, next application.QueryNext[R]) (R, error) {
	var zero R

	key, err := cacheKey(query.QueryName(), query.Payload())
	if err != nil {
		return zero, err
	}

	data, ok, err := b.store.Get(ctx, key)
	if err != nil {
		return zero, err
	}
	if ok {
		var cached R
		if err := json.Unmarshal(data, &cached); err != nil {
			return zero, err
		}
		b.logger.Debug(ctx, "cache hit", map[string]interface{}{
			"request_name": query.QueryName(),
			"cache_key":    key,
		})
		return cached, nil
	}

	result, err := next(ctx)
	if err != nil {
		return zero, err
	}

	data, err = application.MarshalPayload(result)
	if err != nil {
		return zero, err
	}
	if err := b.store.Set(ctx, key, data, b.ttl); err != nil {
		application.LogError(ctx, b.logger, "cache write failed", err, map[string]interface{}{
			"request_name": query.QueryName(),
			"cache_key":    key,
		})
	}

	return result, nil
}

func cacheKey[D any](queryName string, payload D) (string, error) {
	data, err := application.MarshalPayload(payload)
	if err != nil {
		return "", err
	}

	h := sha256.New()
	h.Write([]byte(queryName))
	h.Write([]byte{0})
	h.Write(data)
	return "query:" + hex.EncodeToString(h.Sum(nil)), nil
}
