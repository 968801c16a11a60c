package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/iho/gojournal/internal/domain"
	"github.com/iho/gojournal/internal/infrastructure/metrics"
	"github.com/iho/gojournal/internal/usecase"
)

// SnapshotCache is a read-through cache in front of a SnapshotRepository.
// FindByID is served from Redis when possible; every Save invalidates the
// journal's cached snapshot so the next read refills it.
type SnapshotCache struct {
	inner   usecase.SnapshotRepository
	client  *redis.Client
	prefix  string
	ttl     time.Duration
	metrics *metrics.Metrics
}

// NewSnapshotCache creates a new SnapshotCache.
func NewSnapshotCache(inner usecase.SnapshotRepository, client *redis.Client, ttl time.Duration, m *metrics.Metrics) *SnapshotCache {
	return &SnapshotCache{
		inner:   inner,
		client:  client,
		prefix:  "snapshot:",
		ttl:     ttl,
		metrics: m,
	}
}

// Save applies the event through the inner repository and invalidates the
// journal's cached snapshot.
func (c *SnapshotCache) Save(ctx context.Context, event domain.JournalEvent) (domain.JournalEvent, error) {
	applied, err := c.inner.Save(ctx, event)
	if err != nil {
		return nil, err
	}

	key := c.prefix + domain.EventJournalID(event).String()
	if err := c.client.Del(ctx, key).Err(); err != nil {
		// The write already succeeded; a stale cache entry expires on its
		// own, so log through metrics and move on.
		c.observeError("del")
	}
	c.observe("del")

	return applied, nil
}

// FindByID returns the snapshot, from cache when present.
func (c *SnapshotCache) FindByID(ctx context.Context, id domain.ID[domain.JournalHeader]) (*domain.JournalSnapshot, error) {
	key := c.prefix + id.String()

	raw, err := c.client.Get(ctx, key).Result()
	c.observe("get")
	switch {
	case err == nil:
		snapshot, err := decodeSnapshot([]byte(raw))
		if err == nil {
			return snapshot, nil
		}
		// Corrupt entry: fall through to the source of truth.
		c.observeError("decode")
	case !errors.Is(err, redis.Nil):
		c.observeError("get")
	}

	snapshot, err := c.inner.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := encodeSnapshot(snapshot); err == nil {
		if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.observeError("set")
		}
		c.observe("set")
	}

	return snapshot, nil
}

// ListAllLines delegates to the inner repository.
func (c *SnapshotCache) ListAllLines(ctx context.Context) ([]domain.JournalLine, error) {
	return c.inner.ListAllLines(ctx)
}

// ListSnapshots delegates to the inner repository.
func (c *SnapshotCache) ListSnapshots(ctx context.Context) ([]*domain.JournalSnapshot, error) {
	return c.inner.ListSnapshots(ctx)
}

func (c *SnapshotCache) observe(operation string) {
	if c.metrics == nil {
		return
	}
	c.metrics.RedisOperations.WithLabelValues(operation).Inc()
}

func (c *SnapshotCache) observeError(operation string) {
	if c.metrics == nil {
		return
	}
	c.metrics.RedisErrors.WithLabelValues(operation).Inc()
}

// cachedLine mirrors a journal line in JSON. A nil side marks the signed
// representation.
type cachedLine struct {
	AccountCode string          `json:"account_code"`
	AccountName string          `json:"account_name"`
	AccountType string          `json:"account_type"`
	Side        *string         `json:"side,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type cachedSnapshot struct {
	ID      string       `json:"id"`
	Date    time.Time    `json:"date"`
	Lines   []cachedLine `json:"lines"`
	Status  string       `json:"status"`
	Version int          `json:"version"`
}

func encodeSnapshot(snapshot *domain.JournalSnapshot) ([]byte, error) {
	cached := cachedSnapshot{
		ID:      snapshot.ID.String(),
		Date:    snapshot.Date,
		Lines:   make([]cachedLine, 0, len(snapshot.Lines)),
		Status:  string(snapshot.Status),
		Version: snapshot.Version,
	}

	for _, line := range snapshot.Lines {
		cl := cachedLine{
			AccountCode: line.Account.Code.String(),
			AccountName: line.Account.Name.String(),
			AccountType: string(line.Account.Type),
			Description: line.Description,
		}
		switch amount := line.Amount.(type) {
		case domain.Unsigned:
			side := string(amount.Side)
			cl.Side = &side
			cl.Amount = amount.Magnitude.Decimal()
		case domain.Signed:
			cl.Amount = amount.Value
		}
		cached.Lines = append(cached.Lines, cl)
	}

	return json.Marshal(cached)
}

func decodeSnapshot(raw []byte) (*domain.JournalSnapshot, error) {
	var cached cachedSnapshot
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, err
	}

	id, err := domain.ParseID[domain.JournalHeader](cached.ID)
	if err != nil {
		return nil, fmt.Errorf("cached snapshot id %q: %w", cached.ID, err)
	}

	lines := make([]domain.JournalLine, 0, len(cached.Lines))
	for _, cl := range cached.Lines {
		account, err := domain.NewAccount(cl.AccountCode, cl.AccountName, domain.AccountType(cl.AccountType))
		if err != nil {
			return nil, fmt.Errorf("cached line for account %q: %w", cl.AccountCode, err)
		}

		var amount domain.Amount
		if cl.Side != nil {
			unsigned, err := domain.NewUnsigned(cl.Amount, domain.Side(*cl.Side))
			if err != nil {
				return nil, fmt.Errorf("cached amount for account %q: %w", cl.AccountCode, err)
			}
			amount = unsigned
		} else {
			amount = domain.NewSigned(cl.Amount)
		}

		lines = append(lines, domain.JournalLine{
			Account:     account,
			Amount:      amount,
			Description: cl.Description,
		})
	}

	return &domain.JournalSnapshot{
		ID:      id,
		Date:    cached.Date,
		Lines:   lines,
		Status:  domain.JournalStatus(cached.Status),
		Version: cached.Version,
	}, nil
}
