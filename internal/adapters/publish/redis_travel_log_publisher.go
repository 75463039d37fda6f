package publish

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"train-dispatch-service/internal/domain"
	"train-dispatch-service/internal/platform/obs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "travel-log:"

// Wire form of a movement record pushed to Redis.
type MovementMessage struct {
	RunID       string   `json:"run_id"`
	Seq         int      `json:"seq"`
	TimeSeconds int      `json:"time_seconds"`
	Train       string   `json:"train"`
	From        string   `json:"from"`
	To          string   `json:"to"`
	PickUps     []string `json:"pick_ups"`
	DropOffs    []string `json:"drop_offs"`
}

// RedisTravelLogPublisher pushes the records of a finished run onto a
// Redis list keyed by run ID, one JSON message per record in log order.
type RedisTravelLogPublisher struct {
	Client    redis.UniversalClient
	KeyPrefix string
	// TTL expires the list after publishing. Zero keeps it forever.
	TTL time.Duration
}

func NewRedisTravelLogPublisher(client redis.UniversalClient, ttl time.Duration) *RedisTravelLogPublisher {
	return &RedisTravelLogPublisher{Client: client, KeyPrefix: defaultKeyPrefix, TTL: ttl}
}

// Key returns the list key holding the records of one run.
func (p *RedisTravelLogPublisher) Key(runID uuid.UUID) string {
	prefix := p.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}
	return prefix + runID.String()
}

func (p *RedisTravelLogPublisher) SaveRun(
	ctx context.Context,
	runID uuid.UUID,
	records []domain.MovementRecord,
) (err error) {
	defer obs.Time(ctx, "travellog.redis.SaveRun")(&err)

	if p.Client == nil {
		return errors.New("redis publisher: client is nil")
	}
	if runID == uuid.Nil {
		return errors.New("publish travel log: run id must be set")
	}
	if len(records) == 0 {
		return nil
	}

	values := make([]any, 0, len(records))
	for i, rec := range records {
		b, err := json.Marshal(toMessage(runID, i+1, rec))
		if err != nil {
			return fmt.Errorf("publish travel log seq=%d: encode: %w", i+1, err)
		}
		values = append(values, b)
	}

	key := p.Key(runID)
	pipe := p.Client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	if p.TTL > 0 {
		pipe.Expire(ctx, key, p.TTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish travel log %s: %w", key, err)
	}

	return nil
}

// Read back the messages of one run in log order.
func (p *RedisTravelLogPublisher) ListRun(ctx context.Context, runID uuid.UUID) ([]domain.MovementRecord, error) {
	if p.Client == nil {
		return nil, errors.New("redis publisher: client is nil")
	}

	raw, err := p.Client.LRange(ctx, p.Key(runID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list travel log %s: %w", p.Key(runID), err)
	}

	out := make([]domain.MovementRecord, 0, len(raw))
	for i, s := range raw {
		var msg MovementMessage
		if err := json.Unmarshal([]byte(s), &msg); err != nil {
			return nil, fmt.Errorf("list travel log: decode message #%d: %w", i+1, err)
		}
		out = append(out, msg.record())
	}
	return out, nil
}

func toMessage(runID uuid.UUID, seq int, rec domain.MovementRecord) MovementMessage {
	return MovementMessage{
		RunID:       runID.String(),
		Seq:         seq,
		TimeSeconds: rec.TimeSeconds,
		Train:       rec.Train,
		From:        string(rec.From),
		To:          string(rec.To),
		PickUps:     nonNil(rec.PickUps),
		DropOffs:    nonNil(rec.DropOffs),
	}
}

func (m MovementMessage) record() domain.MovementRecord {
	return domain.MovementRecord{
		TimeSeconds: m.TimeSeconds,
		Train:       m.Train,
		From:        domain.StationName(m.From),
		To:          domain.StationName(m.To),
		PickUps:     nonNil(m.PickUps),
		DropOffs:    nonNil(m.DropOffs),
	}
}

func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
