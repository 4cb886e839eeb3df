package negotiation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/roadsaver-dev/account-manager/backend/internal/domain"
)

// Record is what is kept for an in-flight request: the request itself and the
// quote dialog, if a quote has arrived.
type Record struct {
	Request domain.OngoingRequest `json:"request"`
	Dialog  *Snapshot             `json:"dialog"`
}

type RedisStore struct {
	rdb        *redis.Client
	expiration time.Duration
	timeout    time.Duration
}

func NewRedisStore(rdb *redis.Client, expiration, timeout time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, expiration: expiration, timeout: timeout}
}

func requestKey(id uuid.UUID) string {
	return fmt.Sprintf("ongoing_request_%s", id)
}

func UpdatesChannel(id uuid.UUID) string {
	return fmt.Sprintf("ongoing_request_updates_%s", id)
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	data, err := s.rdb.Get(ctx, requestKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rec := &Record{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Save stores the record and publishes it to subscribers of the request.
func (s *RedisStore) Save(ctx context.Context, rec *Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.rdb.Set(ctx, requestKey(rec.Request.ID), data, s.expiration).Err(); err != nil {
		return err
	}
	return s.rdb.Publish(ctx, UpdatesChannel(rec.Request.ID), data).Err()
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.rdb.Del(ctx, requestKey(id)).Err(); err != nil {
		return err
	}
	return s.rdb.Publish(ctx, UpdatesChannel(id), "null").Err()
}

// Subscribe streams every saved version of the request until ctx is done.
func (s *RedisStore) Subscribe(ctx context.Context, id uuid.UUID) (<-chan []byte, func() error) {
	ps := s.rdb.Subscribe(ctx, UpdatesChannel(id))
	out := make(chan []byte)

	go func() {
		defer close(out)
		ch := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, ps.Close
}
