// Package redis provides a Redis-backed registry implementation. It
// exists for deployments that already run Redis and want the registry
// process itself to be restartable without dropping registrations; the
// semantics are otherwise identical to the in-memory backend.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	wregistry "github.com/warefleet/warefleet/internal/registry"
)

const (
	servicesIndexKey = "warefleet:services"
	addressIndexKey  = "warefleet:service-addrs"
)

func serviceKey(id string) string {
	return "warefleet:service:" + id
}

type Backend struct {
	cfg *wregistry.RedisConfig
	rdb *redis.Client
}

func New(cfg *wregistry.RedisConfig) (*Backend, error) {
	if cfg == nil {
		return nil, wregistry.ErrRedisConfigNil
	}

	addr := fmt.Sprintf("%s:%d", cfg.Address, cfg.Port)
	opts := &redis.Options{
		Addr:     addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	}

	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &Backend{cfg: cfg, rdb: rdb}, nil
}

func (b *Backend) Register(ctx context.Context, name, address string) (wregistry.ServiceRecord, error) {
	if b.rdb == nil {
		return wregistry.ServiceRecord{}, errors.New("redis client not initialized")
	}

	rec := wregistry.ServiceRecord{
		ID:           uuid.NewString(),
		Name:         name,
		Address:      address,
		RegisteredAt: time.Now().UTC(),
	}

	// The address index claim is the uniqueness gate; HSetNX is atomic
	// so two concurrent registrations for one address cannot both win.
	claimed, err := b.rdb.HSetNX(ctx, addressIndexKey, address, rec.ID).Result()
	if err != nil {
		return wregistry.ServiceRecord{}, err
	}
	if !claimed {
		return wregistry.ServiceRecord{}, fmt.Errorf("%w: %s", wregistry.ErrAddressInUse, address)
	}

	pipe := b.rdb.Pipeline()
	pipe.HSet(ctx, serviceKey(rec.ID), map[string]any{
		"ID":               rec.ID,
		"Name":             rec.Name,
		"Address":          rec.Address,
		"RegisteredAtUnix": rec.RegisteredAt.UnixNano(),
	})
	pipe.SAdd(ctx, servicesIndexKey, rec.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		_ = b.rdb.HDel(ctx, addressIndexKey, address).Err()
		return wregistry.ServiceRecord{}, err
	}

	return rec, nil
}

func (b *Backend) Unregister(ctx context.Context, id string) error {
	if b.rdb == nil {
		return errors.New("redis client not initialized")
	}

	data, err := b.rdb.HGetAll(ctx, serviceKey(id)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return err
	}
	if len(data) == 0 {
		// Unknown id: removal is idempotent.
		return nil
	}

	pipe := b.rdb.Pipeline()
	pipe.Del(ctx, serviceKey(id))
	pipe.SRem(ctx, servicesIndexKey, id)
	if addr, ok := data["Address"]; ok {
		pipe.HDel(ctx, addressIndexKey, addr)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (b *Backend) Find(ctx context.Context, key string) (wregistry.ServiceRecord, error) {
	if b.rdb == nil {
		return wregistry.ServiceRecord{}, errors.New("redis client not initialized")
	}

	data, err := b.rdb.HGetAll(ctx, serviceKey(key)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return wregistry.ServiceRecord{}, err
	}
	if len(data) > 0 {
		return parseRecord(data)
	}

	records, err := b.List(ctx)
	if err != nil {
		return wregistry.ServiceRecord{}, err
	}
	for _, rec := range records {
		if rec.Name == key {
			return rec, nil
		}
	}
	return wregistry.ServiceRecord{}, fmt.Errorf("%w: %s", wregistry.ErrServiceNotFound, key)
}

func (b *Backend) List(ctx context.Context) ([]wregistry.ServiceRecord, error) {
	if b.rdb == nil {
		return nil, errors.New("redis client not initialized")
	}

	ids, err := b.rdb.SMembers(ctx, servicesIndexKey).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []wregistry.ServiceRecord{}, nil
	}

	pipe := b.rdb.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, pipe.HGetAll(ctx, serviceKey(id)))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	staleIDs := make([]string, 0)
	records := make([]wregistry.ServiceRecord, 0, len(ids))
	for i, cmd := range cmds {
		id := ids[i]
		data, err := cmd.Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return nil, err
		}
		if len(data) == 0 {
			staleIDs = append(staleIDs, id)
			continue
		}

		rec, err := parseRecord(data)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if len(staleIDs) > 0 {
		staleArgs := make([]any, 0, len(staleIDs))
		for _, id := range staleIDs {
			staleArgs = append(staleArgs, id)
		}
		pipe := b.rdb.Pipeline()
		pipe.SRem(ctx, servicesIndexKey, staleArgs...)
		_, _ = pipe.Exec(ctx)
	}

	return records, nil
}

func (b *Backend) Close(ctx context.Context) error {
	if b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}

func parseRecord(data map[string]string) (wregistry.ServiceRecord, error) {
	rec := wregistry.ServiceRecord{
		ID:      data["ID"],
		Name:    data["Name"],
		Address: data["Address"],
	}
	if rec.ID == "" {
		return wregistry.ServiceRecord{}, errors.New("service record missing ID")
	}
	if raw, ok := data["RegisteredAtUnix"]; ok {
		ns, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return wregistry.ServiceRecord{}, fmt.Errorf("parse RegisteredAtUnix: %w", err)
		}
		rec.RegisteredAt = time.Unix(0, ns).UTC()
	}
	return rec, nil
}
