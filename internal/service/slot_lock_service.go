package service

//go:generate mockgen -source=slot_lock_service.go -destination=mocks/mock_slot_lock_service.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// ErrSlotLocked is returned when another request holds the slot lock.
var ErrSlotLocked = errors.New("appointment slot is being booked by another request")

const (
	RedisSlotLockKeyPrefix = "appointment:slot:"

	defaultSlotLockTTL = 5 * time.Second
)

// releaseSlotLockScript deletes the lock only if it still holds the caller's
// token, so an expired lock re-acquired by someone else is left alone.
var releaseSlotLockScript = redis.NewScript(`
	if redis.call('GET', KEYS[1]) == ARGV[1] then
		return redis.call('DEL', KEYS[1])
	end
	return 0
`)

// SlotKey identifies one bookable doctor slot.
type SlotKey struct {
	DoctorID int
	Date     string // YYYY-MM-DD
	Time     string // HH:MM:SS
}

func (k SlotKey) String() string {
	return fmt.Sprintf("%s%d:%s:%s", RedisSlotLockKeyPrefix, k.DoctorID, k.Date, k.Time)
}

// SlotLocker guards a slot across API instances while a booking transaction
// runs. The database unique index remains the final arbiter.
type SlotLocker interface {
	// Acquire returns an owner token, or ErrSlotLocked if the slot is held.
	Acquire(ctx context.Context, key SlotKey) (string, error)
	// Release drops the lock if token still owns it.
	Release(ctx context.Context, key SlotKey, token string) error
}

type redisSlotLocker struct {
	redisClient *redis.Client
	log         *logrus.Logger
	ttl         time.Duration
}

func NewSlotLocker(redisClient *redis.Client, log *logrus.Logger, ttl time.Duration) SlotLocker {
	if ttl <= 0 {
		ttl = defaultSlotLockTTL
	}
	return &redisSlotLocker{
		redisClient: redisClient,
		log:         log,
		ttl:         ttl,
	}
}

func (l *redisSlotLocker) Acquire(ctx context.Context, key SlotKey) (string, error) {
	token := uuid.New().String()

	ok, err := l.redisClient.SetNX(ctx, key.String(), token, l.ttl).Result()
	if err != nil {
		l.log.Warnf("Failed to acquire slot lock %s: %+v", key, err)
		return "", fmt.Errorf("acquire slot lock %s: %w", key, err)
	}
	if !ok {
		return "", ErrSlotLocked
	}

	return token, nil
}

func (l *redisSlotLocker) Release(ctx context.Context, key SlotKey, token string) error {
	if err := releaseSlotLockScript.Run(ctx, l.redisClient, []string{key.String()}, token).Err(); err != nil {
		l.log.Warnf("Failed to release slot lock %s: %+v", key, err)
		return fmt.Errorf("release slot lock %s: %w", key, err)
	}
	return nil
}
