package service

//go:generate mockgen -source=session_store.go -destination=mocks/mock_session_store.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Token kinds kept in the session store. They match jwt.TokenType values.
const (
	SessionAccess  = "access"
	SessionRefresh = "refresh"
)

// SessionStore is the allow-list of issued token IDs. A token whose ID is
// missing has been revoked or has expired.
type SessionStore interface {
	Store(ctx context.Context, userID int, kind, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID int, kind, tokenID string) (bool, error)
	Revoke(ctx context.Context, userID int, kind, tokenID string) error
	RevokeAll(ctx context.Context, userID int) error
}

type redisSessionStore struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewSessionStore(redisClient *redis.Client, log *logrus.Logger) SessionStore {
	return &redisSessionStore{
		redisClient: redisClient,
		log:         log,
	}
}

func sessionKey(userID int, kind, tokenID string) string {
	return fmt.Sprintf("%s_token:%d:%s", kind, userID, tokenID)
}

func (s *redisSessionStore) Store(ctx context.Context, userID int, kind, tokenID string, ttl time.Duration) error {
	if err := s.redisClient.Set(ctx, sessionKey(userID, kind, tokenID), "valid", ttl).Err(); err != nil {
		s.log.Warnf("Failed to store %s token in Redis: %+v", kind, err)
		return err
	}
	return nil
}

func (s *redisSessionStore) Exists(ctx context.Context, userID int, kind, tokenID string) (bool, error) {
	n, err := s.redisClient.Exists(ctx, sessionKey(userID, kind, tokenID)).Result()
	if err != nil {
		s.log.Warnf("Failed to check %s token in Redis: %+v", kind, err)
		return false, err
	}
	return n > 0, nil
}

func (s *redisSessionStore) Revoke(ctx context.Context, userID int, kind, tokenID string) error {
	if err := s.redisClient.Del(ctx, sessionKey(userID, kind, tokenID)).Err(); err != nil {
		s.log.Warnf("Failed to delete %s token: %+v", kind, err)
		return err
	}
	return nil
}

// RevokeAll drops every token issued to userID. Used when the account is
// deleted or its password changes.
func (s *redisSessionStore) RevokeAll(ctx context.Context, userID int) error {
	for _, kind := range []string{SessionAccess, SessionRefresh} {
		pattern := fmt.Sprintf("%s_token:%d:*", kind, userID)
		iter := s.redisClient.Scan(ctx, 0, pattern, 100).Iterator()
		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			s.log.Warnf("Failed to scan %s tokens: %+v", kind, err)
			return err
		}
		if len(keys) > 0 {
			if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
				s.log.Warnf("Failed to delete %s tokens: %+v", kind, err)
				return err
			}
		}
	}
	return nil
}
