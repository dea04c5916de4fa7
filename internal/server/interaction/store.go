// Package interaction keeps short-lived login interaction state in Redis:
// pending authorization requests written by the protocol engine, external
// login state and logout contexts.
package interaction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/idgateway/internal/common"
	"github.com/dmitrijs2005/idgateway/internal/server/models"
	"github.com/redis/go-redis/v9"
)

const (
	requestPrefix  = "idp:request:"
	externalPrefix = "idp:external:"
	logoutPrefix   = "idp:logout:"
)

// LogoutContext is what the engine records for an end-session request.
type LogoutContext struct {
	ClientID              string `json:"client_id,omitempty"`
	PostLogoutRedirectURI string `json:"post_logout_redirect_uri,omitempty"`
}

// ExternalState is kept between the external challenge and its callback.
type ExternalState struct {
	Scheme    string `json:"scheme"`
	ReturnURL string `json:"return_url"`
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisClient(cfg RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// PutRequest records the pending authorization request behind returnRef.
func (s *Store) PutRequest(ctx context.Context, returnRef string, p models.PendingRequestContext) error {
	if returnRef == "" {
		return fmt.Errorf("empty return reference")
	}
	return s.put(ctx, requestPrefix+returnRef, p)
}

// Resolve returns the pending request behind returnRef. An empty or unknown
// reference yields common.ErrorNotFound; a Redis failure is returned wrapped.
func (s *Store) Resolve(ctx context.Context, returnRef string) (*models.PendingRequestContext, error) {
	if returnRef == "" {
		return nil, common.ErrorNotFound
	}

	p := &models.PendingRequestContext{}
	if err := s.get(ctx, requestPrefix+returnRef, p, false); err != nil {
		return nil, err
	}
	return p, nil
}

// PutExternalState stores st under a fresh random state value and returns it.
func (s *Store) PutExternalState(ctx context.Context, st ExternalState) (string, error) {
	b, err := json.Marshal(st)
	if err != nil {
		return "", fmt.Errorf("serialize external state: %w", err)
	}

	for range 3 {
		state, err := common.MakeRandHexString(16)
		if err != nil {
			return "", err
		}
		ok, err := s.rdb.SetNX(ctx, externalPrefix+state, b, s.ttl).Result()
		if err != nil {
			return "", fmt.Errorf("store external state in redis: %w", err)
		}
		if ok {
			return state, nil
		}
	}

	return "", fmt.Errorf("failed to generate unique state")
}

// RedeemExternalState returns and deletes the state. A state can be redeemed once.
func (s *Store) RedeemExternalState(ctx context.Context, state string) (*ExternalState, error) {
	if state == "" {
		return nil, common.ErrorNotFound
	}
	st := &ExternalState{}
	if err := s.get(ctx, externalPrefix+state, st, true); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Store) PutLogout(ctx context.Context, logoutID string, lc LogoutContext) error {
	if logoutID == "" {
		return fmt.Errorf("empty logout id")
	}
	return s.put(ctx, logoutPrefix+logoutID, lc)
}

// RedeemLogout returns and deletes the logout context.
func (s *Store) RedeemLogout(ctx context.Context, logoutID string) (*LogoutContext, error) {
	if logoutID == "" {
		return nil, common.ErrorNotFound
	}
	lc := &LogoutContext{}
	if err := s.get(ctx, logoutPrefix+logoutID, lc, true); err != nil {
		return nil, err
	}
	return lc, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

func (s *Store) Close() error {
	return s.rdb.Close()
}

func (s *Store) put(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", key, err)
	}
	if err := s.rdb.Set(ctx, key, b, s.ttl).Err(); err != nil {
		return fmt.Errorf("store in redis: %w", err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, key string, v any, del bool) error {
	var (
		val string
		err error
	)
	if del {
		val, err = s.rdb.GetDel(ctx, key).Result()
	} else {
		val, err = s.rdb.Get(ctx, key).Result()
	}
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("retrieve from redis: %w", err)
	}

	if err := json.Unmarshal([]byte(val), v); err != nil {
		return fmt.Errorf("deserialize %s: %w", key, err)
	}
	return nil
}
