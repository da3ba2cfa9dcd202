package out

import (
	"context"
	"fmt"

	"capacita/internal/modules/auth/domain"
	authout "capacita/internal/modules/auth/port/out"
	"capacita/internal/platform/kv"
)

// KVSessionStore keeps the session under the token, userId and role keys
// the HTTP client and trackers read.
type KVSessionStore struct {
	store kv.Store
}

func NewKVSessionStore(store kv.Store) authout.SessionStore {
	return &KVSessionStore{store: store}
}

func (s *KVSessionStore) Save(ctx context.Context, session domain.Session) error {
	for key, value := range map[string]string{
		kv.KeyToken:  session.Token,
		kv.KeyUserID: session.UserID,
		kv.KeyRole:   session.Role,
	} {
		if err := s.store.Set(ctx, key, value); err != nil {
			return fmt.Errorf("save session: %w", err)
		}
	}
	return nil
}

func (s *KVSessionStore) Load(ctx context.Context) (domain.Session, error) {
	session := domain.Session{}
	for key, dst := range map[string]*string{
		kv.KeyToken:  &session.Token,
		kv.KeyUserID: &session.UserID,
		kv.KeyRole:   &session.Role,
	} {
		value, _, err := s.store.Get(ctx, key)
		if err != nil {
			return domain.Session{}, fmt.Errorf("load session: %w", err)
		}
		*dst = value
	}
	return session, nil
}

func (s *KVSessionStore) Clear(ctx context.Context) error {
	for _, key := range []string{kv.KeyToken, kv.KeyUserID, kv.KeyRole} {
		if err := s.store.Remove(ctx, key); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
	}
	return nil
}
