package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/storage/kvstore"
)

// SessionTier обозначает ярус, в котором лежит текущая сессия.
type SessionTier string

// Ярусы хранения сессии.
const (
	TierNone       SessionTier = ""           // Сессии нет
	TierPersistent SessionTier = "persistent" // Файловый ярус, путь "запомнить меня"
	TierEphemeral  SessionTier = "ephemeral"  // In-memory ярус, живёт до перезапуска
)

// SessionStore владеет обоими ярусами хранения текущей сессии.
// Ключ current-session в каждом ярусе принадлежит только ему.
type SessionStore struct {
	persistent *kvstore.Store
	ephemeral  *kvstore.Store
}

const keySession = "current-session"

// NewSessionStore создает SessionStore поверх двух ярусов.
func NewSessionStore(persistent, ephemeral *kvstore.Store) *SessionStore {
	return &SessionStore{persistent: persistent, ephemeral: ephemeral}
}

// Load восстанавливает сессию: сначала персистентный ярус, затем эфемерный.
// Повреждённая запись очищает оба яруса, и восстановление сообщает об
// отсутствии сессии — без ошибки, это штатный защитный сброс.
func (s *SessionStore) Load(ctx context.Context) (*models.User, SessionTier, error) {
	const op = "repository.SessionStore.Load"

	tiers := []struct {
		store *kvstore.Store
		tier  SessionTier
	}{
		{s.persistent, TierPersistent},
		{s.ephemeral, TierEphemeral},
	}
	for _, t := range tiers {
		raw, found, err := t.store.Get(ctx, keySession)
		if err != nil {
			return nil, TierNone, fmt.Errorf("%s: %w", op, err)
		}
		if !found {
			continue
		}
		var user models.User
		if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
			if err := s.Clear(ctx); err != nil {
				return nil, TierNone, fmt.Errorf("%s: %w", op, err)
			}
			return nil, TierNone, nil
		}
		return &user, t.tier, nil
	}
	return nil, TierNone, nil
}

// Save записывает сессию в ярус, выбранный флагом remember.
func (s *SessionStore) Save(ctx context.Context, user models.User, remember bool) error {
	const op = "repository.SessionStore.Save"
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	store := s.ephemeral
	if remember {
		store = s.persistent
	}
	if err := store.Put(ctx, keySession, raw); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Update перезаписывает сессию в том ярусе, который сейчас её держит.
// При отсутствии сессии ничего не делает.
func (s *SessionStore) Update(ctx context.Context, user models.User) error {
	const op = "repository.SessionStore.Update"
	_, tier, err := s.Load(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tier == TierNone {
		return nil
	}
	return s.Save(ctx, user, tier == TierPersistent)
}

// Clear удаляет сессию из обоих ярусов.
func (s *SessionStore) Clear(ctx context.Context) error {
	const op = "repository.SessionStore.Clear"
	if err := s.persistent.Delete(ctx, keySession); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.ephemeral.Delete(ctx, keySession); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
