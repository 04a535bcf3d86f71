package repository

import (
	"context"
	"fmt"
	"strconv"
)

// NotificationsEnabled возвращает флаг включённых уведомлений.
// Отсутствующий ключ трактуется как false.
func (r *Repository) NotificationsEnabled(ctx context.Context) (bool, error) {
	const op = "repository.NotificationsEnabled"
	raw, found, err := r.store.Get(ctx, keyNotifications)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return false, nil
	}
	return string(raw) == "true", nil
}

// SetNotificationsEnabled сохраняет флаг включённых уведомлений.
func (r *Repository) SetNotificationsEnabled(ctx context.Context, enabled bool) error {
	const op = "repository.SetNotificationsEnabled"
	if err := r.store.Put(ctx, keyNotifications, []byte(strconv.FormatBool(enabled))); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// LastSeenDesignCount возвращает количество дизайнов на момент последнего
// просмотра каталога. Используется для бейджа "новые дизайны".
// Отсутствующий или нечитаемый ключ трактуется как ноль.
func (r *Repository) LastSeenDesignCount(ctx context.Context) (int, error) {
	const op = "repository.LastSeenDesignCount"
	raw, found, err := r.store.Get(ctx, keyLastSeenCount)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return 0, nil
	}
	count, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, nil
	}
	return count, nil
}

// SetLastSeenDesignCount сохраняет количество просмотренных дизайнов.
func (r *Repository) SetLastSeenDesignCount(ctx context.Context, count int) error {
	const op = "repository.SetLastSeenDesignCount"
	if err := r.store.Put(ctx, keyLastSeenCount, []byte(strconv.Itoa(count))); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
