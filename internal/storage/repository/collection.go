// Package repository реализует коллекции приложения поверх встроенного
// key/value-хранилища. Каждая коллекция занимает ровно один ключ и
// читается/записывается целиком в виде JSON-массива — контракт,
// совместимый с данными, которые сохранял исходный клиент.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/monicarachel101026-prog/Nailora/internal/storage/kvstore"
)

// Ключи коллекций во встроенном хранилище.
const (
	keyUsers         = "users"
	keyDesigns       = "designs"
	keyTutorials     = "tutorials"
	keyPosts         = "community-posts"
	keyFavorites     = "favorites"
	keyNotifications = "notifications-enabled"
	keyLastSeenCount = "last-seen-design-count"
)

// ErrNotFound возвращается, когда запрошенная запись отсутствует в коллекции.
var ErrNotFound = errors.New("record not found")

// Repository предоставляет доступ к коллекциям персистентного яруса.
type Repository struct {
	store *kvstore.Store
}

// New создает Repository поверх переданного хранилища.
func New(store *kvstore.Store) *Repository {
	return &Repository{store: store}
}

// loadList читает коллекцию целиком. Отсутствующие или повреждённые данные
// заменяются результатом fallback — так же исходный клиент откатывался
// на стартовый набор при битом JSON в браузерном хранилище.
func loadList[T any](ctx context.Context, store *kvstore.Store, key string, fallback func() []T) ([]T, error) {
	const op = "repository.loadList"
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !found {
		return fallback(), nil
	}
	var list []T
	if err := json.Unmarshal(raw, &list); err != nil {
		return fallback(), nil
	}
	if list == nil {
		list = fallback()
	}
	return list, nil
}

// saveList сериализует коллекцию целиком и записывает её одним значением.
// Ошибка квоты хранилища пробрасывается вызывающей стороне без изменения
// данных — незаписанная мутация не должна остаться в памяти.
func saveList[T any](ctx context.Context, store *kvstore.Store, key string, list []T) error {
	const op = "repository.saveList"
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := store.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
