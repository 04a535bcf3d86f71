package repository

import (
	"context"
	"fmt"

	"github.com/monicarachel101026-prog/Nailora/internal/models"
)

// LoadUsers возвращает коллекцию пользователей целиком.
// Отсутствующая коллекция — пустой список, сидов для пользователей нет.
func (r *Repository) LoadUsers(ctx context.Context) ([]models.User, error) {
	return loadList(ctx, r.store, keyUsers, func() []models.User { return []models.User{} })
}

// SaveUsers записывает коллекцию пользователей целиком.
func (r *Repository) SaveUsers(ctx context.Context, users []models.User) error {
	return saveList(ctx, r.store, keyUsers, users)
}

// FindUserByEmail возвращает пользователя по точному совпадению email.
// Сравнение чувствительно к регистру, нормализация не выполняется.
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "repository.FindUserByEmail"
	users, err := r.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
}

// UpdateUser заменяет запись пользователя с совпадающим id.
func (r *Repository) UpdateUser(ctx context.Context, user models.User) error {
	const op = "repository.UpdateUser"
	users, err := r.LoadUsers(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for i := range users {
		if users[i].ID == user.ID {
			users[i] = user
			return r.SaveUsers(ctx, users)
		}
	}
	return fmt.Errorf("%s: %w", op, ErrNotFound)
}
