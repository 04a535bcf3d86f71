package repository

import (
	"context"

	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/storage/seed"
)

// LoadPosts возвращает ленту сообщества целиком.
// Отсутствующая или повреждённая коллекция заменяется стартовой лентой.
func (r *Repository) LoadPosts(ctx context.Context) ([]models.Post, error) {
	return loadList(ctx, r.store, keyPosts, seed.Posts)
}

// SavePosts записывает ленту сообщества целиком.
func (r *Repository) SavePosts(ctx context.Context, posts []models.Post) error {
	return saveList(ctx, r.store, keyPosts, posts)
}
