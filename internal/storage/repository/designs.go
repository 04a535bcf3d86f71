package repository

import (
	"context"

	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/storage/seed"
)

// LoadDesigns возвращает каталог дизайнов целиком.
// Отсутствующая или повреждённая коллекция заменяется стартовым набором.
func (r *Repository) LoadDesigns(ctx context.Context) ([]models.Design, error) {
	return loadList(ctx, r.store, keyDesigns, seed.Designs)
}

// SaveDesigns записывает каталог дизайнов целиком.
func (r *Repository) SaveDesigns(ctx context.Context, designs []models.Design) error {
	return saveList(ctx, r.store, keyDesigns, designs)
}

// LoadFavorites возвращает список названий избранных дизайнов.
// Для избранного сидов нет: отсутствующая коллекция — пустой список.
func (r *Repository) LoadFavorites(ctx context.Context) ([]string, error) {
	return loadList(ctx, r.store, keyFavorites, func() []string { return []string{} })
}

// SaveFavorites записывает список избранного целиком.
func (r *Repository) SaveFavorites(ctx context.Context, favorites []string) error {
	return saveList(ctx, r.store, keyFavorites, favorites)
}
