package repository

import (
	"context"
	"fmt"

	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/storage/seed"
)

// LoadTutorials возвращает коллекцию туториалов целиком. Записи,
// нарушающие схему варианта (steps/video), отбрасываются на границе
// хранилища и не попадают в бизнес-логику.
func (r *Repository) LoadTutorials(ctx context.Context) ([]models.Tutorial, error) {
	list, err := loadList(ctx, r.store, keyTutorials, seed.Tutorials)
	if err != nil {
		return nil, err
	}
	valid := list[:0]
	for _, t := range list {
		if t.Validate() == nil {
			valid = append(valid, t)
		}
	}
	return valid, nil
}

// SaveTutorials записывает коллекцию туториалов целиком.
// Запись с нарушенной схемой варианта отклоняется до обращения к хранилищу.
func (r *Repository) SaveTutorials(ctx context.Context, tutorials []models.Tutorial) error {
	const op = "repository.SaveTutorials"
	for _, t := range tutorials {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return saveList(ctx, r.store, keyTutorials, tutorials)
}
