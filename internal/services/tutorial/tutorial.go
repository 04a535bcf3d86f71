// Package tutorial содержит бизнес-логику обучающих записей: просмотр,
// добавление, удаление, лайки и append-only комментарии. Туториалы бывают
// пошаговыми и видео; premium-записи закрыты для пользователей без подписки.
package tutorial

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/monicarachel101026-prog/Nailora/internal/models"
)

// Ошибки уровня бизнес-логики туториалов.
var (
	// ErrTutorialNotFound возвращается, когда запись с таким id отсутствует.
	ErrTutorialNotFound = errors.New("tutorial not found")
	// ErrPremiumRequired возвращается при доступе к premium-контенту без подписки.
	ErrPremiumRequired = errors.New("premium subscription required")
)

// TutorialRepository описывает контракт для работы с коллекцией туториалов.
type TutorialRepository interface {
	// LoadTutorials возвращает коллекцию туториалов целиком.
	LoadTutorials(ctx context.Context) ([]models.Tutorial, error)
	// SaveTutorials записывает коллекцию туториалов целиком.
	SaveTutorials(ctx context.Context, tutorials []models.Tutorial) error
}

// Service реализует операции над туториалами.
type Service struct {
	repo TutorialRepository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo TutorialRepository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List возвращает все туториалы, при необходимости сужая по категории.
func (s *Service) List(ctx context.Context, category string) ([]models.Tutorial, error) {
	tutorials, err := s.repo.LoadTutorials(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" || category == models.FilterAll {
		return tutorials, nil
	}
	result := make([]models.Tutorial, 0, len(tutorials))
	for _, t := range tutorials {
		if t.Category == category {
			result = append(result, t)
		}
	}
	return result, nil
}

// Get возвращает туториал по id. Premium-запись для пользователя без
// подписки — отказ ErrPremiumRequired: клиент показывает экран premium.
func (s *Service) Get(ctx context.Context, id string, isPremium bool) (*models.Tutorial, error) {
	tutorials, err := s.repo.LoadTutorials(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tutorials {
		if t.ID == id {
			if t.IsPremium && !isPremium {
				return nil, ErrPremiumRequired
			}
			return &t, nil
		}
	}
	return nil, ErrTutorialNotFound
}

// Add добавляет новый туториал в начало коллекции. Схема варианта
// проверяется до записи: запись с нарушенной схемой не попадает в хранилище.
func (s *Service) Add(ctx context.Context, req models.DummyTutorial, author models.User) (*models.Tutorial, error) {
	tut := models.Tutorial{
		ID:             uuid.NewString(),
		Kind:           req.Kind,
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Difficulty:     req.Difficulty,
		Duration:       req.Duration,
		ImgSrc:         req.ImgSrc,
		Steps:          req.Steps,
		VideoSrc:       req.VideoSrc,
		Tools:          req.Tools,
		Notes:          req.Notes,
		UploaderName:   author.Name,
		UploaderAvatar: author.Avatar,
		Comments:       []models.Comment{},
		IsPremium:      req.IsPremium,
	}
	if err := tut.Validate(); err != nil {
		return nil, err
	}
	tutorials, err := s.repo.LoadTutorials(ctx)
	if err != nil {
		return nil, err
	}
	updated := append([]models.Tutorial{tut}, tutorials...)
	if err := s.repo.SaveTutorials(ctx, updated); err != nil {
		return nil, err
	}
	s.log.Info("tutorial added", slog.String("id", tut.ID), slog.String("kind", tut.Kind))
	return &tut, nil
}

// Remove удаляет туториал по id. Повторное удаление — no-op.
func (s *Service) Remove(ctx context.Context, id string) error {
	tutorials, err := s.repo.LoadTutorials(ctx)
	if err != nil {
		return err
	}
	updated := slices.DeleteFunc(slices.Clone(tutorials), func(t models.Tutorial) bool {
		return t.ID == id
	})
	if len(updated) == len(tutorials) {
		return nil
	}
	if err := s.repo.SaveTutorials(ctx, updated); err != nil {
		return err
	}
	s.log.Info("tutorial removed", slog.String("id", id))
	return nil
}

// AddComment дописывает комментарий в конец ленты туториала.
// Комментарии append-only: других операций над ними нет.
func (s *Service) AddComment(ctx context.Context, id string, req models.DummyComment, author models.User) (*models.Comment, error) {
	comment := models.Comment{
		ID:         uuid.NewString(),
		UserName:   author.Name,
		UserAvatar: author.Avatar,
		Text:       req.Text,
		Timestamp:  "Baru saja",
	}
	err := s.mutate(ctx, id, func(t *models.Tutorial) {
		t.Comments = append(t.Comments, comment)
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Like увеличивает счётчик лайков туториала и возвращает новое значение.
func (s *Service) Like(ctx context.Context, id string) (int, error) {
	var likes int
	err := s.mutate(ctx, id, func(t *models.Tutorial) {
		t.Likes++
		likes = t.Likes
	})
	if err != nil {
		return 0, err
	}
	return likes, nil
}

func (s *Service) mutate(ctx context.Context, id string, mutate func(*models.Tutorial)) error {
	tutorials, err := s.repo.LoadTutorials(ctx)
	if err != nil {
		return err
	}
	updated := slices.Clone(tutorials)
	for i := range updated {
		if updated[i].ID == id {
			mutate(&updated[i])
			return s.repo.SaveTutorials(ctx, updated)
		}
	}
	return ErrTutorialNotFound
}
