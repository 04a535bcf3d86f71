// Package community содержит бизнес-логику ленты сообщества: просмотр,
// публикацию, лайки и удаление постов. Удаление разрешено только автору.
package community

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/monicarachel101026-prog/Nailora/internal/models"
)

// Ошибки уровня бизнес-логики сообщества.
var (
	// ErrPostNotFound возвращается, когда пост с таким id отсутствует.
	ErrPostNotFound = errors.New("post not found")
	// ErrNotAuthor возвращается при попытке удалить чужой пост.
	ErrNotAuthor = errors.New("only the author can delete a post")
)

// PostRepository описывает контракт для работы с коллекцией постов.
type PostRepository interface {
	// LoadPosts возвращает коллекцию постов целиком.
	LoadPosts(ctx context.Context) ([]models.Post, error)
	// SavePosts записывает коллекцию постов целиком.
	SavePosts(ctx context.Context, posts []models.Post) error
}

// Service реализует операции над лентой сообщества.
type Service struct {
	repo PostRepository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo PostRepository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List возвращает все посты ленты в порядке хранения.
func (s *Service) List(ctx context.Context) ([]models.Post, error) {
	return s.repo.LoadPosts(ctx)
}

// Add публикует новый пост в начало ленты от имени автора.
func (s *Service) Add(ctx context.Context, req models.DummyPost, author models.User) (*models.Post, error) {
	post := models.Post{
		ID:         uuid.NewString(),
		UserName:   author.Name,
		UserAvatar: author.Avatar,
		Time:       "Baru saja",
		Caption:    req.Caption,
		Image:      req.Image,
	}
	posts, err := s.repo.LoadPosts(ctx)
	if err != nil {
		return nil, err
	}
	updated := append([]models.Post{post}, posts...)
	if err := s.repo.SavePosts(ctx, updated); err != nil {
		return nil, err
	}
	s.log.Info("post published", slog.String("id", post.ID), slog.String("author", post.UserName))
	return &post, nil
}

// Remove удаляет пост по id. Удалить пост может только его автор;
// чужой пост — отказ ErrNotAuthor без изменения ленты.
func (s *Service) Remove(ctx context.Context, id string, requester models.User) error {
	posts, err := s.repo.LoadPosts(ctx)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(posts, func(p models.Post) bool { return p.ID == id })
	if idx < 0 {
		return ErrPostNotFound
	}
	if posts[idx].UserName != requester.Name {
		return ErrNotAuthor
	}
	updated := slices.Delete(slices.Clone(posts), idx, idx+1)
	if err := s.repo.SavePosts(ctx, updated); err != nil {
		return err
	}
	s.log.Info("post removed", slog.String("id", id))
	return nil
}

// Like увеличивает счётчик лайков поста и возвращает новое значение.
func (s *Service) Like(ctx context.Context, id string) (int, error) {
	posts, err := s.repo.LoadPosts(ctx)
	if err != nil {
		return 0, err
	}
	updated := slices.Clone(posts)
	for i := range updated {
		if updated[i].ID == id {
			updated[i].Likes++
			if err := s.repo.SavePosts(ctx, updated); err != nil {
				return 0, err
			}
			return updated[i].Likes, nil
		}
	}
	return 0, ErrPostNotFound
}
