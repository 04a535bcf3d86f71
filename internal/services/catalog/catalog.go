// Package catalog содержит бизнес-логику каталога дизайнов: фильтрацию,
// добавление и удаление, массовые операции, избранное и значок новых
// дизайнов. Все операции читают и пишут коллекции целиком.
package catalog

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
)

// Ошибки уровня бизнес-логики каталога.
var (
	// ErrDuplicateTitle возвращается при добавлении дизайна с занятым названием.
	ErrDuplicateTitle = errors.New("design title already exists")
	// ErrDesignNotFound возвращается, когда дизайн с таким названием отсутствует.
	ErrDesignNotFound = errors.New("design not found")
	// ErrPremiumRequired возвращается при доступе к premium-контенту без подписки.
	ErrPremiumRequired = errors.New("premium subscription required")
)

// DesignRepository описывает контракт для работы с коллекциями каталога.
type DesignRepository interface {
	// LoadDesigns возвращает коллекцию дизайнов целиком.
	LoadDesigns(ctx context.Context) ([]models.Design, error)
	// SaveDesigns записывает коллекцию дизайнов целиком.
	SaveDesigns(ctx context.Context, designs []models.Design) error
	// LoadFavorites возвращает список названий избранных дизайнов.
	LoadFavorites(ctx context.Context) ([]string, error)
	// SaveFavorites записывает список названий избранных дизайнов.
	SaveFavorites(ctx context.Context, favorites []string) error
	// LastSeenDesignCount возвращает размер каталога на момент последнего просмотра.
	LastSeenDesignCount(ctx context.Context) (int, error)
	// SetLastSeenDesignCount фиксирует размер каталога как просмотренный.
	SetLastSeenDesignCount(ctx context.Context, count int) error
}

// Service реализует операции каталога дизайнов.
type Service struct {
	repo DesignRepository
	log  *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo DesignRepository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// List возвращает дизайны, проходящие все активные измерения фильтра.
// Порядок коллекции сохраняется.
func (s *Service) List(ctx context.Context, filter models.DesignFilter) ([]models.Design, error) {
	designs, err := s.repo.LoadDesigns(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]models.Design, 0, len(designs))
	for _, d := range designs {
		if filter.Match(d) {
			result = append(result, d)
		}
	}
	return result, nil
}

// Get возвращает дизайн по названию. Premium-дизайн для пользователя без
// подписки — отказ ErrPremiumRequired: клиент показывает экран premium.
func (s *Service) Get(ctx context.Context, title string, isPremium bool) (*models.Design, error) {
	designs, err := s.repo.LoadDesigns(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range designs {
		if d.Title == title {
			if d.IsPremium && !isPremium {
				return nil, ErrPremiumRequired
			}
			return &d, nil
		}
	}
	return nil, ErrDesignNotFound
}

// Add добавляет новый дизайн в начало коллекции. Название — ключ
// коллекции, поэтому дубликат — детерминированный отказ без записи.
func (s *Service) Add(ctx context.Context, req models.DummyDesign) (*models.Design, error) {
	designs, err := s.repo.LoadDesigns(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range designs {
		if d.Title == req.Title {
			return nil, ErrDuplicateTitle
		}
	}
	design := models.Design{
		ImgSrc:        req.ImgSrc,
		Title:         req.Title,
		DominantColor: req.DominantColor,
		Style:         req.Style,
		Length:        req.Length,
		Tags:          req.Tags,
		Artist:        req.Artist,
		Description:   req.Description,
		IsPremium:     req.IsPremium,
	}
	updated := append([]models.Design{design}, designs...)
	if err := s.repo.SaveDesigns(ctx, updated); err != nil {
		return nil, err
	}
	s.log.Info("design added", slog.String("title", design.Title))
	return &design, nil
}

// Remove удаляет дизайн по названию и каскадно вычищает его из избранного.
// Повторное удаление — no-op.
func (s *Service) Remove(ctx context.Context, title string) error {
	designs, err := s.repo.LoadDesigns(ctx)
	if err != nil {
		return err
	}
	updated := slices.DeleteFunc(slices.Clone(designs), func(d models.Design) bool {
		return d.Title == title
	})
	if len(updated) == len(designs) {
		return nil
	}
	if err := s.repo.SaveDesigns(ctx, updated); err != nil {
		return err
	}
	if err := s.removeFavorites(ctx, []string{title}); err != nil {
		return err
	}
	s.log.Info("design removed", slog.String("title", title))
	return nil
}

// BulkRemove удаляет выбранные дизайны одной записью. Операция доступна
// только premium-пользователям.
func (s *Service) BulkRemove(ctx context.Context, titles []string, isPremium bool) error {
	if !isPremium {
		return ErrPremiumRequired
	}
	designs, err := s.repo.LoadDesigns(ctx)
	if err != nil {
		return err
	}
	updated := slices.DeleteFunc(slices.Clone(designs), func(d models.Design) bool {
		return slices.Contains(titles, d.Title)
	})
	if len(updated) == len(designs) {
		return nil
	}
	if err := s.repo.SaveDesigns(ctx, updated); err != nil {
		return err
	}
	if err := s.removeFavorites(ctx, titles); err != nil {
		return err
	}
	s.log.Info("designs bulk removed", slog.Int("count", len(designs)-len(updated)))
	return nil
}

// BulkArchiveToggle переключает архивный флаг выбранных дизайнов.
// Операция доступна только premium-пользователям.
func (s *Service) BulkArchiveToggle(ctx context.Context, titles []string, isPremium bool) error {
	if !isPremium {
		return ErrPremiumRequired
	}
	designs, err := s.repo.LoadDesigns(ctx)
	if err != nil {
		return err
	}
	updated := slices.Clone(designs)
	changed := 0
	for i := range updated {
		if slices.Contains(titles, updated[i].Title) {
			updated[i].IsArchived = !updated[i].IsArchived
			changed++
		}
	}
	if changed == 0 {
		return nil
	}
	if err := s.repo.SaveDesigns(ctx, updated); err != nil {
		return err
	}
	s.log.Info("designs archive toggled", slog.Int("count", changed))
	return nil
}

// ToggleFavorite переключает дизайн в избранном и сообщает новое состояние.
func (s *Service) ToggleFavorite(ctx context.Context, title string) (bool, error) {
	designs, err := s.repo.LoadDesigns(ctx)
	if err != nil {
		return false, err
	}
	if !slices.ContainsFunc(designs, func(d models.Design) bool { return d.Title == title }) {
		return false, ErrDesignNotFound
	}
	favorites, err := s.repo.LoadFavorites(ctx)
	if err != nil {
		return false, err
	}
	if slices.Contains(favorites, title) {
		updated := slices.DeleteFunc(slices.Clone(favorites), func(t string) bool { return t == title })
		if err := s.repo.SaveFavorites(ctx, updated); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.repo.SaveFavorites(ctx, append(slices.Clone(favorites), title)); err != nil {
		return false, err
	}
	return true, nil
}

// Favorites возвращает избранные дизайны в порядке добавления в избранное.
// Названия без соответствующего дизайна пропускаются.
func (s *Service) Favorites(ctx context.Context) ([]models.Design, error) {
	favorites, err := s.repo.LoadFavorites(ctx)
	if err != nil {
		return nil, err
	}
	designs, err := s.repo.LoadDesigns(ctx)
	if err != nil {
		return nil, err
	}
	byTitle := make(map[string]models.Design, len(designs))
	for _, d := range designs {
		byTitle[d.Title] = d
	}
	result := make([]models.Design, 0, len(favorites))
	for _, title := range favorites {
		if d, ok := byTitle[title]; ok {
			result = append(result, d)
		}
	}
	return result, nil
}

// NewDesignCount возвращает число дизайнов, появившихся после последнего
// просмотра каталога, для значка уведомлений на дашборде.
func (s *Service) NewDesignCount(ctx context.Context) (int, error) {
	designs, err := s.repo.LoadDesigns(ctx)
	if err != nil {
		return 0, err
	}
	seen, err := s.repo.LastSeenDesignCount(ctx)
	if err != nil {
		return 0, err
	}
	if len(designs) <= seen {
		return 0, nil
	}
	return len(designs) - seen, nil
}

// MarkDesignsSeen фиксирует текущий размер каталога как просмотренный
// и сбрасывает значок.
func (s *Service) MarkDesignsSeen(ctx context.Context) error {
	designs, err := s.repo.LoadDesigns(ctx)
	if err != nil {
		return err
	}
	return s.repo.SetLastSeenDesignCount(ctx, len(designs))
}

func (s *Service) removeFavorites(ctx context.Context, titles []string) error {
	favorites, err := s.repo.LoadFavorites(ctx)
	if err != nil {
		return err
	}
	updated := slices.DeleteFunc(slices.Clone(favorites), func(t string) bool {
		return slices.Contains(titles, t)
	})
	if len(updated) == len(favorites) {
		return nil
	}
	if err := s.repo.SaveFavorites(ctx, updated); err != nil {
		s.log.Error("failed to cascade favorites", sl.Err(err))
		return err
	}
	return nil
}
