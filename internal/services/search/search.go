// Package search реализует поиск по каталогу: регистронезависимое
// вхождение подстроки в названия и теги дизайнов, заголовки туториалов
// и имена мастеров.
package search

import (
	"context"
	"log/slog"
	"strings"

	"github.com/monicarachel101026-prog/Nailora/internal/models"
)

// CatalogRepository описывает контракт чтения коллекций для поиска.
type CatalogRepository interface {
	// LoadDesigns возвращает коллекцию дизайнов целиком.
	LoadDesigns(ctx context.Context) ([]models.Design, error)
	// LoadTutorials возвращает коллекцию туториалов целиком.
	LoadTutorials(ctx context.Context) ([]models.Tutorial, error)
}

// Result — результаты поиска по разделам каталога.
type Result struct {
	Designs   []models.Design   `json:"designs"`   // Дизайны с совпадением в названии или тегах
	Tutorials []models.Tutorial `json:"tutorials"` // Туториалы с совпадением в заголовке
	Artists   []models.Artist   `json:"artists"`   // Мастера с совпадением в имени
}

// Service реализует поиск по дизайнам, туториалам и мастерам.
type Service struct {
	repo    CatalogRepository
	artists []models.Artist
	log     *slog.Logger
}

// New создает новый экземпляр Service.
func New(repo CatalogRepository, artists []models.Artist, log *slog.Logger) *Service {
	return &Service{repo: repo, artists: artists, log: log}
}

// Search возвращает записи всех разделов, содержащие запрос как подстроку
// без учёта регистра. Пустой запрос даёт пустые результаты.
func (s *Service) Search(ctx context.Context, query string) (*Result, error) {
	result := &Result{
		Designs:   []models.Design{},
		Tutorials: []models.Tutorial{},
		Artists:   []models.Artist{},
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return result, nil
	}

	designs, err := s.repo.LoadDesigns(ctx)
	if err != nil {
		return nil, err
	}
	for _, d := range designs {
		if matchDesign(d, query) {
			result.Designs = append(result.Designs, d)
		}
	}

	tutorials, err := s.repo.LoadTutorials(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tutorials {
		if strings.Contains(strings.ToLower(t.Title), query) {
			result.Tutorials = append(result.Tutorials, t)
		}
	}

	for _, a := range s.artists {
		if strings.Contains(strings.ToLower(a.Name), query) {
			result.Artists = append(result.Artists, a)
		}
	}

	s.log.Info("search executed",
		slog.String("query", query),
		slog.Int("designs", len(result.Designs)),
		slog.Int("tutorials", len(result.Tutorials)),
		slog.Int("artists", len(result.Artists)),
	)
	return result, nil
}

func matchDesign(d models.Design, query string) bool {
	if strings.Contains(strings.ToLower(d.Title), query) {
		return true
	}
	for _, tag := range d.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}
