// Package booking содержит бизнес-логику записи к мастеру: справочный
// список мастеров с сортировками и транзитные детали оформляемой записи.
// Детали живут только между экраном записи и экраном оплаты и не персистятся.
package booking

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/monicarachel101026-prog/Nailora/internal/models"
)

// Ошибки уровня бизнес-логики записи.
var (
	// ErrArtistNotFound возвращается, когда мастер с таким именем отсутствует.
	ErrArtistNotFound = errors.New("artist not found")
	// ErrNoBooking возвращается, когда транзитные детали записи не заполнены.
	ErrNoBooking = errors.New("no booking in progress")
)

// Service реализует операции записи к мастеру. Справочник мастеров
// статичен; оформляемая запись держится в памяти под мьютексом.
type Service struct {
	artists []models.Artist
	log     *slog.Logger

	mu      sync.Mutex
	current *models.BookingDetails
}

// New создает новый экземпляр Service со статичным справочником мастеров.
func New(artists []models.Artist, log *slog.Logger) *Service {
	return &Service{artists: artists, log: log}
}

// ListArtists возвращает мастеров, упорядоченных по ключу сортировки.
// Сортировки устойчивые: мастера с равным ключом сохраняют исходный порядок.
func (s *Service) ListArtists(_ context.Context, sortKey string) []models.Artist {
	result := make([]models.Artist, len(s.artists))
	copy(result, s.artists)

	switch sortKey {
	case models.SortNearest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Distance < result[j].Distance
		})
	case models.SortCheapest:
		sort.SliceStable(result, func(i, j int) bool {
			return priceLowerBound(result[i].Price) < priceLowerBound(result[j].Price)
		})
	case models.SortReviews:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Reviews > result[j].Reviews
		})
	}
	return result
}

// Start фиксирует детали оформляемой записи. Цена мастера снимается в
// момент выбора и дальше не пересчитывается.
func (s *Service) Start(_ context.Context, req models.DummyBooking) (*models.BookingDetails, error) {
	var artist *models.Artist
	for i := range s.artists {
		if s.artists[i].Name == req.ArtistName {
			artist = &s.artists[i]
			break
		}
	}
	if artist == nil {
		return nil, ErrArtistNotFound
	}

	details := &models.BookingDetails{
		ArtistName:  artist.Name,
		ArtistPrice: artist.Price,
		Service:     req.Service,
		Date:        req.Date,
		Time:        req.Time,
	}

	s.mu.Lock()
	s.current = details
	s.mu.Unlock()

	s.log.Info("booking started", slog.String("artist", details.ArtistName), slog.String("service", details.Service))
	return details, nil
}

// Current возвращает детали оформляемой записи.
func (s *Service) Current(_ context.Context) (*models.BookingDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, ErrNoBooking
	}
	details := *s.current
	return &details, nil
}

// Clear сбрасывает транзитные детали после завершения или отмены оплаты.
func (s *Service) Clear(_ context.Context) {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// priceLowerBound извлекает нижнюю границу из ценника вида "100K-200K".
// Ценник без ведущего числа уходит в конец списка.
func priceLowerBound(price string) int {
	value := 0
	parsed := false
	for _, r := range price {
		if r < '0' || r > '9' {
			break
		}
		value = value*10 + int(r-'0')
		parsed = true
	}
	if !parsed {
		return int(^uint(0) >> 1)
	}
	return value
}
