// Package checkout реализует машину состояний оплаты:
// checkout → otp → processing → success. Отмена возможна только из otp
// обратно в checkout. Шага отказа нет: любой четырёхзначный код проходит,
// обработка завершается успехом после настроенной задержки.
package checkout

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/monicarachel101026-prog/Nailora/internal/lib/sl"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
)

// Состояния машины оплаты.
const (
	StateCheckout   = "checkout"
	StateOTP        = "otp"
	StateProcessing = "processing"
	StateSuccess    = "success"
)

// Виды оплаты.
const (
	// KindBooking — оплата записи к мастеру.
	KindBooking = "booking"
	// KindSubscription — покупка premium-подписки.
	KindSubscription = "subscription"
)

// Ошибки уровня бизнес-логики оплаты.
var (
	// ErrCheckoutNotFound возвращается, когда сессия оплаты с таким id отсутствует.
	ErrCheckoutNotFound = errors.New("checkout not found")
	// ErrInvalidTransition возвращается при переходе, не предусмотренном машиной.
	ErrInvalidTransition = errors.New("invalid checkout transition")
	// ErrInvalidOTP возвращается, когда код не состоит из четырёх цифр.
	ErrInvalidOTP = errors.New("otp must be four digits")
)

// PremiumActivator активирует premium-подписку после успешной оплаты.
type PremiumActivator interface {
	// ActivatePremium включает premium текущему пользователю по выбранному плану.
	ActivatePremium(ctx context.Context, plan, method string) (*models.User, error)
}

// Checkout — снимок сессии оплаты, отдаваемый наружу.
type Checkout struct {
	ID      string                 `json:"id"`                // Идентификатор сессии оплаты
	Kind    string                 `json:"kind"`              // Вид: booking или subscription
	State   string                 `json:"state"`             // Текущее состояние машины
	Plan    string                 `json:"plan,omitempty"`    // План подписки (kind=subscription)
	Method  string                 `json:"method,omitempty"`  // Способ оплаты
	Booking *models.BookingDetails `json:"booking,omitempty"` // Снимок записи (kind=booking)
}

type checkoutSession struct {
	Checkout
	timer *time.Timer
}

// successRetention — сколько завершённая сессия остаётся доступной для
// финальных чтений Status перед удалением из памяти.
const successRetention = time.Minute

// Service реализует машину состояний оплаты. Сессии живут в памяти,
// таймеры обработки и удаления настоящие и останавливаются при Close.
type Service struct {
	premium          PremiumActivator
	processingDelay  time.Duration
	successRetention time.Duration
	log              *slog.Logger

	mu       sync.Mutex
	sessions map[string]*checkoutSession
}

// New создает новый экземпляр Service.
func New(premium PremiumActivator, processingDelay time.Duration, log *slog.Logger) *Service {
	return &Service{
		premium:          premium,
		processingDelay:  processingDelay,
		successRetention: successRetention,
		log:              log,
		sessions:         make(map[string]*checkoutSession),
	}
}

// BeginBooking открывает сессию оплаты записи со снимком её деталей.
func (s *Service) BeginBooking(_ context.Context, details models.BookingDetails) *Checkout {
	return s.begin(Checkout{
		Kind:    KindBooking,
		Booking: &details,
	})
}

// BeginSubscription открывает сессию покупки подписки.
func (s *Service) BeginSubscription(_ context.Context, plan, method string) *Checkout {
	return s.begin(Checkout{
		Kind:   KindSubscription,
		Plan:   plan,
		Method: method,
	})
}

func (s *Service) begin(c Checkout) *Checkout {
	c.ID = uuid.NewString()
	c.State = StateCheckout

	s.mu.Lock()
	s.sessions[c.ID] = &checkoutSession{Checkout: c}
	s.mu.Unlock()

	s.log.Info("checkout started", slog.String("id", c.ID), slog.String("kind", c.Kind))
	snapshot := c
	return &snapshot
}

// Proceed переводит сессию checkout → otp.
func (s *Service) Proceed(_ context.Context, id string) (*Checkout, error) {
	return s.transition(id, StateCheckout, StateOTP)
}

// Cancel возвращает сессию otp → checkout. Единственный разрешённый
// обратный переход: из processing и success отмены нет.
func (s *Service) Cancel(_ context.Context, id string) (*Checkout, error) {
	return s.transition(id, StateOTP, StateCheckout)
}

// VerifyOTP принимает четырёхзначный код и запускает обработку. Значение
// цифр не проверяется: подходит любой код из четырёх цифр. После настроенной
// задержки сессия завершается успехом; покупка подписки при этом активирует
// premium текущему пользователю.
func (s *Service) VerifyOTP(ctx context.Context, id, code string) (*Checkout, error) {
	if !isFourDigits(code) {
		return nil, ErrInvalidOTP
	}

	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrCheckoutNotFound
	}
	if sess.State != StateOTP {
		s.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	sess.State = StateProcessing
	snapshot := sess.Checkout
	if s.processingDelay <= 0 {
		s.mu.Unlock()
		s.complete(ctx, id)
		return s.Status(ctx, id)
	}
	sess.timer = time.AfterFunc(s.processingDelay, func() {
		s.complete(context.Background(), id)
	})
	s.mu.Unlock()

	return &snapshot, nil
}

// Status возвращает снимок сессии оплаты.
func (s *Service) Status(_ context.Context, id string) (*Checkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrCheckoutNotFound
	}
	snapshot := sess.Checkout
	return &snapshot, nil
}

// Close останавливает отложенные таймеры обработки.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sess := range s.sessions {
		if sess.timer != nil {
			sess.timer.Stop()
			sess.timer = nil
		}
	}
}

func (s *Service) complete(ctx context.Context, id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if !ok || sess.State != StateProcessing {
		s.mu.Unlock()
		return
	}
	sess.State = StateSuccess
	// Завершённая сессия задерживается в памяти на время дочиток Status,
	// после чего удаляется тем же полем таймера.
	sess.timer = time.AfterFunc(s.successRetention, func() {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
	})
	snapshot := sess.Checkout
	s.mu.Unlock()

	if snapshot.Kind == KindSubscription && s.premium != nil {
		if _, err := s.premium.ActivatePremium(ctx, snapshot.Plan, snapshot.Method); err != nil {
			s.log.Error("failed to activate premium after payment", slog.String("id", id), sl.Err(err))
		}
	}
	s.log.Info("checkout completed", slog.String("id", id), slog.String("kind", snapshot.Kind))
}

func (s *Service) transition(id, from, to string) (*Checkout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrCheckoutNotFound
	}
	if sess.State != from {
		return nil, ErrInvalidTransition
	}
	sess.State = to
	snapshot := sess.Checkout
	return &snapshot, nil
}

func isFourDigits(code string) bool {
	if len(code) != 4 {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
