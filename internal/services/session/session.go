// Package session содержит бизнес-логику работы с учётными записями и
// текущей сессией: регистрацию, вход, восстановление при старте,
// обновление профиля, активацию premium и выход.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/monicarachel101026-prog/Nailora/internal/lib/jwt"
	"github.com/monicarachel101026-prog/Nailora/internal/lib/password"
	"github.com/monicarachel101026-prog/Nailora/internal/models"
	"github.com/monicarachel101026-prog/Nailora/internal/storage/repository"
)

// Ошибки уровня бизнес-логики сессий.
var (
	// ErrEmailTaken возвращается при регистрации с уже занятым email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials возвращается при неверном email или пароле.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoSession возвращается, когда операция требует активной сессии.
	ErrNoSession = errors.New("no active session")
	// ErrNotPremium возвращается при управлении подпиской без premium.
	ErrNotPremium = errors.New("premium subscription required")
)

// UserRepository описывает контракт для работы с коллекцией пользователей.
type UserRepository interface {
	// LoadUsers возвращает коллекцию пользователей целиком.
	LoadUsers(ctx context.Context) ([]models.User, error)
	// SaveUsers записывает коллекцию пользователей целиком.
	SaveUsers(ctx context.Context, users []models.User) error
	// FindUserByEmail возвращает пользователя по точному совпадению email.
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	// UpdateUser заменяет запись пользователя с совпадающим id.
	UpdateUser(ctx context.Context, user models.User) error
}

// SessionStore описывает контракт двухъярусного хранилища текущей сессии.
type SessionStore interface {
	// Load восстанавливает сессию из персистентного или эфемерного яруса.
	Load(ctx context.Context) (*models.User, repository.SessionTier, error)
	// Save записывает сессию в ярус, выбранный флагом remember.
	Save(ctx context.Context, user models.User, remember bool) error
	// Update перезаписывает сессию в держащем её ярусе.
	Update(ctx context.Context, user models.User) error
	// Clear удаляет сессию из обоих ярусов.
	Clear(ctx context.Context) error
}

// Service реализует операции над учётными записями и текущей сессией.
type Service struct {
	users       UserRepository
	sessions    SessionStore
	jwtMaker    jwt.Maker
	splashDelay time.Duration
	log         *slog.Logger
}

// New создает новый экземпляр Service. splashDelay — имитируемая пауза
// заставки перед восстановлением сессии, в тестах ноль.
func New(users UserRepository, sessions SessionStore, jwtMaker jwt.Maker, splashDelay time.Duration, log *slog.Logger) *Service {
	return &Service{
		users:       users,
		sessions:    sessions,
		jwtMaker:    jwtMaker,
		splashDelay: splashDelay,
		log:         log,
	}
}

// Restore восстанавливает сессию при старте. Ответ задерживается на
// длительность заставки. Повреждённая запись тихо очищает оба яруса,
// и пользователь считается неаутентифицированным.
func (s *Service) Restore(ctx context.Context) (*models.User, error) {
	if s.splashDelay > 0 {
		select {
		case <-time.After(s.splashDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	user, tier, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	s.log.Info("session restored", slog.String("email", user.Email), slog.String("tier", string(tier)))
	return user, nil
}

// Register создает нового пользователя. Email сверяется линейным сканом
// с точным совпадением; занятый email — детерминированный отказ без
// изменения коллекции. Новая сессия пишется в персистентный ярус.
func (s *Service) Register(ctx context.Context, req models.DummyRegister) (*models.User, string, error) {
	users, err := s.users.LoadUsers(ctx)
	if err != nil {
		return nil, "", err
	}
	for _, u := range users {
		if u.Email == req.Email {
			return nil, "", ErrEmailTaken
		}
	}

	hash, err := password.GetHash(req.Password)
	if err != nil {
		return nil, "", err
	}
	user := models.User{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Email:           req.Email,
		PasswordHash:    hash,
		ProfileComplete: false,
		Avatar:          fmt.Sprintf("https://picsum.photos/seed/%s/100/100", req.Name),
	}

	users = append(users, user)
	if err := s.users.SaveUsers(ctx, users); err != nil {
		return nil, "", err
	}
	if err := s.sessions.Save(ctx, user, true); err != nil {
		return nil, "", err
	}

	token, err := s.jwtMaker.GenerateToken(user.Email, user.ID, true)
	if err != nil {
		return nil, "", err
	}

	s.log.Info("registered new user", slog.String("email", user.Email))
	return &user, token, nil
}

// Login проверяет учётные данные. Неизвестный email и неверный пароль
// неразличимы для вызывающей стороны. Сессия пишется в ярус,
// выбранный флагом remember.
func (s *Service) Login(ctx context.Context, req models.DummyLogin) (*models.User, string, error) {
	user, err := s.users.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := password.CompareHash(user.PasswordHash, req.Password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := s.sessions.Save(ctx, *user, req.Remember); err != nil {
		return nil, "", err
	}
	token, err := s.jwtMaker.GenerateToken(user.Email, user.ID, req.Remember)
	if err != nil {
		return nil, "", err
	}

	s.log.Info("user logged in", slog.String("email", user.Email), slog.Bool("remember", req.Remember))
	return user, token, nil
}

// CompleteProfile завершает заполнение профиля: обновляет имя, выставляет
// флаг завершённости и синхронизирует сессию с коллекцией пользователей.
func (s *Service) CompleteProfile(ctx context.Context, name string) (*models.User, error) {
	return s.mutateCurrent(ctx, func(u *models.User) {
		u.Name = name
		u.ProfileComplete = true
	})
}

// UpdateProfile обновляет имя и аватар текущего пользователя.
func (s *Service) UpdateProfile(ctx context.Context, req models.DummyProfile) (*models.User, error) {
	return s.mutateCurrent(ctx, func(u *models.User) {
		u.Name = req.Name
		if req.Avatar != "" {
			u.Avatar = req.Avatar
		}
	})
}

// ActivatePremium выставляет запись о подписке и флаг premium.
// Пробный период длится 3 дня, месячный план — 30, годовой — 365.
func (s *Service) ActivatePremium(ctx context.Context, plan, method string) (*models.User, error) {
	var days int
	var tier string
	switch plan {
	case models.PlanTrial:
		days, tier = 3, "Gold"
	case models.PlanMonthly:
		days, tier = 30, "Gold"
	case models.PlanYearly:
		days, tier = 365, "Platinum"
	default:
		return nil, fmt.Errorf("unknown subscription plan: %s", plan)
	}

	now := time.Now()
	user, err := s.mutateCurrent(ctx, func(u *models.User) {
		u.IsPremium = true
		u.Subscription = &models.Subscription{
			StartDate:       now,
			NextBillingDate: now.AddDate(0, 0, days),
			Plan:            plan,
			Status:          models.SubscriptionActive,
			Method:          method,
			AutoRenew:       true,
			Tier:            tier,
		}
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("premium activated", slog.String("email", user.Email), slog.String("plan", plan))
	return user, nil
}

// SetAutoRenew переключает автопродление подписки текущего пользователя.
func (s *Service) SetAutoRenew(ctx context.Context, autoRenew bool) (*models.User, error) {
	user, _, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoSession
	}
	if !user.IsPremium || user.Subscription == nil {
		return nil, ErrNotPremium
	}
	return s.mutateCurrent(ctx, func(u *models.User) {
		u.Subscription.AutoRenew = autoRenew
	})
}

// CancelSubscription помечает подписку отменённой. Premium-доступ
// сохраняется до даты следующего списания.
func (s *Service) CancelSubscription(ctx context.Context) (*models.User, error) {
	user, _, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoSession
	}
	if !user.IsPremium || user.Subscription == nil {
		return nil, ErrNotPremium
	}
	return s.mutateCurrent(ctx, func(u *models.User) {
		u.Subscription.Status = models.SubscriptionCanceled
		u.Subscription.AutoRenew = false
	})
}

// Logout очищает оба яруса и завершает сессию.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return err
	}
	s.log.Info("user logged out")
	return nil
}

// Current возвращает пользователя активной сессии или ErrNoSession.
func (s *Service) Current(ctx context.Context) (*models.User, error) {
	user, _, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoSession
	}
	return user, nil
}

// ValidateToken проверяет JWT и возвращает claims с email и id пользователя.
func (s *Service) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	return s.jwtMaker.ParseToken(token)
}

// mutateCurrent применяет мутацию к пользователю активной сессии и
// синхронно записывает результат в оба владения: ярус сессии и
// коллекцию пользователей. Сессия держит копию, не ссылку, поэтому
// обновлять нужно обе стороны.
func (s *Service) mutateCurrent(ctx context.Context, mutate func(*models.User)) (*models.User, error) {
	user, _, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNoSession
	}

	mutate(user)

	if err := s.sessions.Update(ctx, *user); err != nil {
		return nil, err
	}
	if err := s.users.UpdateUser(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}
