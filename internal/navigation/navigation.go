// Package navigation реализует контроллер экранов: фиксированное
// перечисление экранов, историю переходов и задержку анимации перехода.
// Состояние экрана живёт в памяти на пользователя; переходы коммитятся
// отложенно настоящим таймером, который можно остановить.
package navigation

import (
	"errors"
	"slices"
	"sync"
	"time"
)

// Screen — экран приложения из фиксированного перечисления.
type Screen string

// Экраны приложения.
const (
	ScreenSplash                 Screen = "splash"
	ScreenLogin                  Screen = "login"
	ScreenRegister               Screen = "register"
	ScreenCompleteProfile        Screen = "completeprofile"
	ScreenDashboard              Screen = "dashboard"
	ScreenProfile                Screen = "profile"
	ScreenEditProfile            Screen = "editprofile"
	ScreenBooking                Screen = "booking"
	ScreenCatalog                Screen = "catalog"
	ScreenCommunity              Screen = "community"
	ScreenPayment                Screen = "payment"
	ScreenDesignDetail           Screen = "designdetail"
	ScreenAbout                  Screen = "about"
	ScreenBookingHistory         Screen = "bookinghistory"
	ScreenPartnerRegistration    Screen = "partnerregistration"
	ScreenSearch                 Screen = "search"
	ScreenPremium                Screen = "premium"
	ScreenAIStylist              Screen = "aistylist"
	ScreenSubscriptionCheckout   Screen = "subscriptioncheckout"
	ScreenSubscriptionManagement Screen = "subscriptionmanagement"
	ScreenPremiumHelpCenter      Screen = "premiumhelpcenter"
	ScreenGiftPremium            Screen = "giftpremium"
)

var screens = map[Screen]struct{}{
	ScreenSplash: {}, ScreenLogin: {}, ScreenRegister: {},
	ScreenCompleteProfile: {}, ScreenDashboard: {}, ScreenProfile: {},
	ScreenEditProfile: {}, ScreenBooking: {}, ScreenCatalog: {},
	ScreenCommunity: {}, ScreenPayment: {}, ScreenDesignDetail: {},
	ScreenAbout: {}, ScreenBookingHistory: {}, ScreenPartnerRegistration: {},
	ScreenSearch: {}, ScreenPremium: {}, ScreenAIStylist: {},
	ScreenSubscriptionCheckout: {}, ScreenSubscriptionManagement: {},
	ScreenPremiumHelpCenter: {}, ScreenGiftPremium: {},
}

// Режимы перехода.
const (
	// ModePush добавляет целевой экран в историю.
	ModePush = "push"
	// ModeReset заменяет историю одним целевым экраном.
	ModeReset = "reset"
)

// Ошибки контроллера навигации.
var (
	// ErrUnknownScreen возвращается при переходе на экран вне перечисления.
	ErrUnknownScreen = errors.New("unknown screen")
	// ErrUnknownMode возвращается при неизвестном режиме перехода.
	ErrUnknownMode = errors.New("unknown navigation mode")
)

// State — снимок состояния контроллера.
type State struct {
	Current       Screen            `json:"current"`          // Текущий экран
	History       []Screen          `json:"history"`          // История переходов
	Transitioning bool              `json:"transitioning"`    // Идёт ли анимация перехода
	Params        map[string]string `json:"params,omitempty"` // Параметры текущего экрана
}

// Controller держит состояние навигации одного пользователя.
// Доступ конкурентный, всё под мьютексом.
type Controller struct {
	mu            sync.Mutex
	current       Screen
	history       []Screen
	params        map[string]string
	transitioning bool
	delay         time.Duration
	timer         *time.Timer
	generation    uint64
}

// NewController создает контроллер на экране заставки.
func NewController(delay time.Duration) *Controller {
	return &Controller{
		current: ScreenSplash,
		history: []Screen{ScreenSplash},
		delay:   delay,
	}
}

// Navigate переводит контроллер на целевой экран. Переход на текущий экран
// вне режима reset — no-op. Параметры экрана заменяются целиком: например,
// вход в каталог без параметра категории сбрасывает выбранную категорию.
// Коммит перехода откладывается на задержку анимации.
func (c *Controller) Navigate(target Screen, mode string, params map[string]string) error {
	if _, ok := screens[target]; !ok {
		return ErrUnknownScreen
	}
	if mode != ModePush && mode != ModeReset {
		return ErrUnknownMode
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if target == c.current && mode != ModeReset {
		return nil
	}

	c.stopTimerLocked()
	c.transitioning = true
	if c.delay <= 0 {
		c.commitNavigateLocked(target, mode, params)
		return nil
	}
	gen := c.generation
	c.timer = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.generation != gen {
			return
		}
		c.commitNavigateLocked(target, mode, params)
	})
	return nil
}

func (c *Controller) commitNavigateLocked(target Screen, mode string, params map[string]string) {
	c.current = target
	c.params = params
	if mode == ModeReset {
		c.history = []Screen{target}
	} else {
		c.history = append(c.history, target)
	}
	c.transitioning = false
	c.timer = nil
}

// GoBack возвращает контроллер на предыдущий экран истории.
// При истории из одного экрана — no-op.
func (c *Controller) GoBack() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.history) <= 1 {
		return
	}

	c.stopTimerLocked()
	c.transitioning = true
	if c.delay <= 0 {
		c.commitBackLocked()
		return
	}
	gen := c.generation
	c.timer = time.AfterFunc(c.delay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.generation != gen {
			return
		}
		c.commitBackLocked()
	})
}

func (c *Controller) commitBackLocked() {
	c.history = c.history[:len(c.history)-1]
	c.current = c.history[len(c.history)-1]
	c.params = nil
	c.transitioning = false
	c.timer = nil
}

// State возвращает снимок текущего состояния.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	params := make(map[string]string, len(c.params))
	for k, v := range c.params {
		params[k] = v
	}
	return State{
		Current:       c.current,
		History:       slices.Clone(c.history),
		Transitioning: c.transitioning,
		Params:        params,
	}
}

// Close останавливает отложенный коммит перехода.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
	c.transitioning = false
}

// stopTimerLocked отменяет отложенный коммит. Инкремент поколения
// обесценивает колбэк таймера, даже если тот уже успел сработать.
func (c *Controller) stopTimerLocked() {
	c.generation++
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

// Manager раздаёт контроллеры навигации по пользователям.
type Manager struct {
	mu          sync.Mutex
	controllers map[string]*Controller
	delay       time.Duration
}

// NewManager создает менеджер контроллеров с общей задержкой перехода.
func NewManager(delay time.Duration) *Manager {
	return &Manager{
		controllers: make(map[string]*Controller),
		delay:       delay,
	}
}

// Get возвращает контроллер пользователя, создавая его при первом обращении.
func (m *Manager) Get(userID string) *Controller {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.controllers[userID]
	if !ok {
		c = NewController(m.delay)
		m.controllers[userID] = c
	}
	return c
}

// Close останавливает отложенные переходы всех контроллеров.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.controllers {
		c.Close()
	}
}
