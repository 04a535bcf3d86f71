// Package models содержит доменные структуры приложения Nailora:
// пользователей, дизайны ногтей, туториалы, посты сообщества и мастеров.
// Структуры используются в бизнес-логике и при сериализации в хранилище.
package models

import "time"

// Возможные тарифные планы подписки.
const (
	PlanMonthly = "monthly"
	PlanYearly  = "yearly"
	PlanTrial   = "trial"
)

// Возможные статусы подписки.
const (
	SubscriptionActive   = "active"
	SubscriptionCanceled = "canceled"
	SubscriptionExpired  = "expired"
)

// Subscription описывает запись о premium-подписке пользователя.
// Присутствует только у пользователей с установленным флагом IsPremium.
type Subscription struct {
	StartDate       time.Time `json:"start_date"`        // Дата активации подписки
	NextBillingDate time.Time `json:"next_billing_date"` // Дата следующего списания
	Plan            string    `json:"plan"`              // Тариф: monthly, yearly или trial
	Status          string    `json:"status"`            // Статус: active, canceled, expired
	Method          string    `json:"method"`            // Название платежного метода
	AutoRenew       bool      `json:"auto_renew"`        // Флаг автопродления
	Tier            string    `json:"tier"`              // Уровень: Gold, Platinum, Diamond
}

// User представляет зарегистрированного пользователя приложения.
// Email уникален в пределах коллекции пользователей, уникальность
// проверяется линейным сканом при регистрации.
type User struct {
	ID              string        `json:"id"`                     // Уникальный идентификатор (uuid)
	Name            string        `json:"name"`                   // Отображаемое имя
	Email           string        `json:"email"`                  // Электронная почта
	PasswordHash    string        `json:"password_hash"`          // Bcrypt-хэш пароля
	ProfileComplete bool          `json:"profile_complete"`       // Завершено ли заполнение профиля
	Avatar          string        `json:"avatar"`                 // Ссылка на аватар
	IsPremium       bool          `json:"is_premium,omitempty"`   // Флаг premium-доступа
	Subscription    *Subscription `json:"subscription,omitempty"` // Запись о подписке, nil для базовых аккаунтов
}

// DummyRegister используется для приёма данных регистрации из JSON-запроса.
type DummyRegister struct {
	Name     string `json:"name" validate:"required"`           // Отображаемое имя
	Email    string `json:"email" validate:"required,email"`    // Электронная почта
	Password string `json:"password" validate:"required,min=6"` // Пароль (минимум 6 символов)
}

// DummyLogin используется для приёма данных входа из JSON-запроса.
type DummyLogin struct {
	Email    string `json:"email" validate:"required,email"` // Электронная почта
	Password string `json:"password" validate:"required"`    // Пароль
	Remember bool   `json:"remember"`                        // Запомнить сессию между запусками
}

// DummyProfile используется для приёма обновления профиля из JSON-запроса.
type DummyProfile struct {
	Name   string `json:"name" validate:"required"` // Новое отображаемое имя
	Avatar string `json:"avatar,omitempty"`         // Новая ссылка на аватар (опционально)
}
