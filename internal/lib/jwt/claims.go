// Package jwt реализует генерацию и парсинг JWT токенов с пользовательскими claim полями.
//
// Maker определяет интерфейс для создания и проверки токенов с email и id пользователя.
// MakerImpl — конкретная реализация с секретным ключом и двумя сроками жизни:
// обычным и продлённым для сессий с флагом "запомнить меня".
package jwt

import (
	"time"
)

// Maker описывает интерфейс для генерации и парсинга JWT токенов.
type Maker interface {
	// GenerateToken создает токен для пользователя; remember выбирает продлённый TTL.
	GenerateToken(email, userID string, remember bool) (string, error)
	// ParseToken возвращает *CustomClaims с email и id пользователя.
	ParseToken(tokenStr string) (*CustomClaims, error)
}

// MakerImpl реализует интерфейс Maker с использованием секретного ключа
// и двух значений времени жизни токена.
type MakerImpl struct {
	secretKey   string        // Секретный ключ для подписи токенов
	tokenTTL    time.Duration // Время жизни обычного токена
	rememberTTL time.Duration // Время жизни токена "запомнить меня"
}

// NewJWTMaker создаёт новый экземпляр MakerImpl.
func NewJWTMaker(secretKey string, ttl, rememberTTL time.Duration) *MakerImpl {
	return &MakerImpl{
		secretKey:   secretKey,
		tokenTTL:    ttl,
		rememberTTL: rememberTTL,
	}
}
