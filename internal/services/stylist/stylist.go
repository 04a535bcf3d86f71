// Package stylist реализует AI-стилиста: готовые ответы, подбираемые по
// ключевым словам запроса. Настоящей модели нет — четыре корзины ответов
// (вечеринка, работа, отпуск, по умолчанию) с рекомендованным дизайном.
package stylist

import (
	"context"
	"log/slog"
	"strings"
)

// Reply — ответ стилиста с рекомендованным дизайном.
type Reply struct {
	Text  string `json:"text"`  // Текст рекомендации
	Image string `json:"image"` // Изображение рекомендованного дизайна
}

type bucket struct {
	keywords []string
	reply    Reply
}

// Service подбирает готовый ответ стилиста по ключевым словам запроса.
type Service struct {
	buckets  []bucket
	fallback Reply
	log      *slog.Logger
}

// New создает новый экземпляр Service с готовыми корзинами ответов.
func New(log *slog.Logger) *Service {
	return &Service{
		buckets: []bucket{
			{
				keywords: []string{"pesta", "party", "mewah"},
				reply: Reply{
					Text:  "Untuk acara pesta, saya merekomendasikan sesuatu yang berkilau dan elegan. Bagaimana dengan 'Glitter Bomb' atau 'Velvet Nails'? Ini akan membuat Anda menjadi pusat perhatian! ✨",
					Image: "https://i.ibb.co/F8q1f60/glitter-bomb.png",
				},
			},
			{
				keywords: []string{"kerja", "kantor", "formal"},
				reply: Reply{
					Text:  "Untuk suasana profesional, 'Nude Glazed Donut' atau 'Micro French Tips' adalah pilihan sempurna. Bersih, rapi, namun tetap stylish.",
					Image: "https://i.ibb.co/7g7Z0V8/new-glazed-donut.jpg",
				},
			},
			{
				keywords: []string{"liburan", "pantai", "summer"},
				reply: Reply{
					Text:  "Liburan musim panas? Coba warna-warna cerah! 'Aura Nails' dengan warna oranye atau pink akan sangat cocok dengan suasana pantai.",
					Image: "https://i.ibb.co/dGt0Mwg/aura.png",
				},
			},
		},
		fallback: Reply{
			Text:  "Pilihan yang menarik! Saya rasa gaya 'Marble Nails' atau 'Coquette' akan sangat cocok dengan mood tersebut. Terlihat artistik dan unik.",
			Image: "https://i.ibb.co/MnvkS1z/coquette.png",
		},
		log: log,
	}
}

// Ask возвращает ответ стилиста на запрос. Корзины проверяются по порядку,
// совпадение по любому ключевому слову выбирает корзину; иначе — ответ
// по умолчанию.
func (s *Service) Ask(_ context.Context, prompt string) Reply {
	lower := strings.ToLower(prompt)
	for _, b := range s.buckets {
		for _, kw := range b.keywords {
			if strings.Contains(lower, kw) {
				s.log.Info("stylist reply matched", slog.String("keyword", kw))
				return b.reply
			}
		}
	}
	return s.fallback
}
