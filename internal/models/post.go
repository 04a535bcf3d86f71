package models

// Post представляет публикацию в ленте сообщества.
// Удалить пост может только его автор.
type Post struct {
	ID         string `json:"id"`              // Уникальный идентификатор
	UserName   string `json:"user_name"`       // Имя автора
	UserAvatar string `json:"user_avatar"`     // Аватар автора
	Time       string `json:"time"`            // Отображаемое время публикации
	Caption    string `json:"caption"`         // Подпись
	Image      string `json:"image,omitempty"` // Изображение (опционально)
	Likes      int    `json:"likes"`           // Количество лайков
}

// DummyPost используется для приёма новой публикации из JSON-запроса.
type DummyPost struct {
	Caption string `json:"caption" validate:"required"` // Подпись
	Image   string `json:"image"`                       // Изображение (опционально)
}
