package models

// FilterAll — сентинел-значение "Semua", означающее отсутствие фильтра
// по соответствующему измерению каталога.
const FilterAll = "Semua"

// Design представляет запись каталога дизайнов ногтей.
// Title используется как ключ коллекции: удаление и избранное
// адресуются по названию, поэтому названия уникальны в пределах каталога.
type Design struct {
	ImgSrc        string   `json:"img_src"`               // Ссылка на изображение
	Title         string   `json:"title"`                 // Название (ключ коллекции)
	DominantColor string   `json:"dominant_color"`        // Основной цвет
	Style         string   `json:"style"`                 // Стиль: Simple, Elegant, Bold, Cute и т.д.
	Length        string   `json:"length"`                // Длина: Short, Medium, Long
	Tags          []string `json:"tags"`                  // Теги для поиска
	Likes         int      `json:"likes,omitempty"`       // Количество лайков
	Artist        string   `json:"artist,omitempty"`      // Имя мастера
	Description   string   `json:"description,omitempty"` // Описание дизайна
	IsPremium     bool     `json:"is_premium,omitempty"`  // Доступен только premium-пользователям
	IsArchived    bool     `json:"is_archived,omitempty"` // Скрыт в архив
}

// DesignFilter описывает активные измерения фильтрации каталога.
// Значение FilterAll в любом измерении отключает его проверку.
type DesignFilter struct {
	Color    string // Фильтр по основному цвету
	Style    string // Фильтр по стилю
	Length   string // Фильтр по длине
	Archived bool   // Показывать архивные вместо активных
}

// Match сообщает, проходит ли дизайн все активные измерения фильтра.
func (f DesignFilter) Match(d Design) bool {
	if d.IsArchived != f.Archived {
		return false
	}
	if f.Color != "" && f.Color != FilterAll && d.DominantColor != f.Color {
		return false
	}
	if f.Style != "" && f.Style != FilterAll && d.Style != f.Style {
		return false
	}
	if f.Length != "" && f.Length != FilterAll && d.Length != f.Length {
		return false
	}
	return true
}

// DummyDesign используется для приёма нового дизайна из JSON-запроса.
type DummyDesign struct {
	ImgSrc        string   `json:"img_src" validate:"required"`        // Ссылка или data-URI изображения
	Title         string   `json:"title" validate:"required"`          // Название
	DominantColor string   `json:"dominant_color" validate:"required"` // Основной цвет
	Style         string   `json:"style" validate:"required"`          // Стиль
	Length        string   `json:"length" validate:"required"`         // Длина
	Tags          []string `json:"tags"`                               // Теги
	Artist        string   `json:"artist"`                             // Имя мастера
	Description   string   `json:"description"`                        // Описание
	IsPremium     bool     `json:"is_premium"`                         // Premium-метка
}

// DummyBulkKeys используется для приёма списка ключей массовых операций.
type DummyBulkKeys struct {
	Titles []string `json:"titles" validate:"required,min=1"` // Названия выбранных дизайнов
}
