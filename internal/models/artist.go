package models

// Ключи сортировки списка мастеров.
const (
	SortNearest  = "nearest"  // По возрастанию расстояния
	SortCheapest = "cheapest" // По возрастанию нижней границы цены
	SortReviews  = "reviews"  // По убыванию количества отзывов
)

// Artist представляет мастера маникюра. Справочные данные,
// во всех потоках приложения только читаются.
type Artist struct {
	Initial   string   `json:"initial"`   // Инициалы для аватара
	Name      string   `json:"name"`      // Имя мастера
	Rating    float64  `json:"rating"`    // Средняя оценка
	Reviews   int      `json:"reviews"`   // Количество отзывов
	Services  []string `json:"services"`  // Список услуг
	Salon     string   `json:"salon"`     // Название салона
	Distance  float64  `json:"distance"`  // Расстояние в километрах
	Price     string   `json:"price"`     // Диапазон цен, например "100K-200K"
	Available bool     `json:"available"` // Доступен ли для записи
}

// BookingDetails — транзитное состояние оформления записи.
// Живёт только между экраном записи и экраном оплаты, не персистится.
type BookingDetails struct {
	ArtistName  string `json:"artist_name"`  // Имя выбранного мастера
	ArtistPrice string `json:"artist_price"` // Снимок диапазона цен мастера
	Service     string `json:"service"`      // Выбранная услуга
	Date        string `json:"date"`         // Дата записи
	Time        string `json:"time"`         // Время записи
}

// DummyBooking используется для приёма деталей записи из JSON-запроса.
type DummyBooking struct {
	ArtistName string `json:"artist_name" validate:"required"` // Имя мастера
	Service    string `json:"service" validate:"required"`     // Услуга
	Date       string `json:"date" validate:"required"`        // Дата
	Time       string `json:"time" validate:"required"`        // Время
}
