package models

import "errors"

// Виды туториалов. Пошаговый и видео-туториал — взаимоисключающие
// варианты: запись содержит либо шаги, либо ссылку на видео.
const (
	TutorialKindSteps = "steps"
	TutorialKindVideo = "video"
)

// ErrInvalidTutorial возвращается при нарушении схемы варианта туториала.
var ErrInvalidTutorial = errors.New("invalid tutorial shape")

// Comment представляет комментарий под туториалом. Комментарии только
// добавляются, редактирование и удаление не предусмотрены.
type Comment struct {
	ID         string `json:"id"`          // Уникальный идентификатор
	UserName   string `json:"user_name"`   // Имя автора
	UserAvatar string `json:"user_avatar"` // Аватар автора
	Text       string `json:"text"`        // Текст комментария
	Timestamp  string `json:"timestamp"`   // Отображаемое время ("2 jam lalu")
}

// TutorialStep представляет один шаг пошагового туториала.
type TutorialStep struct {
	Order       int    `json:"order"`       // Порядковый номер шага
	Title       string `json:"title"`       // Заголовок шага
	Description string `json:"description"` // Описание действия
}

// Tutorial представляет обучающую запись. Поле Kind помечает вариант:
// steps-туториал несёт упорядоченные шаги, video-туториал — ссылку VideoSrc.
type Tutorial struct {
	ID             string         `json:"id"`                   // Уникальный идентификатор
	Kind           string         `json:"kind"`                 // Вариант: steps или video
	Title          string         `json:"title"`                // Заголовок
	Description    string         `json:"description"`          // Краткое описание
	Category       string         `json:"category"`             // Категория (Beginner, Nail Care Tips...)
	Difficulty     string         `json:"difficulty"`           // Сложность: Pemula, Menengah, Pro
	Duration       string         `json:"duration"`             // Отображаемая длительность
	ImgSrc         string         `json:"img_src"`              // Обложка
	Steps          []TutorialStep `json:"steps,omitempty"`      // Шаги (только kind=steps)
	VideoSrc       string         `json:"video_src,omitempty"`  // Ссылка на видео (только kind=video)
	Tools          []string       `json:"tools,omitempty"`      // Необходимые инструменты
	Notes          []string       `json:"notes,omitempty"`      // Заметки и советы
	UploaderName   string         `json:"uploader_name"`        // Имя загрузившего
	UploaderAvatar string         `json:"uploader_avatar"`      // Аватар загрузившего
	Likes          int            `json:"likes"`                // Количество лайков
	Comments       []Comment      `json:"comments"`             // Комментарии
	IsPremium      bool           `json:"is_premium,omitempty"` // Доступен только premium-пользователям
}

// Validate проверяет схему варианта: steps-туториал обязан содержать шаги
// и не содержать видео, video-туториал — наоборот. Нарушение схемы
// отклоняется на границе хранилища, а не маскируется.
func (t Tutorial) Validate() error {
	switch t.Kind {
	case TutorialKindSteps:
		if len(t.Steps) == 0 || t.VideoSrc != "" {
			return ErrInvalidTutorial
		}
	case TutorialKindVideo:
		if t.VideoSrc == "" || len(t.Steps) != 0 {
			return ErrInvalidTutorial
		}
	default:
		return ErrInvalidTutorial
	}
	return nil
}

// DummyTutorial используется для приёма нового туториала из JSON-запроса.
type DummyTutorial struct {
	Kind        string         `json:"kind" validate:"required,oneof=steps video"` // Вариант туториала
	Title       string         `json:"title" validate:"required"`                  // Заголовок
	Description string         `json:"description" validate:"required"`            // Описание
	Category    string         `json:"category" validate:"required"`               // Категория
	Difficulty  string         `json:"difficulty" validate:"required"`             // Сложность
	Duration    string         `json:"duration" validate:"required"`               // Длительность
	ImgSrc      string         `json:"img_src"`                                    // Обложка
	Steps       []TutorialStep `json:"steps,omitempty"`                            // Шаги (kind=steps)
	VideoSrc    string         `json:"video_src,omitempty"`                        // Видео (kind=video)
	Tools       []string       `json:"tools,omitempty"`                            // Инструменты
	Notes       []string       `json:"notes,omitempty"`                            // Заметки
	IsPremium   bool           `json:"is_premium"`                                 // Premium-метка
}

// DummyComment используется для приёма нового комментария из JSON-запроса.
type DummyComment struct {
	Text string `json:"text" validate:"required"` // Текст комментария
}
