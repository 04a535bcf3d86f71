// Package kvstore реализует встроенное key/value-хранилище поверх SQLite.
// Приложение использует два независимых экземпляра: файловый (переживает
// перезапуск, путь "запомнить меня") и in-memory (эфемерная сессия,
// очищается при остановке процесса) — по аналогии с двумя ярусами
// браузерного хранилища, которые симулирует приложение.
package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	// Регистрация драйвера modernc sqlite для использования с database/sql.
	_ "modernc.org/sqlite"
)

// ErrQuotaExceeded возвращается при попытке записать значение больше лимита.
// Эмулирует переполнение браузерного хранилища при больших встроенных
// изображениях; вызывающая сторона обязана не менять состояние в памяти.
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Store инкапсулирует соединение с SQLite и лимит размера значения.
type Store struct {
	DB            *sql.DB
	maxValueBytes int
}

// New открывает файловое хранилище по указанному пути.
// maxValueBytes <= 0 отключает проверку лимита.
func New(path string, maxValueBytes int) (*Store, error) {
	const op = "kvstore.New"
	return open(path, maxValueBytes, op)
}

// NewMemory открывает эфемерное in-memory хранилище.
func NewMemory(maxValueBytes int) (*Store, error) {
	const op = "kvstore.NewMemory"
	return open(":memory:", maxValueBytes, op)
}

func open(dsn string, maxValueBytes int, op string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// SQLite держит одну пишущую транзакцию, а для :memory: каждое
	// соединение пула было бы отдельной базой.
	db.SetMaxOpenConns(1)
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{DB: db, maxValueBytes: maxValueBytes}, nil
}

// Get возвращает значение по ключу. Второй результат — признак наличия ключа.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const op = "kvstore.Get"
	select {
	case <-ctx.Done():
		return nil, false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var value []byte
	query := `SELECT value FROM kv WHERE key = ?`
	err := s.DB.QueryRowContext(ctx, query, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return value, true, nil
}

// Put сохраняет значение по ключу, перезаписывая существующее.
// Возвращает ErrQuotaExceeded, если значение превышает лимит.
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	const op = "kvstore.Put"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if s.maxValueBytes > 0 && len(value) > s.maxValueBytes {
		return fmt.Errorf("%s: %w", op, ErrQuotaExceeded)
	}

	query := `INSERT INTO kv (key, value) VALUES (?, ?)
	          ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.DB.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Delete удаляет ключ. Отсутствие ключа не считается ошибкой.
func (s *Store) Delete(ctx context.Context, key string) error {
	const op = "kvstore.Delete"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM kv WHERE key = ?`
	if _, err := s.DB.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Close закрывает соединение с базой.
func (s *Store) Close() error {
	return s.DB.Close()
}
