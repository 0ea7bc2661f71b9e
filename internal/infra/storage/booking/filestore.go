package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// FileStore хранит бронирования в локальном JSON файле: массив записей,
// pretty-printed, с завершающим переводом строки
type FileStore struct {
	path   string
	logger Logger
}

// NewFileStore создает файловое хранилище. Файл и директория создаются
// лениво при первом обращении.
func NewFileStore(path string, logger Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

// LoadAll читает все бронирования из файла.
// Отсутствующий файл создается пустым. Поврежденный файл сбрасывается в
// пустую коллекцию вместо отказа в обслуживании запроса. Записи старого
// формата без поля date восстанавливаются из timestamp, и результат
// сразу сохраняется обратно.
func (s *FileStore) LoadAll(ctx context.Context) ([]*domain.BookingRecord, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.logger.Info("filestore: %s does not exist, creating empty collection", s.path)
		if err := s.SaveAll(ctx, []*domain.BookingRecord{}); err != nil {
			return nil, err
		}
		return []*domain.BookingRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrLoad, s.path, err)
	}

	var records []*domain.BookingRecord
	if len(data) > 0 {
		if err := json.Unmarshal(data, &records); err != nil {
			s.logger.Warn("filestore: %s is corrupted, resetting to empty collection: %v", s.path, err)
			if err := s.SaveAll(ctx, []*domain.BookingRecord{}); err != nil {
				return nil, err
			}
			return []*domain.BookingRecord{}, nil
		}
	}
	if records == nil {
		records = []*domain.BookingRecord{}
	}

	// self-healing миграция: записи без date получают его из timestamp
	healed := false
	for _, rec := range records {
		if rec.BackfillDate() {
			healed = true
		}
	}
	if healed {
		s.logger.Info("filestore: backfilled missing dates in %s", s.path)
		if err := s.SaveAll(ctx, records); err != nil {
			return nil, err
		}
	}

	return records, nil
}

// SaveAll целиком заменяет содержимое файла переданной коллекцией
func (s *FileStore) SaveAll(_ context.Context, records []*domain.BookingRecord) error {
	if records == nil {
		records = []*domain.BookingRecord{}
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: create directory %s: %v", ErrSave, dir, err)
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal records: %v", ErrSave, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrSave, s.path, err)
	}

	return nil
}
