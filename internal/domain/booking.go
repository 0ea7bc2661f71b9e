package domain

import (
	"strings"
	"time"
)

// Education уровни образования, допустимые в анкете
type Education string

const (
	EducationHigher  Education = "higher"
	EducationStudies Education = "studies"
	EducationOther   Education = "other"
)

// ValidEducations список допустимых значений поля education
var ValidEducations = []Education{
	EducationHigher,
	EducationStudies,
	EducationOther,
}

// IsValidEducation проверяет, что значение входит в допустимый набор
func IsValidEducation(value string) bool {
	for _, e := range ValidEducations {
		if string(e) == value {
			return true
		}
	}
	return false
}

// BookingRecord represents a single appointment booking in the system
type BookingRecord struct {
	ID                  string `json:"id"`
	Date                string `json:"date"`     // YYYY-MM-DD
	TimeSlot            string `json:"timeSlot"` // HH:MM
	Name                string `json:"name"`
	Email               string `json:"email"` // normalized: trimmed + lowercased
	Gender              string `json:"gender"`
	Age                 int    `json:"age"`
	Education           string `json:"education,omitempty"`
	NativePolishSpeaker bool   `json:"nativePolishSpeaker"`
	Timestamp           string `json:"timestamp"` // RFC3339 creation time
}

// NormalizeEmail приводит email к каноническому виду для сравнения
// уникальности: обрезает пробелы и переводит в нижний регистр
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HasEmail returns true if the record belongs to the given normalized email
func (b *BookingRecord) HasEmail(normalized string) bool {
	return NormalizeEmail(b.Email) == normalized
}

// OccupiesSlot returns true if the record holds the given (date, timeSlot) pair
func (b *BookingRecord) OccupiesSlot(date, timeSlot string) bool {
	return b.Date == date && b.TimeSlot == timeSlot
}

// BackfillDate восстанавливает отсутствующее поле date из legacy-поля
// timestamp (записи старого формата хранили только момент создания).
// Возвращает true, если запись была изменена и требует сохранения.
func (b *BookingRecord) BackfillDate() bool {
	if b.Date != "" || b.Timestamp == "" {
		return false
	}
	ts, err := time.Parse(time.RFC3339, b.Timestamp)
	if err != nil {
		return false
	}
	b.Date = ts.Format(DateFormat)
	return true
}
