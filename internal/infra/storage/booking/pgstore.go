package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// psql builder с $-плейсхолдерами postgres
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
    id                    TEXT PRIMARY KEY,
    booking_date          TEXT NOT NULL,
    time_slot             TEXT NOT NULL,
    name                  TEXT NOT NULL,
    email                 TEXT NOT NULL,
    gender                TEXT NOT NULL,
    age                   INTEGER NOT NULL,
    education             TEXT NOT NULL DEFAULT '',
    native_polish_speaker BOOLEAN NOT NULL DEFAULT FALSE,
    created_at            TEXT NOT NULL
)`

// PostgresStore хранит бронирования в таблице bookings.
// Контракт тот же whole-collection: SaveAll заменяет таблицу в транзакции.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore создает postgres хранилище
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema лениво создает таблицу bookings, если её нет
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, createBookingsTable); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// LoadAll читает все бронирования, упорядоченные по времени создания
func (s *PostgresStore) LoadAll(ctx context.Context) ([]*domain.BookingRecord, error) {
	query, args, err := psql.Select(
		"id",
		"booking_date",
		"time_slot",
		"name",
		"email",
		"gender",
		"age",
		"education",
		"native_polish_speaker",
		"created_at",
	).
		From("bookings").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: LoadAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.BookingRecord, 0)
	for rows.Next() {
		var rec domain.BookingRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Date,
			&rec.TimeSlot,
			&rec.Name,
			&rec.Email,
			&rec.Gender,
			&rec.Age,
			&rec.Education,
			&rec.NativePolishSpeaker,
			&rec.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("%w: LoadAll - scan booking: %v", ErrScanRow, err)
		}
		records = append(records, &rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: LoadAll - iterate rows: %v", ErrExecQuery, err)
	}

	return records, nil
}

// SaveAll заменяет содержимое таблицы переданной коллекцией в одной транзакции
func (s *PostgresStore) SaveAll(ctx context.Context, records []*domain.BookingRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: SaveAll - begin transaction: %v", ErrExecQuery, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM bookings"); err != nil {
		return fmt.Errorf("%w: SaveAll - clear table: %v", ErrExecQuery, err)
	}

	if len(records) > 0 {
		builder := psql.Insert("bookings").Columns(
			"id",
			"booking_date",
			"time_slot",
			"name",
			"email",
			"gender",
			"age",
			"education",
			"native_polish_speaker",
			"created_at",
		)
		for _, rec := range records {
			builder = builder.Values(
				rec.ID,
				rec.Date,
				rec.TimeSlot,
				rec.Name,
				rec.Email,
				rec.Gender,
				rec.Age,
				rec.Education,
				rec.NativePolishSpeaker,
				rec.Timestamp,
			)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("%w: SaveAll - build insert query: %v", ErrBuildQuery, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: SaveAll - execute insert: %v", ErrExecQuery, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: SaveAll - commit transaction: %v", ErrExecQuery, err)
	}

	return nil
}
