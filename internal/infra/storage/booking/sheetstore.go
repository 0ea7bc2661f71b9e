package booking

import (
	"context"
	"fmt"
	"strconv"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// sheetColumns порядок колонок листа бронирований
// A: id, B: date, C: timeSlot, D: name, E: email, F: gender,
// G: age, H: education, I: nativePolishSpeaker, J: timestamp
const sheetColumns = 10

// SheetStore хранит бронирования в листе Google Sheets, по строке на запись
type SheetStore struct {
	svc           *sheets.Service
	spreadsheetID string
	readRange     string
	logger        Logger
}

// NewSheetStore создает хранилище поверх Google Sheets API
func NewSheetStore(ctx context.Context, credentialsFile, spreadsheetID, readRange string, logger Logger) (*SheetStore, error) {
	svc, err := sheets.NewService(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("%w: create sheets service: %v", ErrLoad, err)
	}
	return &SheetStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		logger:        logger,
	}, nil
}

// LoadAll читает все бронирования с листа.
// Строки, которые не удается разобрать, пропускаются с предупреждением.
// Записи без date восстанавливаются из timestamp и сохраняются обратно.
func (s *SheetStore) LoadAll(ctx context.Context) ([]*domain.BookingRecord, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: read range %s: %v", ErrLoad, s.readRange, err)
	}

	records := make([]*domain.BookingRecord, 0, len(resp.Values))
	healed := false
	for i, row := range resp.Values {
		rec, err := rowToRecord(row)
		if err != nil {
			s.logger.Warn("sheetstore: skipping malformed row %d: %v", i, err)
			continue
		}
		if rec.BackfillDate() {
			healed = true
		}
		records = append(records, rec)
	}

	if healed {
		s.logger.Info("sheetstore: backfilled missing dates, rewriting sheet")
		if err := s.SaveAll(ctx, records); err != nil {
			return nil, err
		}
	}

	return records, nil
}

// SaveAll целиком переписывает лист переданной коллекцией
func (s *SheetStore) SaveAll(ctx context.Context, records []*domain.BookingRecord) error {
	if _, err := s.svc.Spreadsheets.Values.
		Clear(s.spreadsheetID, s.readRange, &sheets.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: clear range %s: %v", ErrSave, s.readRange, err)
	}

	if len(records) == 0 {
		return nil
	}

	values := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		values = append(values, recordToRow(rec))
	}

	if _, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, s.readRange, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: update range %s: %v", ErrSave, s.readRange, err)
	}

	return nil
}

func recordToRow(rec *domain.BookingRecord) []interface{} {
	return []interface{}{
		rec.ID,
		rec.Date,
		rec.TimeSlot,
		rec.Name,
		rec.Email,
		rec.Gender,
		strconv.Itoa(rec.Age),
		rec.Education,
		strconv.FormatBool(rec.NativePolishSpeaker),
		rec.Timestamp,
	}
}

func rowToRecord(row []interface{}) (*domain.BookingRecord, error) {
	if len(row) < sheetColumns {
		return nil, fmt.Errorf("expected %d columns, got %d", sheetColumns, len(row))
	}

	cells := make([]string, sheetColumns)
	for i := 0; i < sheetColumns; i++ {
		cell, ok := row[i].(string)
		if !ok {
			return nil, fmt.Errorf("column %d is not a string", i)
		}
		cells[i] = cell
	}

	if cells[0] == "" {
		return nil, fmt.Errorf("empty id")
	}

	age, err := strconv.Atoi(cells[6])
	if err != nil {
		return nil, fmt.Errorf("invalid age %q: %v", cells[6], err)
	}
	native, _ := strconv.ParseBool(cells[8])

	return &domain.BookingRecord{
		ID:                  cells[0],
		Date:                cells[1],
		TimeSlot:            cells[2],
		Name:                cells[3],
		Email:               cells[4],
		Gender:              cells[5],
		Age:                 age,
		Education:           cells[7],
		NativePolishSpeaker: native,
		Timestamp:           cells[9],
	}, nil
}
