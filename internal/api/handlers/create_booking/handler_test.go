package create_booking

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	createBooking "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	gotReq *createBooking.Request
	resp   *createBooking.Response
	err    error
}

func (s *stubUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	s.gotReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func postBook(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	uc := &stubUseCase{
		resp: &createBooking.Response{
			Booking: &domain.BookingRecord{
				ID:        "1700000000000",
				Date:      "2026-09-01",
				TimeSlot:  "10:00",
				Name:      "Jane Doe",
				Email:     "jane@example.com",
				Timestamp: "2026-08-30T10:00:00Z",
			},
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := postBook(t, h, `{
		"date": "2026-09-01",
		"timeSlot": "10:00",
		"name": "Jane Doe",
		"email": "jane@example.com",
		"gender": "female",
		"age": 30,
		"nativePolishSpeaker": true
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.False(t, resp.ReplacedExistingBooking)
	assert.Equal(t, "1700000000000", resp.Booking.ID)
	assert.Equal(t, "10:00", resp.Booking.TimeSlot)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "30", uc.gotReq.Age)
	assert.True(t, uc.gotReq.NativePolishSpeaker)
}

func TestHandler_ReplacedBooking(t *testing.T) {
	uc := &stubUseCase{
		resp: &createBooking.Response{
			Booking: &domain.BookingRecord{
				ID:       "2",
				Date:     "2026-09-02",
				TimeSlot: "11:00",
				Email:    "jane@example.com",
			},
			Replaced: &domain.BookingRecord{
				ID:       "1",
				Date:     "2026-09-01",
				TimeSlot: "10:00",
				Email:    "jane@example.com",
			},
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := postBook(t, h, `{"date":"2026-09-02","timeSlot":"11:00","name":"Jane","email":"jane@example.com","gender":"female","age":"30"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CreateBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.ReplacedExistingBooking)
	assert.Contains(t, resp.Message, "replaced")
}

func TestHandler_StringAndFormValues(t *testing.T) {
	uc := &stubUseCase{resp: &createBooking.Response{Booking: &domain.BookingRecord{ID: "1"}}}
	h := NewHandler(uc, nopLogger{})

	rec := postBook(t, h, `{"date":"2026-09-01","timeSlot":"10:00","name":"Jan","email":"jan@example.com","gender":"male","age":"42","nativePolishSpeaker":"on"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "42", uc.gotReq.Age)
	assert.True(t, uc.gotReq.NativePolishSpeaker)
}

func TestHandler_InvalidBody(t *testing.T) {
	h := NewHandler(&stubUseCase{}, nopLogger{})

	rec := postBook(t, h, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing fields", createBooking.ErrMissingFields, http.StatusBadRequest},
		{"invalid date", createBooking.ErrInvalidDate, http.StatusBadRequest},
		{"date not configured", createBooking.ErrDateNotConfigured, http.StatusBadRequest},
		{"invalid time slot", createBooking.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"invalid email", createBooking.ErrInvalidEmail, http.StatusBadRequest},
		{"invalid age", createBooking.ErrInvalidAge, http.StatusBadRequest},
		{"invalid education", createBooking.ErrInvalidEducation, http.StatusBadRequest},
		{"native speaker required", createBooking.ErrNativeSpeakerRequired, http.StatusBadRequest},
		{"slot taken", createBooking.ErrSlotTaken, http.StatusConflict},
		{"limit reached", createBooking.ErrBookingLimitReached, http.StatusConflict},
		{"internal", createBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, nopLogger{})

			rec := postBook(t, h, `{"date":"2026-09-01","timeSlot":"10:00","name":"Jan","email":"jan@example.com","gender":"male","age":"30"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}
