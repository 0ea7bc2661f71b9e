package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

func strictRules() Rules {
	return Rules{
		MinAge:               18,
		MaxAge:               120,
		RequireEducation:     true,
		RequireNativeSpeaker: true,
		MaxTotalBookings:     30,
	}
}

func TestValidateRequest_Order_MissingFieldsWinFirst(t *testing.T) {
	catalog := testCatalog().Get()

	// дата и email некорректны одновременно, но первой должна сработать
	// проверка обязательных полей
	req := &Request{Date: "bad-date", Email: "also bad"}
	err := validateRequest(req, strictRules(), catalog)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestValidateRequest_DateSyntaxBeforeCatalogMembership(t *testing.T) {
	catalog := testCatalog().Get()

	req := validRequest()
	req.Date = "07.09.2026"
	err := validateRequest(req, strictRules(), catalog)
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestValidateRequest_EducationEnum(t *testing.T) {
	catalog := testCatalog().Get()

	for _, education := range []string{"higher", "studies", "other"} {
		req := validRequest()
		req.Education = education
		assert.NoError(t, validateRequest(req, strictRules(), catalog), education)
	}

	req := validRequest()
	req.Education = "phd"
	assert.ErrorIs(t, validateRequest(req, strictRules(), catalog), ErrInvalidEducation)

	// без требования education произвольное значение допустимо
	relaxed := strictRules()
	relaxed.RequireEducation = false
	assert.NoError(t, validateRequest(req, relaxed, catalog))
}

func TestValidateRequest_NativeSpeakerAttestation(t *testing.T) {
	catalog := testCatalog().Get()

	req := validRequest()
	req.NativePolishSpeaker = false
	assert.ErrorIs(t, validateRequest(req, strictRules(), catalog), ErrNativeSpeakerRequired)

	relaxed := strictRules()
	relaxed.RequireNativeSpeaker = false
	assert.NoError(t, validateRequest(req, relaxed, catalog))
}

func TestParseAge_Bounds(t *testing.T) {
	cases := []struct {
		raw    string
		minAge int
		maxAge int
		ok     bool
	}{
		{"18", 18, 120, true},
		{"120", 18, 120, true},
		{"17", 18, 120, false},
		{"121", 18, 120, false},
		{"1", 1, 120, true}, // минимальный вариант анкеты
		{"0", 1, 120, false},
		{" 30 ", 18, 120, true},
		{"thirty", 18, 120, false},
		{"30.5", 18, 120, false},
	}
	for _, tc := range cases {
		_, err := parseAge(tc.raw, tc.minAge, tc.maxAge)
		if tc.ok {
			assert.NoError(t, err, tc.raw)
		} else {
			assert.ErrorIs(t, err, ErrInvalidAge, tc.raw)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"jan@example.com",
		"jan.kowalski@mail.example.com",
		"a@b.co",
	}
	for _, email := range valid {
		assert.True(t, isValidEmail(email), email)
	}

	invalid := []string{
		"",
		"janexample.com",      // нет @
		"jan@@example.com",    // два @
		"jan@example",         // нет точки в домене
		"jan kowalski@ex.com", // пробел
		"@example.com",        // пустая локальная часть
		"jan@",                // пустой домен
	}
	for _, email := range invalid {
		assert.False(t, isValidEmail(email), email)
	}
}

func TestPartitionByEmail(t *testing.T) {
	records := []*domain.BookingRecord{
		{ID: "1", Email: "a@example.com"},
		{ID: "2", Email: "B@Example.com"},
		{ID: "3", Email: "b@example.com"},
		{ID: "4", Email: "c@example.com"},
	}

	replaced, others := partitionByEmail(records, "b@example.com")
	assert.Equal(t, "2", replaced.ID)
	assert.Len(t, others, 2)

	replaced, others = partitionByEmail(records, "missing@example.com")
	assert.Nil(t, replaced)
	assert.Len(t, others, 4)
}
