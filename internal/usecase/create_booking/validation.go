package create_booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// validateRequest проверяет заявку в фиксированном порядке, первая
// непройденная проверка завершает валидацию
func validateRequest(req *Request, rules Rules, catalog *domain.Catalog) error {
	// 1. Обязательные поля
	if missing := missingFields(req, rules); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	// 2. Дата: синтаксис и принадлежность каталогу
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}
	if !catalog.IsConfiguredDate(req.Date) {
		return fmt.Errorf("%w: %s", ErrDateNotConfigured, req.Date)
	}

	// 3. Слот входит в список слотов именно этой даты
	if _, err := types.NewTimeStringFromString(req.TimeSlot); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeSlot, req.TimeSlot)
	}
	if !slotBelongsToDate(catalog, req.Date, req.TimeSlot) {
		return fmt.Errorf("%w: %s on %s", ErrInvalidTimeSlot, req.TimeSlot, req.Date)
	}

	// 4. Email
	if !isValidEmail(strings.TrimSpace(req.Email)) {
		return ErrInvalidEmail
	}

	// 5. Возраст
	if _, err := parseAge(req.Age, rules.MinAge, rules.MaxAge); err != nil {
		return err
	}

	// 6. Образование (если требуется анкетой)
	if rules.RequireEducation && !domain.IsValidEducation(req.Education) {
		return fmt.Errorf("%w: %q", ErrInvalidEducation, req.Education)
	}

	// 7. Подтверждение родного языка (если требуется анкетой)
	if rules.RequireNativeSpeaker && !req.NativePolishSpeaker {
		return ErrNativeSpeakerRequired
	}

	return nil
}

func missingFields(req *Request, rules Rules) []string {
	var missing []string
	if strings.TrimSpace(req.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(req.TimeSlot) == "" {
		missing = append(missing, "timeSlot")
	}
	if strings.TrimSpace(req.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(req.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(req.Gender) == "" {
		missing = append(missing, "gender")
	}
	if strings.TrimSpace(req.Age) == "" {
		missing = append(missing, "age")
	}
	if rules.RequireEducation && strings.TrimSpace(req.Education) == "" {
		missing = append(missing, "education")
	}
	return missing
}

// isValidEmail упрощенная проверка формы email: ровно один @, хотя бы
// одна точка в доменной части, без пробельных символов
func isValidEmail(email string) bool {
	if email == "" || strings.ContainsAny(email, " \t\n\r") {
		return false
	}
	at := strings.Count(email, "@")
	if at != 1 {
		return false
	}
	parts := strings.SplitN(email, "@", 2)
	local, domainPart := parts[0], parts[1]
	if local == "" || domainPart == "" {
		return false
	}
	return strings.Contains(domainPart, ".")
}

func parseAge(raw string, minAge, maxAge int) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidAge, raw)
	}
	if age < minAge || age > maxAge {
		return 0, fmt.Errorf("%w: %d is outside [%d, %d]", ErrInvalidAge, age, minAge, maxAge)
	}
	return age, nil
}

func slotBelongsToDate(catalog *domain.Catalog, date, timeSlot string) bool {
	for _, slot := range catalog.SlotsFor(date) {
		if slot == timeSlot {
			return true
		}
	}
	return false
}

// partitionByEmail делит записи на "свою" (первая запись с тем же
// нормализованным email, она будет вытеснена) и все остальные.
// Дубликаты того же email за пределами первой записи отбрасываются:
// замена восстанавливает инвариант одной активной записи на email.
func partitionByEmail(records []*domain.BookingRecord, normalized string) (replaced *domain.BookingRecord, others []*domain.BookingRecord) {
	others = make([]*domain.BookingRecord, 0, len(records))
	for _, rec := range records {
		if rec.HasEmail(normalized) {
			if replaced == nil {
				replaced = rec
			}
			continue
		}
		others = append(others, rec)
	}
	return replaced, others
}
