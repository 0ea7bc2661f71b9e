package domain

import (
	"fmt"
	"sort"
	"sync/atomic"
	"time"
)

// DaySchedule описывает один настроенный день каталога с собственным
// диапазоном рабочих часов (политика per-day)
type DaySchedule struct {
	Date      string // YYYY-MM-DD
	StartHour int
	EndHour   int
}

// Catalog is the immutable universe of bookable (date, timeSlot) pairs.
// It is constructed once from configuration and swapped atomically on reload,
// never mutated in place.
type Catalog struct {
	days  []string            // отсортированные даты
	slots map[string][]string // дата -> упорядоченные слоты HH:MM
}

// NewPerDayCatalog строит каталог из явного списка дней, каждый со своим
// диапазоном часов. Слоты генерируются по одному на каждый целый час,
// включая обе границы. Некорректные часы заменяются на 9–17.
func NewPerDayCatalog(days []DaySchedule) *Catalog {
	c := &Catalog{slots: make(map[string][]string)}
	for _, d := range days {
		if _, err := time.Parse(DateFormat, d.Date); err != nil {
			continue
		}
		if _, seen := c.slots[d.Date]; seen {
			continue
		}
		c.days = append(c.days, d.Date)
		c.slots[d.Date] = generateHourSlots(d.StartHour, d.EndHour)
	}
	sort.Strings(c.days)
	if len(c.days) == 0 {
		return defaultCatalog(time.Now())
	}
	return c
}

// NewWindowCatalog строит каталог с единым списком слотов для каждого дня
// в окне [minDate, maxDate] включительно
func NewWindowCatalog(minDate, maxDate string, timeSlots []string) (*Catalog, error) {
	from, err := time.Parse(DateFormat, minDate)
	if err != nil {
		return nil, fmt.Errorf("catalog: invalid min date %q: %w", minDate, err)
	}
	to, err := time.Parse(DateFormat, maxDate)
	if err != nil {
		return nil, fmt.Errorf("catalog: invalid max date %q: %w", maxDate, err)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("catalog: max date %s is before min date %s", maxDate, minDate)
	}
	if len(timeSlots) == 0 {
		timeSlots = generateHourSlots(DefaultStartHour, DefaultEndHour)
	}

	c := &Catalog{slots: make(map[string][]string)}
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		date := day.Format(DateFormat)
		c.days = append(c.days, date)
		c.slots[date] = timeSlots
	}
	return c, nil
}

// NewRollingWindowCatalog строит оконный каталог [today, today+daysAhead]
// относительно переданного момента времени
func NewRollingWindowCatalog(now time.Time, daysAhead int, timeSlots []string) *Catalog {
	if daysAhead <= 0 {
		daysAhead = DefaultWindowDays
	}
	minDate := now.Format(DateFormat)
	maxDate := now.AddDate(0, 0, daysAhead).Format(DateFormat)
	c, err := NewWindowCatalog(minDate, maxDate, timeSlots)
	if err != nil {
		// даты порождены из time.Now, сюда попасть нельзя
		return defaultCatalog(now)
	}
	return c
}

// defaultCatalog запасной каталог на случай полностью пустой конфигурации:
// окно от сегодняшнего дня с часами 9–17
func defaultCatalog(now time.Time) *Catalog {
	c, _ := NewWindowCatalog(
		now.Format(DateFormat),
		now.AddDate(0, 0, DefaultWindowDays).Format(DateFormat),
		generateHourSlots(DefaultStartHour, DefaultEndHour),
	)
	return c
}

// DaysConfigured возвращает упорядоченный список настроенных дат
func (c *Catalog) DaysConfigured() []string {
	return c.days
}

// SlotsFor возвращает упорядоченный список слотов для даты.
// Для ненастроенной даты возвращается nil.
func (c *Catalog) SlotsFor(date string) []string {
	return c.slots[date]
}

// IsConfiguredDate проверяет, что дата входит в каталог
func (c *Catalog) IsConfiguredDate(date string) bool {
	_, ok := c.slots[date]
	return ok
}

// Bounds возвращает минимальную и максимальную настроенные даты
func (c *Catalog) Bounds() (minDate, maxDate string) {
	if len(c.days) == 0 {
		return "", ""
	}
	return c.days[0], c.days[len(c.days)-1]
}

// generateHourSlots генерирует слоты по одному на каждый целый час в
// диапазоне [startHour, endHour] включительно, с ведущим нулём.
// Часы вне диапазона 0–23 или перепутанные границы заменяются на 9–17.
func generateHourSlots(startHour, endHour int) []string {
	if startHour < 0 || startHour > 23 || endHour < 0 || endHour > 23 || endHour < startHour {
		startHour = DefaultStartHour
		endHour = DefaultEndHour
	}
	slots := make([]string, 0, endHour-startHour+1)
	for h := startHour; h <= endHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

// CatalogHolder держит текущий каталог и позволяет атомарно подменить его
// при перезагрузке расписания. Обработчики всегда читают каталог через
// holder, а не через глобальное состояние.
type CatalogHolder struct {
	current atomic.Pointer[Catalog]
}

// NewCatalogHolder создает holder с начальным каталогом
func NewCatalogHolder(c *Catalog) *CatalogHolder {
	h := &CatalogHolder{}
	h.current.Store(c)
	return h
}

// Get возвращает текущий каталог
func (h *CatalogHolder) Get() *Catalog {
	return h.current.Load()
}

// Swap атомарно заменяет каталог новым
func (h *CatalogHolder) Swap(c *Catalog) {
	h.current.Store(c)
}
