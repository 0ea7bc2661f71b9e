package get_available_slots

// Request модель запроса доступных слотов.
// Date опциональна: пустая или нераспознанная дата заменяется минимальной
// датой каталога.
type Request struct {
	Date string
}

// Response модель ответа со слотами на выбранную дату
type Response struct {
	Date            string
	MinDate         string
	MaxDate         string
	ConfiguredDates []string
	AllSlots        []string
	AvailableSlots  []string
	BookedSlots     []string
}
