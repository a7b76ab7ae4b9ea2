package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Request модель запроса доступности слотов на дату
type Request struct {
	Date time.Time // Дата без времени
}

// Response модель ответа с доступностью на дату
type Response struct {
	Date    time.Time // Дата, на которую запрашивались слоты
	Closed  bool      // Заведение закрыто в эту дату
	Message string    // Пояснение для гостя, когда слотов нет
	Slots   []Slot    // Слоты обеих смен, обед перед ужином
}

// Slot один слот c состоянием занятости
type Slot struct {
	Time      types.TimeString // Время слота (например, "13:30")
	Shift     string           // "LUNCH" или "DINNER"
	Occupied  int              // Количество активных броней на слот
	Capacity  int              // Вместимость слота
	IsPast    bool             // Слот уже прошёл
	Available bool             // Можно ли бронировать слот
}
