package schedule

import "errors"

var (
	// ErrWeeklyScheduleNotFound возвращается, когда недельный шаблон не настроен
	ErrWeeklyScheduleNotFound = errors.New("schedule.repository: weekly schedule not found")

	// ErrSpecialDayNotFound возвращается, когда переопределение на дату не найдено
	ErrSpecialDayNotFound = errors.New("schedule.repository: special day not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")

	// ErrTransaction возвращается при ошибках работы с транзакцией
	ErrTransaction = errors.New("schedule.repository: transaction error")
)
