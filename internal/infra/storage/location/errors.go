package location

import "errors"

var (
	// ErrCountryNotFound возвращается, когда страна не найдена
	ErrCountryNotFound = errors.New("location.repository: country not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("location.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("location.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("location.repository: failed to scan row")
)
