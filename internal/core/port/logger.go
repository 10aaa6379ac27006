package port

// Fields - структурированные данные, прикладываемые к записи лога.
type Fields map[string]interface{}

// LoggerPort - контракт системы логирования. Ядро не знает о
// конкретной реализации (slog, fluent, composite).
type LoggerPort interface {
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	// Error пишет ошибку вместе с объектом error.
	Error(msg string, err error, fields Fields)
	Debug(msg string, fields Fields)

	// WithFields возвращает новый логгер с уже добавленным контекстом
	// (например, trace_id или component).
	WithFields(fields Fields) LoggerPort
}
