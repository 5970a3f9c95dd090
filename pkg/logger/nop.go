package logger

// NopLogger descarta todas as mensagens. Útil em testes.
type NopLogger struct{}

// NewNopLogger cria um Logger que não escreve nada
func NewNopLogger() Logger {
	return NopLogger{}
}

func (NopLogger) Info(msg string, keysAndValues ...interface{})  {}
func (NopLogger) Error(msg string, keysAndValues ...interface{}) {}
func (NopLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (NopLogger) Warn(msg string, keysAndValues ...interface{})  {}
