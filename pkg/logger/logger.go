// Package logger define a interface de logging usada em todo o backend.
package logger

import (
	"log"
	"os"
)

// Logger é a interface para logging em pares chave/valor
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// SimpleLogger é uma implementação de Logger sobre o log padrão
type SimpleLogger struct {
	out *log.Logger
	err *log.Logger
}

// NewLogger cria uma nova instância de Logger
func NewLogger() Logger {
	return &SimpleLogger{
		out: log.New(os.Stdout, "", log.Ldate|log.Ltime),
		err: log.New(os.Stderr, "", log.Ldate|log.Ltime),
	}
}

// Info registra uma mensagem de informação
func (l *SimpleLogger) Info(msg string, keysAndValues ...interface{}) {
	l.out.Printf("INFO: "+msg+" %v", keysAndValues)
}

// Error registra uma mensagem de erro
func (l *SimpleLogger) Error(msg string, keysAndValues ...interface{}) {
	l.err.Printf("ERROR: "+msg+" %v", keysAndValues)
}

// Debug registra uma mensagem de debug
func (l *SimpleLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.out.Printf("DEBUG: "+msg+" %v", keysAndValues)
}

// Warn registra uma mensagem de aviso
func (l *SimpleLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.out.Printf("WARN: "+msg+" %v", keysAndValues)
}
