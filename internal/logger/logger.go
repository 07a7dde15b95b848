package logger

import "log"

// Logger is the minimal logging surface the service layer depends on.
type Logger interface {
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct{}

// New returns a Logger backed by the standard library log package.
func New() Logger { return &stdLogger{} }

func (l *stdLogger) Infof(format string, v ...any)  { log.Printf("[INFO] "+format, v...) }
func (l *stdLogger) Errorf(format string, v ...any) { log.Printf("[ERROR] "+format, v...) }
