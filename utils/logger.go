package utils

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Logger writes info lines to stdout and errors to stderr.
type Logger struct {
	info  *log.Logger
	error *log.Logger
}

var Log = NewLogger(os.Stdout, os.Stderr)

func NewLogger(out, errOut io.Writer) *Logger {
	return &Logger{
		info:  log.New(out, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile),
		error: log.New(errOut, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

func (l *Logger) Info(msg string) {
	_ = l.info.Output(2, msg)
}

func (l *Logger) Error(msg string) {
	_ = l.error.Output(2, msg)
}

func (l *Logger) Infof(format string, args ...any) {
	_ = l.info.Output(2, fmt.Sprintf(format, args...))
}

func (l *Logger) Errorf(format string, args ...any) {
	_ = l.error.Output(2, fmt.Sprintf(format, args...))
}
