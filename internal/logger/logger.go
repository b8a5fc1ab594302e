package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/drivemark/drivemark/internal/config"
)

// LoggerInterface defines the interface for logging
type LoggerInterface interface {
	Info(v ...any)
	Infof(format string, v ...any)
	Warn(v ...any)
	Warnf(format string, v ...any)
	Error(v ...any)
	Errorf(format string, v ...any)
	Debug(v ...any)
	Debugf(format string, v ...any)
	Close() error
}

type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
	debugLogger *log.Logger
	file        *os.File
}

// NewLogger creates a logger writing to the configured log file and stdout
func NewLogger(cfg config.ConfigProvider) (LoggerInterface, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config not initialized")
	}

	logDir := filepath.Dir(cfg.GetLogPath())
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	file, err := os.OpenFile(cfg.GetLogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	multiWriter := io.MultiWriter(file, os.Stdout)

	return &Logger{
		infoLogger:  log.New(multiWriter, "INFO:  ", log.Ldate|log.Ltime|log.Lshortfile),
		warnLogger:  log.New(multiWriter, "WARN:  ", log.Ldate|log.Ltime|log.Lshortfile),
		errorLogger: log.New(multiWriter, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile),
		debugLogger: log.New(multiWriter, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile),
		file:        file,
	}, nil
}

func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) Info(v ...any) {
	l.infoLogger.Println(v...)
}

func (l *Logger) Infof(format string, v ...any) {
	l.infoLogger.Printf(format, v...)
}

func (l *Logger) Warn(v ...any) {
	l.warnLogger.Println(v...)
}

func (l *Logger) Warnf(format string, v ...any) {
	l.warnLogger.Printf(format, v...)
}

func (l *Logger) Error(v ...any) {
	l.errorLogger.Println(v...)
}

func (l *Logger) Errorf(format string, v ...any) {
	l.errorLogger.Printf(format, v...)
}

func (l *Logger) Debug(v ...any) {
	l.debugLogger.Println(v...)
}

func (l *Logger) Debugf(format string, v ...any) {
	l.debugLogger.Printf(format, v...)
}
