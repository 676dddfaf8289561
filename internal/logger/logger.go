package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/mattn/go-isatty"
)

var (
	InfoLogger  *log.Logger
	WarnLogger  *log.Logger
	ErrorLogger *log.Logger

	useColor bool
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
)

func init() {
	color := isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	SetOutput(os.Stderr, color)
}

// SetOutput redirects all loggers to w. Colour prefixes are only written when color is set.
func SetOutput(w io.Writer, color bool) {
	useColor = color
	InfoLogger = log.New(w, prefix("INFO", colorGreen, color), log.Ldate|log.Ltime)
	WarnLogger = log.New(w, prefix("WARN", colorYellow, color), log.Ldate|log.Ltime)
	ErrorLogger = log.New(w, prefix("ERROR", colorRed, color), log.Ldate|log.Ltime)
}

func prefix(level, c string, color bool) string {
	if !color {
		return fmt.Sprintf("[%s] ", level)
	}
	return fmt.Sprintf("%s[%s]%s ", c, level, colorReset)
}

// Info logs information messages
func Info(format string, v ...interface{}) {
	InfoLogger.Printf(format, v...)
}

// Warn logs warning messages
func Warn(format string, v ...interface{}) {
	WarnLogger.Printf(format, v...)
}

// Error logs error messages
func Error(format string, v ...interface{}) {
	ErrorLogger.Printf(format, v...)
}

// Fatal logs error message and exits
func Fatal(format string, v ...interface{}) {
	ErrorLogger.Printf(format, v...)
	os.Exit(1)
}

// RequestLog logs HTTP request information
func RequestLog(method, path, ip string, status int, duration time.Duration) {
	m := method
	if useColor {
		m = colorBlue + method + colorReset
	}
	InfoLogger.Printf("[%s] %s from %s -> %d took %v", m, path, ip, status, duration)
}
