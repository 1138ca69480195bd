package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Logger prints user-facing console output. It is separate from the
// structured log file; this is what the operator sees.
type Logger struct {
	ShowEmojis bool
	SilentMode bool
}

// NewLogger creates a new logger with default settings
func NewLogger() *Logger {
	return &Logger{
		ShowEmojis: true,
		SilentMode: false,
	}
}

// SetSilentMode enables or disables silent mode
func (l *Logger) SetSilentMode(silent bool) {
	l.SilentMode = silent
}

// Header prints a formatted header
func (l *Logger) Header(title string) {
	if l.SilentMode {
		return
	}

	emoji := "🎯"
	if !l.ShowEmojis {
		emoji = "***"
	}

	fmt.Printf("\n%s %s\n", emoji, strings.ToUpper(title))
	fmt.Printf("%s\n", strings.Repeat("=", len(title)+5))
}

// Section prints a formatted section header
func (l *Logger) Section(title string) {
	if l.SilentMode {
		return
	}

	emoji := "📋"
	if !l.ShowEmojis {
		emoji = "---"
	}

	fmt.Printf("\n%s %s\n", emoji, title)
	fmt.Printf("%s\n", strings.Repeat("-", len(title)+5))
}

// Info prints an info message
func (l *Logger) Info(format string, args ...interface{}) {
	if l.SilentMode {
		return
	}

	emoji := "ℹ️"
	if !l.ShowEmojis {
		emoji = "[INFO]"
	}

	fmt.Printf("%s  %s\n", emoji, fmt.Sprintf(format, args...))
}

// Error prints an error message
func (l *Logger) Error(format string, args ...interface{}) {
	emoji := "❌"
	if !l.ShowEmojis {
		emoji = "[ERROR]"
	}

	fmt.Printf("%s %s\n", emoji, fmt.Sprintf(format, args...))
}

// Success prints a success message
func (l *Logger) Success(format string, args ...interface{}) {
	if l.SilentMode {
		return
	}

	emoji := "✅"
	if !l.ShowEmojis {
		emoji = "[SUCCESS]"
	}

	fmt.Printf("%s %s\n", emoji, fmt.Sprintf(format, args...))
}

// Warn prints a warning message
func (l *Logger) Warn(format string, args ...interface{}) {
	emoji := "⚠️"
	if !l.ShowEmojis {
		emoji = "[WARN]"
	}

	fmt.Printf("%s  %s\n", emoji, fmt.Sprintf(format, args...))
}

// Progress prints a progress message
func (l *Logger) Progress(format string, args ...interface{}) {
	if l.SilentMode {
		return
	}

	emoji := "🔄"
	if !l.ShowEmojis {
		emoji = "[PROGRESS]"
	}

	fmt.Printf("%s %s\n", emoji, fmt.Sprintf(format, args...))
}

// Quiet prints an indented detail line (only when not in silent mode)
func (l *Logger) Quiet(format string, args ...interface{}) {
	if !l.SilentMode {
		fmt.Printf("   %s\n", fmt.Sprintf(format, args...))
	}
}

// EnvLoader provides environment loading utilities
type EnvLoader struct {
	logger *Logger
}

// NewEnvLoader creates a new environment loader
func NewEnvLoader(logger *Logger) *EnvLoader {
	return &EnvLoader{logger: logger}
}

// LoadEnvFile loads environment variables from a file. A missing file is
// not an error; the system environment still applies.
func (e *EnvLoader) LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		e.logger.Warn("Could not load environment file %s: %v", path, err)
		return err
	}

	return nil
}

// GetEnvWithDefault gets an environment variable with a default value
func (e *EnvLoader) GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// FormatUtils provides formatting utilities
type FormatUtils struct{}

// NewFormatUtils creates a new format utilities instance
func NewFormatUtils() *FormatUtils {
	return &FormatUtils{}
}

// FormatPercent formats a percentage value
func (f *FormatUtils) FormatPercent(value float64, precision int) string {
	return fmt.Sprintf("%.*f%%", precision, value)
}

// FormatCurrency formats a value as currency
func (f *FormatUtils) FormatCurrency(value float64) string {
	return fmt.Sprintf("$%.2f", value)
}

// Global instances for convenience
var (
	DefaultLogger    = NewLogger()
	DefaultEnvLoader = NewEnvLoader(DefaultLogger)
	DefaultFormatter = NewFormatUtils()
)

// Convenience functions using global instances
func Header(title string)                         { DefaultLogger.Header(title) }
func Section(title string)                        { DefaultLogger.Section(title) }
func Info(format string, args ...interface{})     { DefaultLogger.Info(format, args...) }
func Error(format string, args ...interface{})    { DefaultLogger.Error(format, args...) }
func Success(format string, args ...interface{})  { DefaultLogger.Success(format, args...) }
func Warn(format string, args ...interface{})     { DefaultLogger.Warn(format, args...) }
func Progress(format string, args ...interface{}) { DefaultLogger.Progress(format, args...) }
func Quiet(format string, args ...interface{})    { DefaultLogger.Quiet(format, args...) }
func SetSilentMode(silent bool)                   { DefaultLogger.SetSilentMode(silent) }

func LoadEnvFile(path string) error            { return DefaultEnvLoader.LoadEnvFile(path) }
func GetEnvWithDefault(key, def string) string { return DefaultEnvLoader.GetEnvWithDefault(key, def) }

func FormatPercent(val float64, prec int) string { return DefaultFormatter.FormatPercent(val, prec) }
func FormatCurrency(val float64) string          { return DefaultFormatter.FormatCurrency(val) }
