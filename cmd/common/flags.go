package common

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// FlagValidator collects flag validation errors across a builder chain
type FlagValidator struct {
	errors []string
}

// NewFlagValidator creates a new flag validator
func NewFlagValidator() *FlagValidator {
	return &FlagValidator{
		errors: make([]string, 0),
	}
}

// ValidateFloat validates a float flag value
func (v *FlagValidator) ValidateFloat(name string, value float64, min, max float64) *FlagValidator {
	if value < min || value > max {
		v.errors = append(v.errors, fmt.Sprintf("%s must be between %.4f and %.4f, got: %.4f", name, min, max, value))
	}
	return v
}

// ValidateInt validates an int flag value
func (v *FlagValidator) ValidateInt(name string, value int, min, max int) *FlagValidator {
	if value < min || value > max {
		v.errors = append(v.errors, fmt.Sprintf("%s must be between %d and %d, got: %d", name, min, max, value))
	}
	return v
}

// ValidateRequired validates that a string flag was provided
func (v *FlagValidator) ValidateRequired(name, value string) *FlagValidator {
	if strings.TrimSpace(value) == "" {
		v.errors = append(v.errors, fmt.Sprintf("%s is required", name))
	}
	return v
}

// ValidateChoice validates that a string is one of the allowed choices
func (v *FlagValidator) ValidateChoice(name, value string, choices []string) *FlagValidator {
	for _, choice := range choices {
		if value == choice {
			return v
		}
	}
	v.errors = append(v.errors, fmt.Sprintf("%s must be one of [%s], got: %s", name, strings.Join(choices, ", "), value))
	return v
}

// ValidateFile validates that a file exists
func (v *FlagValidator) ValidateFile(name, path string, required bool) *FlagValidator {
	if path == "" {
		if required {
			v.errors = append(v.errors, fmt.Sprintf("%s is required", name))
		}
		return v
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		v.errors = append(v.errors, fmt.Sprintf("%s file does not exist: %s", name, path))
	}
	return v
}

// AddError adds a custom validation error
func (v *FlagValidator) AddError(message string) *FlagValidator {
	v.errors = append(v.errors, message)
	return v
}

// AddFieldErrors merges per-field validation messages, keyed by field name
func (v *FlagValidator) AddFieldErrors(fields map[string]string) *FlagValidator {
	for field, message := range fields {
		v.errors = append(v.errors, fmt.Sprintf("%s: %s", field, message))
	}
	return v
}

// HasErrors returns true if there are validation errors
func (v *FlagValidator) HasErrors() bool {
	return len(v.errors) > 0
}

// GetError returns a formatted error message with all validation errors
func (v *FlagValidator) GetError() error {
	if len(v.errors) == 0 {
		return nil
	}

	if len(v.errors) == 1 {
		return fmt.Errorf("validation error: %s", v.errors[0])
	}

	return fmt.Errorf("validation errors:\n  - %s", strings.Join(v.errors, "\n  - "))
}

// PrintErrors prints all validation errors
func (v *FlagValidator) PrintErrors() {
	if len(v.errors) == 0 {
		return
	}

	fmt.Fprintf(os.Stderr, "❌ Flag validation errors:\n")
	for _, err := range v.errors {
		fmt.Fprintf(os.Stderr, "   • %s\n", err)
	}
}

// UsageFormatter formats per-command usage output
type UsageFormatter struct {
	AppName        string
	AppDescription string
	Examples       []UsageExample
}

// UsageExample represents a usage example
type UsageExample struct {
	Command     string
	Description string
}

// NewUsageFormatter creates a new usage formatter
func NewUsageFormatter(appName, description string) *UsageFormatter {
	return &UsageFormatter{
		AppName:        appName,
		AppDescription: description,
		Examples:       make([]UsageExample, 0),
	}
}

// AddExample adds a usage example
func (u *UsageFormatter) AddExample(command, description string) *UsageFormatter {
	u.Examples = append(u.Examples, UsageExample{
		Command:     command,
		Description: description,
	})
	return u
}

// PrintUsage prints formatted usage for one command's flag set
func (u *UsageFormatter) PrintUsage(fs *flag.FlagSet) {
	fmt.Printf("%s - %s\n\n", u.AppName, u.AppDescription)

	fmt.Printf("USAGE:\n")
	fmt.Printf("  %s [OPTIONS]\n\n", u.AppName)

	if len(u.Examples) > 0 {
		fmt.Printf("EXAMPLES:\n")
		for _, example := range u.Examples {
			fmt.Printf("  # %s\n", example.Description)
			fmt.Printf("  %s\n\n", example.Command)
		}
	}

	fmt.Printf("OPTIONS:\n")
	fs.PrintDefaults()
}
