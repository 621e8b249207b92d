package tables

import "fmt"

// ConfigurationError is fatal and raised at reference-table load time:
// an unknown model variant, a missing table file, a malformed CSV
// header, or contradictory load options (spec.md §7).
type ConfigurationError struct {
	Reason string
	Path   string
}

func (e *ConfigurationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Reason, e.Path)
}

func configErr(path, format string, args ...any) error {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...), Path: path}
}
