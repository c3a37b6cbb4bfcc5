package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that everything the current environment needs is
// present. Tests get defaults for free; production refuses to start
// without credentials.
func ValidateConfig(cfg *Config) error {
	if IsTest() {
		if cfg.JWTSecret == "" {
			cfg.JWTSecret = "test-secret"
		}
		return nil
	}

	if cfg.JWTSecret == "" {
		return ValidationError{Field: "JWT_SECRET", Message: "is required"}
	}

	if IsProduction() || IsCI() {
		if cfg.DBUser == "" {
			return ValidationError{Field: "DB_USER", Message: "is required"}
		}
		if cfg.DBPassword == "" {
			return ValidationError{Field: "DB_PASSWORD", Message: "is required"}
		}
		if cfg.DBName == "" {
			return ValidationError{Field: "DB_NAME", Message: "is required"}
		}
	}

	return nil
}
