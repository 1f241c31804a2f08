// Package config reads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Get returns the value of the environment variable named by key, or
// fallback if the variable is unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// MustGet returns the value of a required environment variable, or an error
// naming it when unset.
func MustGet(key string) (string, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return v, nil
}
