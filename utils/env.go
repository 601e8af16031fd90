package utils

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// LoadEnv loads a .env file if one exists. Already-set variables are
// not overridden.
func LoadEnv() {
	_ = godotenv.Load()
}

// ReadStringEnvVar reads a required environment variable.
func ReadStringEnvVar(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", errors.Errorf("%s not set", name)
	}
	return value, nil
}

// ReadStringEnvVarOr reads an environment variable with a fallback.
func ReadStringEnvVarOr(name string, or string) string {
	value, err := ReadStringEnvVar(name)
	if err != nil {
		value = or
	}
	return value
}

// ReadIntEnvVarOr reads an integer environment variable with a fallback.
func ReadIntEnvVarOr(name string, or int) int {
	valueStr, err := ReadStringEnvVar(name)
	if err != nil {
		return or
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return or
	}
	return value
}

// ReadBoolEnvVarOr reads a boolean environment variable with a fallback.
func ReadBoolEnvVarOr(name string, or bool) bool {
	valueStr, err := ReadStringEnvVar(name)
	if err != nil {
		return or
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return or
	}
	return value
}
