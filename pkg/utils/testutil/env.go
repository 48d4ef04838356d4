package testutil

import (
	"os"
	"os/exec"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// BinaryOrSkip resolves the external command named by the environment
// variable, such as git or gitleaks. The test is skipped when the variable
// is not set and fails when the command can not be found.
func BinaryOrSkip(t *testing.T, key string) string {
	t.Helper()
	name := GetEnvOrSkip(t, key)
	path, err := exec.LookPath(name)
	if err != nil {
		t.Fatalf("%s=%s is not an executable: %v", key, name, err)
	}
	return path
}
