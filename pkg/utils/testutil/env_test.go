package testutil_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/leakscan/pkg/utils/testutil"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Run("Returns value when env var is set", func(t *testing.T) {
		key := "TEST_ENV_VAR_SET"
		expected := "test_value"
		t.Setenv(key, expected)

		value := testutil.GetEnvOrSkip(t, key)
		gt.V(t, value).Equal(expected)
	})
}

func TestBinaryOrSkip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit is not used on windows")
	}

	bin := filepath.Join(t.TempDir(), "fake-gitleaks")
	gt.NoError(t, os.WriteFile(bin, []byte("#!/bin/sh\nexit 0\n"), 0755))
	t.Setenv("TEST_FAKE_BINARY", bin)

	path := testutil.BinaryOrSkip(t, "TEST_FAKE_BINARY")
	gt.V(t, path).Equal(bin)
}
