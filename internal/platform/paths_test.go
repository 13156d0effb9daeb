package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDirectory(t *testing.T) {
	t.Run("EmptyUsesWorkingDirectory", func(t *testing.T) {
		wd, err := os.Getwd()
		if err != nil {
			t.Fatalf("Getwd() error = %v", err)
		}

		got, err := ResolveDirectory("")
		if err != nil {
			t.Fatalf("ResolveDirectory() error = %v", err)
		}
		if got != wd {
			t.Errorf("ResolveDirectory(\"\") = %s, want %s", got, wd)
		}
	})

	t.Run("RelativeBecomesAbsolute", func(t *testing.T) {
		got, err := ResolveDirectory("some/dir/../dir")
		if err != nil {
			t.Fatalf("ResolveDirectory() error = %v", err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("ResolveDirectory() = %s, want absolute", got)
		}
		if filepath.Base(got) != "dir" || filepath.Base(filepath.Dir(got)) != "some" {
			t.Errorf("ResolveDirectory() = %s, want .../some/dir", got)
		}
	})

	t.Run("HomeExpansion", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)

		got, err := ResolveDirectory("~/Downloads")
		if err != nil {
			t.Fatalf("ResolveDirectory() error = %v", err)
		}
		if got != filepath.Join(home, "Downloads") {
			t.Errorf("ResolveDirectory() = %s, want %s", got, filepath.Join(home, "Downloads"))
		}
	})

	t.Run("NulByte", func(t *testing.T) {
		_, err := ResolveDirectory("bad\x00path")
		var perr *PathError
		if !errors.As(err, &perr) {
			t.Errorf("ResolveDirectory() error = %v, want PathError", err)
		}
	})
}

func TestNormalizePath(t *testing.T) {
	if got := NormalizePath("a//b/./c/"); got != filepath.Join("a", "b", "c") {
		t.Errorf("NormalizePath() = %s", got)
	}
}

func TestValidatePath(t *testing.T) {
	if err := ValidatePath(""); err == nil {
		t.Error("ValidatePath(\"\") should fail")
	}
	if err := ValidatePath("/tmp/downloads"); err != nil {
		t.Errorf("ValidatePath() error = %v", err)
	}
}
