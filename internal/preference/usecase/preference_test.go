package usecase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ai-todo/internal/preference"
	"ai-todo/pkg/log"
)

func TestPreferences(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")

	uc, err := New(log.NewNop(), path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	t.Run("fresh store is disabled", func(t *testing.T) {
		if uc.APIKey() != "" || uc.IsAIEnabled() {
			t.Errorf("expected empty store, got key=%q enabled=%v", uc.APIKey(), uc.IsAIEnabled())
		}
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Error("file should not be written before the first save")
		}
	})

	t.Run("blank key is rejected", func(t *testing.T) {
		if err := uc.SaveAPIKey(ctx, "   "); !errors.Is(err, preference.ErrBlankAPIKey) {
			t.Errorf("expected ErrBlankAPIKey, got %v", err)
		}
	})

	t.Run("save persists across reopen", func(t *testing.T) {
		if err := uc.SaveAPIKey(ctx, " sk-123456789 "); err != nil {
			t.Fatalf("save: %v", err)
		}
		if !uc.IsAIEnabled() || uc.APIKey() != "sk-123456789" {
			t.Fatalf("unexpected state key=%q enabled=%v", uc.APIKey(), uc.IsAIEnabled())
		}

		reopened, err := New(log.NewNop(), path)
		if err != nil {
			t.Fatalf("reopen: %v", err)
		}
		if reopened.APIKey() != "sk-123456789" || !reopened.IsAIEnabled() {
			t.Errorf("key not persisted")
		}

		st := reopened.Status()
		if !st.Enabled || !st.HasKey || st.MaskedKey != "********6789" {
			t.Errorf("unexpected status %+v", st)
		}

		info, _ := os.Stat(path)
		if info.Mode().Perm() != 0o600 {
			t.Errorf("unexpected file mode %v", info.Mode().Perm())
		}
	})

	t.Run("clear disables AI", func(t *testing.T) {
		if err := uc.ClearAPIKey(ctx); err != nil {
			t.Fatalf("clear: %v", err)
		}
		reopened, _ := New(log.NewNop(), path)
		if reopened.APIKey() != "" || reopened.IsAIEnabled() {
			t.Errorf("expected cleared store")
		}
		if st := reopened.Status(); st.HasKey || st.MaskedKey != "" {
			t.Errorf("unexpected status %+v", st)
		}
	})
}

func TestPreferences_FlagWithoutKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")
	os.WriteFile(path, []byte("ai_enabled: true\n"), 0o600)

	uc, err := New(log.NewNop(), path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if uc.IsAIEnabled() {
		t.Error("flag without a key must not enable AI")
	}
}

func TestMaskKey(t *testing.T) {
	cases := map[string]string{"": "", "abc": "***", "abcdef": "**cdef"}
	for in, want := range cases {
		if got := maskKey(in); got != want {
			t.Errorf("maskKey(%q) = %q, want %q", in, got, want)
		}
	}
}
