package usecase

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/viper"

	"ai-todo/internal/preference"
	pkgLog "ai-todo/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	path string

	mu sync.Mutex
	v  *viper.Viper
}

// New opens the preferences file at path. A missing file is an empty store;
// it is created on the first save.
func New(l pkgLog.Logger, path string) (preference.UseCase, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetConfigPermissions(0o600)
	v.SetDefault(preference.KeyAIEnabled, false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read preferences %s: %w", path, err)
		}
	}

	return &implUseCase{l: l, path: path, v: v}, nil
}

// persist writes the current settings. Callers hold uc.mu.
func (uc *implUseCase) persist() error {
	if dir := filepath.Dir(uc.path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	return uc.v.WriteConfigAs(uc.path)
}
