package usecase

import (
	"context"
	"strings"

	"ai-todo/internal/preference"
)

func (uc *implUseCase) SaveAPIKey(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return preference.ErrBlankAPIKey
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.v.Set(preference.KeyAPIKey, key)
	uc.v.Set(preference.KeyAIEnabled, true)
	if err := uc.persist(); err != nil {
		uc.l.Errorf(ctx, "preference.usecase.SaveAPIKey: %v", err)
		return preference.ErrFailedToSave
	}

	uc.l.Infof(ctx, "preference.usecase.SaveAPIKey: AI enabled")
	return nil
}

func (uc *implUseCase) APIKey() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return strings.TrimSpace(uc.v.GetString(preference.KeyAPIKey))
}

func (uc *implUseCase) IsAIEnabled() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.v.GetBool(preference.KeyAIEnabled) && strings.TrimSpace(uc.v.GetString(preference.KeyAPIKey)) != ""
}

func (uc *implUseCase) ClearAPIKey(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.v.Set(preference.KeyAPIKey, "")
	uc.v.Set(preference.KeyAIEnabled, false)
	if err := uc.persist(); err != nil {
		uc.l.Errorf(ctx, "preference.usecase.ClearAPIKey: %v", err)
		return preference.ErrFailedToSave
	}

	uc.l.Infof(ctx, "preference.usecase.ClearAPIKey: AI disabled")
	return nil
}

func (uc *implUseCase) Status() preference.Status {
	key := uc.APIKey()
	return preference.Status{
		Enabled:   uc.IsAIEnabled(),
		HasKey:    key != "",
		MaskedKey: maskKey(key),
	}
}

// maskKey keeps the last four characters.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	r := []rune(key)
	if len(r) <= 4 {
		return strings.Repeat("*", len(r))
	}
	return strings.Repeat("*", len(r)-4) + string(r[len(r)-4:])
}
