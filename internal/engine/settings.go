package engine

import (
	"time"

	"github.com/lifebalance/lifebalance/internal/models"
)

// SetQuranEdition switches the page-count edition used by the reader.
func (e *Engine) SetQuranEdition(edition string) error {
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		rec.QuranEdition = edition
		return nil
	})
	return err
}

// SetAlarmEnabled toggles the morning alarm preference.
func (e *Engine) SetAlarmEnabled(enabled bool) error {
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		rec.AlarmEnabled = enabled
		return nil
	})
	return err
}

// SetTheme updates the UI theme preference.
func (e *Engine) SetTheme(theme string) error {
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		rec.Theme = theme
		return nil
	})
	return err
}

// SetLanguage updates the display language preference.
func (e *Engine) SetLanguage(lang string) error {
	_, err := e.mutate(func(rec *models.StateRecord, now time.Time) []Effect {
		rec.Language = lang
		return nil
	})
	return err
}
