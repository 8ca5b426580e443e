package services

import (
	"context"
	"fmt"
	"strings"

	"timeboard/internal/assist"
	"timeboard/internal/common"
	"timeboard/internal/server/config"
	"timeboard/internal/timesheet"
)

// AssistService turns a member's free-text day description into proposed
// time-entry rows. The completion backend is optional; without one every
// call reports ErrAssistNotConfigured. Proposed rows run through the same
// normalize-and-cap pipeline as direct submissions, so previews match what
// a save would persist.
type AssistService struct {
	completer    assist.Completer
	dailyCeiling float64
	defaultType  timesheet.ActivityType
}

// NewAssistService constructs an AssistService. A nil completer is valid and
// means the deployment has no completion backend configured.
func NewAssistService(completer assist.Completer, cfg *config.Config) *AssistService {
	return &AssistService{
		completer:    completer,
		dailyCeiling: cfg.DailyCeiling,
		defaultType:  timesheet.NormalizeTypeWithDefault(cfg.DefaultActivityType, timesheet.DefaultActivityType),
	}
}

// ProposeRows sends the text to the completion backend and returns the
// parsed, normalized, capped rows. It never persists anything; the caller
// previews the rows and saves them through the regular day save.
func (s *AssistService) ProposeRows(ctx context.Context, text string) ([]timesheet.Row, error) {
	if s.completer == nil {
		return nil, common.ErrAssistNotConfigured
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", common.ErrorValidation)
	}

	prompt := assist.SystemPrompt(timesheet.AllActivityTypes, s.dailyCeiling)
	raw, err := s.completer.Complete(ctx, prompt, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrAssistUnavailable, err)
	}

	rows, err := assist.ParseRows(raw)
	if err != nil {
		return nil, err
	}
	return timesheet.PrepareRows(rows, s.defaultType, s.dailyCeiling), nil
}
