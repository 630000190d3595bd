package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/omnitab/internal/domain/autocomplete"
	"github.com/bnema/omnitab/internal/domain/url"
)

// OmniboxUseCase connects text entry to the dispatcher and selections to
// navigation.
type OmniboxUseCase struct {
	dispatcher *SuggestionDispatcher
	navigate   *NavigateUseCase
	tabs       *ManageTabsUseCase
}

// NewOmniboxUseCase creates a new omnibox use case.
func NewOmniboxUseCase(dispatcher *SuggestionDispatcher, navigate *NavigateUseCase, tabs *ManageTabsUseCase) *OmniboxUseCase {
	return &OmniboxUseCase{
		dispatcher: dispatcher,
		navigate:   navigate,
		tabs:       tabs,
	}
}

// Input is called for every edit of the omnibox text.
func (uc *OmniboxUseCase) Input(ctx context.Context, text string, onResult ResultFunc) {
	uc.dispatcher.Request(ctx, text, onResult)
}

// Select navigates to s. Pending suggestions are discarded; the caller
// clears its suggestion surface.
func (uc *OmniboxUseCase) Select(ctx context.Context, s autocomplete.Suggestion) error {
	uc.dispatcher.Cancel()

	if s.Type == autocomplete.TypeNewTabAction {
		if _, err := uc.tabs.CreateAndNavigate(ctx, false, s.TargetURL); err != nil {
			return fmt.Errorf("failed to open suggestion in new tab: %w", err)
		}
		return nil
	}
	if err := uc.tabs.NavigateActive(ctx, s.TargetURL); err != nil {
		return fmt.Errorf("failed to open suggestion: %w", err)
	}
	return nil
}

// Submit navigates to the raw text as typed.
func (uc *OmniboxUseCase) Submit(ctx context.Context, text string) (url.Target, error) {
	uc.dispatcher.Cancel()
	return uc.navigate.Open(ctx, text)
}

// Cancel drops any pending suggestion request.
func (uc *OmniboxUseCase) Cancel() {
	uc.dispatcher.Cancel()
}
