package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/monika2305/BIM/internal/model"
)

// ErrWizardCanceled is returned when the user quits the wizard before
// completing every selection.
var ErrWizardCanceled = errors.New("context wizard canceled")

// RunWizard runs the context wizard and returns the collected user
// context. The analysis cannot proceed without one: the wizard is the
// gate the web original implemented as a login page.
func RunWizard(ctx context.Context) (model.UserContext, error) {
	program := tea.NewProgram(NewWizard(), tea.WithContext(ctx))

	final, err := program.Run()
	if err != nil {
		return model.UserContext{}, fmt.Errorf("wizard failed: %w", err)
	}

	wizard, ok := final.(WizardModel)
	if !ok {
		return model.UserContext{}, fmt.Errorf("unexpected wizard model type %T", final)
	}
	if !wizard.Complete() {
		return model.UserContext{}, ErrWizardCanceled
	}

	return wizard.Context(), nil
}
