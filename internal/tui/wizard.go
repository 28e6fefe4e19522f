package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/monika2305/BIM/internal/model"
)

// step identifies the wizard's current screen. The wizard is a small
// finite-state gate: it only completes once every selection step has a
// chosen value.
type step int

const (
	stepName step = iota
	stepRole
	stepDomain
	stepPurpose
	stepDone
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4A9EDE")).MarginBottom(1)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A9EDE")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// WizardModel collects the user context interactively.
type WizardModel struct {
	nameInput textinput.Model
	role      string
	domain    string
	purpose   string
	step      step
	cursor    int
	canceled  bool
}

// NewWizard creates the context wizard.
func NewWizard() WizardModel {
	input := textinput.New()
	input.Placeholder = "Your name (optional)"
	input.CharLimit = 64
	input.Focus()

	return WizardModel{nameInput: input}
}

// Init implements tea.Model.
func (m WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.canceled = true
		m.step = stepDone
		return m, tea.Quit
	}

	if m.step == stepName {
		if keyMsg.String() == "enter" {
			m.step = stepRole
			m.cursor = 0
			m.nameInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	options := m.currentOptions()
	if len(options) == 0 {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(options)-1 {
			m.cursor++
		}
	case "enter":
		m.choose(options[m.cursor])
		m.cursor = 0
		if m.step == stepDone {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m WizardModel) View() string {
	if m.step == stepDone {
		return ""
	}

	if m.step == stepName {
		return titleStyle.Render("Login") + "\n" +
			m.nameInput.View() + "\n\n" +
			hintStyle.Render("enter to continue • esc to quit")
	}

	var heading string
	switch m.step {
	case stepRole:
		heading = "Your role"
	case stepDomain:
		heading = "Project domain"
	case stepPurpose:
		heading = "Purpose of IFC"
	}

	view := titleStyle.Render(heading) + "\n"
	for i, option := range m.currentOptions() {
		if i == m.cursor {
			view += cursorStyle.Render("> ") + selectedStyle.Render(option) + "\n"
		} else {
			view += "  " + option + "\n"
		}
	}
	view += "\n" + hintStyle.Render("↑/↓ to move • enter to select • esc to quit")

	return view
}

func (m WizardModel) currentOptions() []string {
	switch m.step {
	case stepRole:
		return RoleOptions
	case stepDomain:
		return DomainOptions
	case stepPurpose:
		return PurposeOptions
	default:
		return nil
	}
}

func (m *WizardModel) choose(option string) {
	switch m.step {
	case stepRole:
		m.role = option
		m.step = stepDomain
	case stepDomain:
		m.domain = option
		m.step = stepPurpose
	case stepPurpose:
		m.purpose = option
		m.step = stepDone
	}
}

// Canceled reports whether the user aborted the wizard.
func (m WizardModel) Canceled() bool {
	return m.canceled
}

// Complete reports whether every selection step has a value.
func (m WizardModel) Complete() bool {
	return !m.canceled && m.role != "" && m.domain != "" && m.purpose != ""
}

// Context returns the collected user context.
func (m WizardModel) Context() model.UserContext {
	return model.UserContext{
		Name:    m.nameInput.Value(),
		Role:    m.role,
		Domain:  m.domain,
		Purpose: m.purpose,
	}
}
