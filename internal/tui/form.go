package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ledgerlight/runway/internal/validate"
)

// Form field indices, in display order.
const (
	fieldCash = iota
	fieldIncome
	fieldExpenses
	fieldOverdue
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Cash on hand",
	"Monthly income",
	"Monthly expenses",
	"Overdue invoices",
}

// formState holds the four-field input form. focus is the focused field
// index, or -1 when the form is blurred and global keys are live.
type formState struct {
	inputs [fieldCount]textinput.Model
	focus  int
	errMsg string
}

func newFormState() formState {
	var f formState
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = "0.00"
		ti.CharLimit = 14
		ti.Width = 16
		f.inputs[i] = ti
	}
	f.focus = fieldCash
	f.inputs[fieldCash].Focus()
	return f
}

// setFocus moves focus to field i, or blurs the form when i is -1.
func (f *formState) setFocus(i int) tea.Cmd {
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	f.focus = i
	if i < 0 || i >= fieldCount {
		f.focus = -1
		return nil
	}
	f.inputs[i].Focus()
	return textinput.Blink
}

func (f *formState) focusNext() tea.Cmd {
	return f.setFocus((f.focus + 1) % fieldCount)
}

func (f *formState) focusPrev() tea.Cmd {
	return f.setFocus((f.focus - 1 + fieldCount) % fieldCount)
}

// raw collects the current field values as an unvalidated submission.
func (f *formState) raw() validate.Raw {
	return validate.Raw{
		Cash:     f.inputs[fieldCash].Value(),
		Income:   f.inputs[fieldIncome].Value(),
		Expenses: f.inputs[fieldExpenses].Value(),
		Overdue:  f.inputs[fieldOverdue].Value(),
	}
}

// updateFocused forwards a message to the focused text input.
func (f *formState) updateFocused(msg tea.Msg) tea.Cmd {
	if f.focus < 0 || f.focus >= fieldCount {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}
