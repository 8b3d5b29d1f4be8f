// Package wizard drives the interactive component wizard: an explicit state
// machine whose steps prompt the user and fill in an Answers value.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/interpretive-systems/compgen/internal/layout"
	"github.com/interpretive-systems/compgen/internal/prompt"
	"github.com/interpretive-systems/compgen/internal/validate"
)

const (
	labelYes   = "Yes"
	labelNo    = "No"
	previously = "(Previously selected)"
)

// Folders is the saved folder list offered by the folder step.
type Folders interface {
	List() []string
	Add(folder string) error
}

// Machine runs one wizard session.
type Machine struct {
	prompter prompt.Prompter
	folders  Folders
	log      logrus.FieldLogger
	state    State
	answers  Answers
}

// New creates a machine in the folder state with empty answers.
func New(p prompt.Prompter, folders Folders, log logrus.FieldLogger) *Machine {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	return &Machine{prompter: p, folders: folders, log: log, state: StateFolder}
}

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Run drives the wizard to a terminal state. It returns the completed
// answers, or nil answers and a nil error when the user abandoned the
// wizard at the folder step. Interrupts and prompt failures end the run
// with an error.
func (m *Machine) Run(ctx context.Context) (*Answers, error) {
	for !m.state.Terminal() {
		ev, err := m.step(ctx)
		if err != nil {
			return nil, fmt.Errorf("%s step: %w", m.state, err)
		}
		next := Transition(m.state, ev, &m.answers)
		m.log.WithFields(logrus.Fields{
			"from":  m.state.String(),
			"to":    next.String(),
			"event": ev.String(),
		}).Debug("step transition")
		m.state = next
	}
	if m.state == StateAborted {
		return nil, nil
	}
	out := m.answers
	out.Props = append([]PropSpec(nil), m.answers.Props...)
	return &out, nil
}

// Complete records that the files for the finished run were written.
func (m *Machine) Complete() {
	if m.state != StateCreateFile {
		return
	}
	m.log.WithFields(logrus.Fields{"from": m.state.String(), "to": StateDone.String()}).Debug("step transition")
	m.state = StateDone
}

func (m *Machine) step(ctx context.Context) (Event, error) {
	switch m.state {
	case StateFolder:
		return m.stepFolder(ctx)
	case StateComponentName:
		return m.stepComponentName(ctx)
	case StateHasProps:
		return m.stepHasProps(ctx)
	case StateProps:
		return m.stepProps(ctx)
	case StateFileConvention:
		return m.stepConvention(ctx)
	}
	return EventRetry, fmt.Errorf("no step for state %s", m.state)
}

// cancelled maps prompt cancellation to the back event and passes any other
// error through.
func cancelled(err error) (Event, error) {
	if errors.Is(err, prompt.ErrCancelled) {
		return EventBack, nil
	}
	return EventRetry, err
}

func (m *Machine) stepFolder(ctx context.Context) (Event, error) {
	saved := m.folders.List()
	items := make([]prompt.Item, 0, len(saved)+2)
	marked := false
	for _, f := range saved {
		if prompt.Reserved(f) {
			m.log.WithField("folder", f).Warn("skipping saved folder named like a menu item")
			continue
		}
		it := prompt.Item{Label: f}
		if !marked && f == m.answers.TargetFolder {
			it.Description = previously
			it.Selected = true
			marked = true
		}
		items = append(items, it)
	}
	items = append(items, prompt.Item{Label: prompt.CreateFolder}, prompt.Item{Label: prompt.Back})

	choice, err := m.prompter.ChooseOne(ctx, items, "Select or create a folder for the component")
	if err != nil {
		return cancelled(err)
	}
	switch choice {
	case prompt.Back:
		return EventBack, nil
	case prompt.CreateFolder:
		folder, err := m.prompter.InputText(ctx, "Enter the name of the new folder", "", validate.FolderName)
		if errors.Is(err, prompt.ErrCancelled) {
			return EventRetry, nil
		}
		if err != nil {
			return EventRetry, err
		}
		if err := m.folders.Add(folder); err != nil {
			return EventRetry, fmt.Errorf("save folder: %w", err)
		}
		m.answers.TargetFolder = folder
		return EventSubmit, nil
	}
	m.answers.TargetFolder = choice
	return EventSubmit, nil
}

// stepComponentName treats an empty submission exactly like cancellation.
func (m *Machine) stepComponentName(ctx context.Context) (Event, error) {
	name, err := m.prompter.InputText(ctx, "Enter the name of the new component", m.answers.ComponentName, validate.ComponentNameOrEmpty)
	if err != nil {
		return cancelled(err)
	}
	if name == "" {
		return EventBack, nil
	}
	m.answers.ComponentName = name
	return EventSubmit, nil
}

func (m *Machine) stepHasProps(ctx context.Context) (Event, error) {
	yes := prompt.Item{Label: labelYes}
	no := prompt.Item{Label: labelNo}
	if m.answers.hasPropsSet {
		if m.answers.HasProps {
			yes.Description, yes.Selected = previously, true
		} else {
			no.Description, no.Selected = previously, true
		}
	}
	choice, err := m.prompter.ChooseOne(ctx, []prompt.Item{yes, no, {Label: prompt.Back}}, "Does this component have any props?")
	if err != nil {
		return cancelled(err)
	}
	if choice == prompt.Back {
		return EventBack, nil
	}
	m.answers.HasProps = choice == labelYes
	m.answers.hasPropsSet = true
	return EventSubmit, nil
}

func (m *Machine) stepProps(ctx context.Context) (Event, error) {
	props, outcome, err := CollectProps(ctx, m.prompter, m.answers.Props)
	m.answers.Props = props
	if err != nil {
		return EventRetry, err
	}
	if outcome == PropsBack {
		return EventBack, nil
	}
	return EventSubmit, nil
}

func (m *Machine) stepConvention(ctx context.Context) (Event, error) {
	items := make([]prompt.Item, 0, len(layout.Conventions)+1)
	for _, c := range layout.Conventions {
		items = append(items, prompt.Item{Label: c.Label(), Description: c.Description()})
	}
	items = append(items, prompt.Item{Label: prompt.Back})

	choice, err := m.prompter.ChooseOne(ctx, items, "Select the component file convention")
	if err != nil {
		return cancelled(err)
	}
	c, ok := layout.ParseLabel(choice)
	if !ok {
		return EventBack, nil
	}
	m.answers.Convention = c
	return EventSubmit, nil
}
