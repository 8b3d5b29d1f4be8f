package wizard

import (
	"context"
	"errors"
	"fmt"

	"github.com/interpretive-systems/compgen/internal/prompt"
	"github.com/interpretive-systems/compgen/internal/validate"
)

// PropsOutcome is how the props sub-flow ended.
type PropsOutcome int

const (
	// PropsDone: the user submitted an empty name.
	PropsDone PropsOutcome = iota
	// PropsBack: the user cancelled the name prompt.
	PropsBack
)

func (o PropsOutcome) String() string {
	if o == PropsBack {
		return "back"
	}
	return "done"
}

// CollectProps repeatedly asks for a prop name and then its type, adding
// each pair to props with Upsert. Backing out of the type menu discards
// only the pair in progress. The returned slice holds everything collected
// so far on either outcome; clearing it is up to the caller.
func CollectProps(ctx context.Context, p prompt.Prompter, props []PropSpec) ([]PropSpec, PropsOutcome, error) {
	for {
		name, err := p.InputText(ctx, "Enter a prop name (or leave empty if done)", "", validate.PropNameOrEmpty)
		switch {
		case errors.Is(err, prompt.ErrCancelled):
			return props, PropsBack, nil
		case err != nil:
			return props, PropsDone, err
		case name == "":
			return props, PropsDone, nil
		}

		typ, err := chooseType(ctx, p, name)
		if errors.Is(err, prompt.ErrCancelled) {
			continue
		}
		if err != nil {
			return props, PropsDone, err
		}
		if typ == "" {
			continue
		}
		props = Upsert(props, PropSpec{Name: name, Type: typ})
	}
}

// chooseType returns "" when the user picked Back.
func chooseType(ctx context.Context, p prompt.Prompter, name string) (PropType, error) {
	items := make([]prompt.Item, 0, len(PropTypes)+1)
	for _, t := range PropTypes {
		items = append(items, prompt.Item{Label: string(t)})
	}
	items = append(items, prompt.Item{Label: prompt.Back})

	label, err := p.ChooseOne(ctx, items, fmt.Sprintf("Select the type for %s", name))
	if err != nil {
		return "", err
	}
	if label == prompt.Back {
		return "", nil
	}
	return PropType(label), nil
}
