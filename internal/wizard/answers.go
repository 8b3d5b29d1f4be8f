package wizard

import (
	"github.com/interpretive-systems/compgen/internal/generate"
	"github.com/interpretive-systems/compgen/internal/layout"
)

// PropType is the declared type of a prop.
type PropType string

const (
	TypeString  PropType = "string"
	TypeNumber  PropType = "number"
	TypeBoolean PropType = "boolean"
	TypeObject  PropType = "object"
	TypeAny     PropType = "any"
)

// PropTypes lists the types in menu order.
var PropTypes = []PropType{TypeString, TypeNumber, TypeBoolean, TypeObject, TypeAny}

// PropSpec is a named, typed prop.
type PropSpec struct {
	Name string
	Type PropType
}

// Answers accumulates the user's choices over one wizard run. A field is
// only meaningful once its step completed; Run never returns a partial set.
type Answers struct {
	TargetFolder  string
	ComponentName string
	HasProps      bool
	Props         []PropSpec
	Convention    layout.Convention

	// set once the has-props step was answered, for pre-selection on re-entry
	hasPropsSet bool
}

// Upsert sets the type of an existing prop in place or appends a new one.
func Upsert(props []PropSpec, p PropSpec) []PropSpec {
	for i := range props {
		if props[i].Name == p.Name {
			props[i].Type = p.Type
			return props
		}
	}
	return append(props, p)
}

// GenerateProps converts the collected props for the generator.
func (a *Answers) GenerateProps() []generate.Prop {
	out := make([]generate.Prop, len(a.Props))
	for i, p := range a.Props {
		out[i] = generate.Prop{Name: p.Name, Type: string(p.Type)}
	}
	return out
}

// Files renders the component and lays it out per the chosen convention.
func (a *Answers) Files() []layout.File {
	content := generate.Component(a.ComponentName, a.HasProps, a.GenerateProps())
	return layout.Materialize(a.Convention, a.ComponentName, content)
}
