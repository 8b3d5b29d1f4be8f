// Package generate renders the source of a component skeleton.
//
// The generator trusts its inputs: names are checked by package validate
// before they reach here, and nothing is escaped.
package generate

import (
	"strings"
	"text/template"
)

// Prop is a single typed prop of a component.
type Prop struct {
	Name string
	Type string
}

const componentTmpl = `{{if .HasProps}}import React, { memo } from 'react';

interface {{.Name}}Props {
{{- range .Props}}
  {{.Name}}: {{.Type}};
{{- end}}
}

function {{.Name}}(props: {{.Name}}Props) {
{{- else}}import React from 'react';

function {{.Name}}() {
{{- end}}
  return <div>{{.Name}}</div>;
}

{{.Name}}.displayName = '{{.Name}}';
{{if .HasProps}}export default memo({{.Name}});{{else}}export default {{.Name}};{{end}}
`

const indexTmpl = `import {{.}} from './{{.}}';

export { {{.}} };
export default {{.}};
`

var (
	component = template.Must(template.New("component").Parse(componentTmpl))
	index     = template.Must(template.New("index").Parse(indexTmpl))
)

// Component renders the component file. Props are ignored unless hasProps
// is set; an empty props list still yields a valid (empty) interface.
func Component(name string, hasProps bool, props []Prop) string {
	data := struct {
		Name     string
		HasProps bool
		Props    []Prop
	}{Name: name, HasProps: hasProps}
	if hasProps {
		data.Props = props
	}
	return render(component, data)
}

// Index renders an index module re-exporting the component both by name
// and as the default export.
func Index(name string) string {
	return render(index, name)
}

func render(t *template.Template, data any) string {
	var b strings.Builder
	// Both templates are static and only reference fields that exist, so
	// Execute cannot fail on a strings.Builder.
	if err := t.Execute(&b, data); err != nil {
		panic(err)
	}
	return b.String()
}
