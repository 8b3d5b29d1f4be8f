package tui

import (
	"fmt"
	"io"
)

// SuccessMessage is shown once the component files are written.
func SuccessMessage(component, folder string) string {
	return fmt.Sprintf("Component %s created successfully in %s", component, folder)
}

// Success prints msg in the success color.
func (t Theme) Success(w io.Writer, msg string) {
	fmt.Fprintln(w, t.SuccessText("✓ ")+msg)
}

// Warn prints a non-fatal problem.
func (t Theme) Warn(w io.Writer, msg string) {
	fmt.Fprintln(w, t.ErrorText("! ")+msg)
}

// Fail prints a fatal error.
func (t Theme) Fail(w io.Writer, err error) {
	fmt.Fprintln(w, t.ErrorText("Error: ")+err.Error())
}
