// Package layout turns a rendered component into the files of one of the
// supported folder conventions and writes them out.
package layout

import (
	"fmt"
	"path"

	"github.com/interpretive-systems/compgen/internal/generate"
)

// Ext is the extension of generated source files.
const Ext = ".tsx"

// Convention is a file/folder layout for a generated component.
type Convention int

const (
	SingleFile Convention = iota
	FolderWithIndex
	FolderWithIndexAndScss
	FolderWithIndexAndCss
)

// Conventions lists every convention in menu order.
var Conventions = []Convention{SingleFile, FolderWithIndex, FolderWithIndexAndScss, FolderWithIndexAndCss}

func (c Convention) String() string {
	switch c {
	case SingleFile:
		return "single_file"
	case FolderWithIndex:
		return "folder_with_index"
	case FolderWithIndexAndScss:
		return "folder_with_index_and_scss"
	case FolderWithIndexAndCss:
		return "folder_with_index_and_css"
	}
	return fmt.Sprintf("convention(%d)", int(c))
}

// Label is the short menu label of the convention.
func (c Convention) Label() string {
	return fmt.Sprintf("%d", int(c)+1)
}

// Description is the human-readable menu text.
func (c Convention) Description() string {
	switch c {
	case SingleFile:
		return "(Default) Single file in folder"
	case FolderWithIndex:
		return "Folder with component file and index" + Ext
	case FolderWithIndexAndScss:
		return "Folder with component file, index" + Ext + ", and empty SCSS file"
	case FolderWithIndexAndCss:
		return "Folder with component file, index" + Ext + ", and empty CSS file"
	}
	return ""
}

// ParseLabel maps a menu label back to its convention.
func ParseLabel(label string) (Convention, bool) {
	for _, c := range Conventions {
		if c.Label() == label {
			return c, true
		}
	}
	return SingleFile, false
}

func (c Convention) folder() bool { return c != SingleFile }

func (c Convention) style() string {
	switch c {
	case FolderWithIndexAndScss:
		return ".scss"
	case FolderWithIndexAndCss:
		return ".css"
	}
	return ""
}

// File is a generated file; Path is slash-separated and relative to the
// target folder.
type File struct {
	Path    string
	Content string
}

// Materialize lays out the component content according to c. The component
// file always comes first, followed by the index and the style sheet.
func Materialize(c Convention, name, content string) []File {
	if !c.folder() {
		return []File{{Path: name + Ext, Content: content}}
	}
	files := []File{
		{Path: path.Join(name, name+Ext), Content: content},
		{Path: path.Join(name, "index"+Ext), Content: generate.Index(name)},
	}
	if ext := c.style(); ext != "" {
		files = append(files, File{Path: path.Join(name, name+ext)})
	}
	return files
}
