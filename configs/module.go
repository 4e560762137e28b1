package configs

import (
	"os"
	"path/filepath"

	"github.com/reusee/dscope"
)

// Schema constrains snakebyte.cue files.
const Schema = `
// tokenizer dialect for incoming lines, "mirc" or "posix"
dialect?: string
// lane ID used for items pushed from the console
nick?: string
`

type Module struct {
	dscope.Module
}

func (Module) Loader() Loader {
	var paths []string

	// a file in the working directory overrides the user-level one
	if _, err := os.Stat("snakebyte.cue"); err == nil {
		paths = append(paths, "snakebyte.cue")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		path := filepath.Join(dir, "snakebyte", "snakebyte.cue")
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	return NewLoader(paths, Schema)
}
