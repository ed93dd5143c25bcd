// Package content ships the static dialog script and page copy.
//
// The files are literal data compiled into the binary; a directory with the
// same file names can replace them at startup without a rebuild.
package content

import (
	"embed"
	"io/fs"
	"os"
)

const (
	DialogFile = "dialog.yaml"
	PageFile   = "page.yaml"
)

//go:embed dialog.yaml page.yaml
var embedded embed.FS

// Embedded returns the built-in content files.
func Embedded() fs.FS { return embedded }

// Open returns dir as a filesystem when set, else the embedded files.
func Open(dir string) fs.FS {
	if dir == "" {
		return embedded
	}
	return os.DirFS(dir)
}
