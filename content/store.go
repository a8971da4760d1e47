package content

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
)

// Store is the read side of a content directory: it enumerates document
// files and returns their raw bytes.
type Store interface {
	// List returns the document file names, in discovery order. A missing
	// directory is reported as ErrMissingStore.
	List() ([]string, error)
	// Read returns the full contents of a file returned by List.
	Read(name string) ([]byte, error)
}

// FSStore serves documents from one directory of a billy filesystem.
// Sub-directories and files without a .md/.mdx extension are ignored.
type FSStore struct {
	fs  billy.Filesystem
	dir string
}

// NewStore returns a Store over dir inside fsys.
func NewStore(fsys billy.Filesystem, dir string) *FSStore {
	if dir == "" {
		dir = "."
	}
	return &FSStore{fs: fsys, dir: dir}
}

// NewDirStore returns a Store over a directory on the local disk.
func NewDirStore(dir string) *FSStore {
	return NewStore(osfs.New(dir), ".")
}

// List returns document file names sorted lexicographically.
func (s *FSStore) List() ([]string, error) {
	infos, err := s.fs.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrMissingStore
		}
		return nil, fmt.Errorf("list %s: %w", s.dir, err)
	}
	var names []string
	for _, info := range infos {
		if info.IsDir() || !isDocumentFile(info.Name()) {
			continue
		}
		names = append(names, info.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Read returns the contents of name.
func (s *FSStore) Read(name string) ([]byte, error) {
	data, err := util.ReadFile(s.fs, path.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}
