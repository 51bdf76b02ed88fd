package filecache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
)

// DefaultAssetsDir is the subdirectory used by ToAssets and Dir.Assets.
const DefaultAssetsDir = "assets"

// Dir is a filesystem-backed Backend rooted at a directory.
// An empty root means the process working directory.
type Dir struct {
	root      string
	assetsDir string
	perm      fs.FileMode
}

// DirOption configures a Dir.
type DirOption func(*Dir)

// WithAssetsDir overrides the assets subdirectory name.
// Default: "assets"
func WithAssetsDir(name string) DirOption {
	return func(d *Dir) {
		if name != "" {
			d.assetsDir = name
		}
	}
}

// WithFileMode sets the permission bits for newly written files.
// Default: 0o644
func WithFileMode(perm fs.FileMode) DirOption {
	return func(d *Dir) {
		d.perm = perm
	}
}

// NewDir creates a Dir rooted at root.
func NewDir(root string, opts ...DirOption) *Dir {
	d := &Dir{
		root:      root,
		assetsDir: DefaultAssetsDir,
		perm:      0o644,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Root returns the directory entries are resolved against.
func (d *Dir) Root() string {
	return d.root
}

// Assets returns a Dir rooted at the assets subdirectory of d.
func (d *Dir) Assets() *Dir {
	return &Dir{
		root:      filepath.Join(d.root, d.assetsDir),
		assetsDir: d.assetsDir,
		perm:      d.perm,
	}
}

// Path resolves name against the root, or against the assets subdirectory
// when assets is true.
func (d *Dir) Path(name string, assets bool) string {
	if assets {
		return filepath.Join(d.root, d.assetsDir, name)
	}
	return filepath.Join(d.root, name)
}

// WriteOption configures WriteText.
type WriteOption func(*writeOptions)

type writeOptions struct {
	append bool
	assets bool
}

// Append adds content to the end of the file instead of replacing it.
func Append() WriteOption {
	return func(o *writeOptions) {
		o.append = true
	}
}

// ToAssets places the file in the assets subdirectory.
func ToAssets() WriteOption {
	return func(o *writeOptions) {
		o.assets = true
	}
}

// WriteText writes UTF-8 content to name, replacing the file unless Append is
// given. Replacement is atomic: readers see the old or the new content, never
// a partial write. The parent directory must already exist.
func (d *Dir) WriteText(name, content string, opts ...WriteOption) error {
	if name == "" {
		return ErrEmptyName
	}

	o := &writeOptions{}
	for _, opt := range opts {
		opt(o)
	}

	path := d.Path(name, o.assets)

	if !o.append {
		if err := renameio.WriteFile(path, []byte(content), d.perm); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
		return nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, d.perm)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

// Read returns the contents of the file named key.
func (d *Dir) Read(_ context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyName
	}

	data, err := os.ReadFile(d.Path(key, false))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return data, nil
}

// Write atomically replaces the file named key, creating parent directories.
func (d *Dir) Write(_ context.Context, key string, data []byte) error {
	if key == "" {
		return ErrEmptyName
	}

	path := d.Path(key, false)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err := renameio.WriteFile(path, data, d.perm); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

// Delete removes the file named key.
func (d *Dir) Delete(_ context.Context, key string) error {
	if key == "" {
		return ErrEmptyName
	}

	if err := os.Remove(d.Path(key, false)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}
