package filesystem

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/asciiscan/internal/domain/entities"
	"github.com/rios0rios0/asciiscan/internal/domain/repositories"
)

// rootPath is the walk origin inside a filesystem chrooted at the scan root.
const rootPath = "."

// SourceTreeRepository walks a go-billy filesystem.
type SourceTreeRepository struct {
	chroot func(root string) (billy.Filesystem, error)
}

var _ repositories.SourceTreeRepository = (*SourceTreeRepository)(nil)

// NewSourceTreeRepository creates a SourceTreeRepository over the OS filesystem.
func NewSourceTreeRepository() *SourceTreeRepository {
	return &SourceTreeRepository{
		chroot: func(root string) (billy.Filesystem, error) {
			absRoot, err := filepath.Abs(root)
			if err != nil {
				return nil, fmt.Errorf("invalid path: %w", err)
			}
			// a symlinked root is scanned as the directory it points to
			resolved, err := filepath.EvalSymlinks(absRoot)
			if err != nil {
				return nil, err
			}
			return osfs.New(resolved), nil
		},
	}
}

// NewSourceTreeRepositoryFromFilesystem creates a SourceTreeRepository whose
// roots are resolved inside fsys (e.g. a memfs in tests).
func NewSourceTreeRepositoryFromFilesystem(fsys billy.Filesystem) *SourceTreeRepository {
	return &SourceTreeRepository{
		chroot: func(root string) (billy.Filesystem, error) {
			return fsys.Chroot(root)
		},
	}
}

// Walk implements repositories.SourceTreeRepository.
func (it *SourceTreeRepository) Walk(
	root string,
	rules entities.ScanRules,
	visit func(file repositories.SourceFile) error,
) error {
	fsys, err := it.chroot(root)
	if err != nil {
		return err
	}

	info, err := fsys.Lstat(rootPath)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return errors.New("root path must be a directory")
	}

	return util.Walk(fsys, rootPath, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			// readdir or lstat failures below the root are skipped, not fatal
			logger.Warnf("Skipping %s: %v", displayPath(root, path), walkErr)
			return nil
		}

		if info.IsDir() {
			if path != rootPath && rules.IsPruned(info.Name()) {
				logger.Debugf("Pruning %s", displayPath(root, path))
				return filepath.SkipDir
			}
			return nil
		}

		if !rules.IsEligible(info.Name()) {
			return nil
		}
		if info.Mode()&os.ModeSymlink != 0 && isDirectory(fsys, path) {
			// symlinked directories are listed but never followed
			return nil
		}

		return visit(&sourceFile{
			fsys:        fsys,
			path:        path,
			displayPath: displayPath(root, path),
		})
	})
}

// displayPath appends the walk-relative path to root as typed, so "./src"
// stays "./src/a.ts".
func displayPath(root, path string) string {
	if path == rootPath {
		return root
	}
	if strings.HasSuffix(root, string(filepath.Separator)) {
		return root + path
	}
	return root + string(filepath.Separator) + path
}

func isDirectory(fsys billy.Filesystem, path string) bool {
	target, err := fsys.Stat(path)
	return err == nil && target.IsDir()
}

type sourceFile struct {
	fsys        billy.Filesystem
	path        string
	displayPath string
}

func (f *sourceFile) Path() string {
	return f.displayPath
}

func (f *sourceFile) Content() ([]byte, error) {
	return util.ReadFile(f.fsys, f.path)
}
