package calljen

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

type mapFS = fstest.MapFS

type mapFile = fstest.MapFile

// FS is a pseudo-filesystem that supports batch-writing its contents to the
// real filesystem, or batch-comparing its contents to the real filesystem.
// Its intended use is for idiomatic `go generate`-style code generators,
// where the results of codegen are committed to version control.
//
// In such cases, the normal behavior of a generator is to write files to
// disk, but in CI that behavior should change to verify that what is already
// on disk is identical to the results of code generation. FS supports these
// related behaviors through its Write and Verify methods, respectively.
//
// FS is stateless with respect to the real filesystem: if an input to the
// generator goes away, files generated from it earlier are left behind.
//
// Files may not be removed once added. If a path conflict occurs when adding
// a new file or merging another FS, an error is returned.
type FS struct {
	mapFS
	mu sync.Mutex
}

// NewFS creates a new FS, ready for use.
func NewFS() *FS {
	return &FS{
		mapFS: make(mapFS),
	}
}

type writeSlice []struct {
	path     string
	contents []byte
}

// Len returns the number of files in the FS.
func (wd *FS) Len() int {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	return len(wd.mapFS)
}

// Verify checks the contents of each file against the filesystem. It emits an
// error if any of its contained files differ, or are absent.
//
// If the provided prefix path is non-empty, it will be prepended to all file
// entries in the map. prefix may be an absolute path.
func (wd *FS) Verify(ctx context.Context, prefix string) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(12)

	var rmu sync.Mutex
	var result *multierror.Error
	record := func(err error) {
		rmu.Lock()
		result = multierror.Append(result, err)
		rmu.Unlock()
	}

	for _, item := range wd.toSlice() {
		it := item
		g.Go(func() error {
			ipath := filepath.Join(prefix, it.path)
			ob, err := os.ReadFile(ipath) //nolint:gosec
			if err != nil {
				if errors.Is(err, os.ErrNotExist) {
					record(fmt.Errorf("%s: generated file should exist, but does not", ipath))
					return nil
				}
				return fmt.Errorf("%s: error reading file: %w", ipath, err)
			}

			if dstr := cmp.Diff(string(ob), string(it.contents)); dstr != "" {
				record(fmt.Errorf("%s would have changed:\n\n%s", ipath, dstr))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("io error while verifying tree: %w", err)
	}

	return result.ErrorOrNil()
}

// Write writes all of the files to their indicated paths.
//
// If the provided prefix path is non-empty, it will be prepended to all file
// entries in the map for writing. prefix may be an absolute path.
func (wd *FS) Write(ctx context.Context, prefix string) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(12)

	for _, item := range wd.toSlice() {
		it := item
		g.Go(func() error {
			path := filepath.Join(prefix, it.path)
			if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
				return fmt.Errorf("%s: failed to ensure parent directory exists: %w", path, err)
			}

			if err := os.WriteFile(path, it.contents, 0644); err != nil { //nolint:gosec
				return fmt.Errorf("%s: error while writing file: %w", path, err)
			}
			return nil
		})
	}

	return g.Wait()
}

func (wd *FS) toSlice() writeSlice {
	sl := make(writeSlice, 0, len(wd.mapFS))
	for k, v := range wd.mapFS {
		sl = append(sl, struct {
			path     string
			contents []byte
		}{
			path:     k,
			contents: v.Data,
		})
	}

	sort.Slice(sl, func(i, j int) bool {
		return sl[i].path < sl[j].path
	})
	return sl
}

// Add adds one or more files to the FS. An error is returned if any of the
// provided files would conflict with a file already added to the FS, or if
// any file is invalid.
func (wd *FS) Add(flist ...File) error {
	if err := Files(flist).Validate(); err != nil {
		return err
	}
	return wd.addValidated(flist...)
}

func (wd *FS) addValidated(flist ...File) error {
	wd.mu.Lock()
	defer wd.mu.Unlock()
	return wd.add(flist...)
}

func (wd *FS) add(flist ...File) error {
	var result *multierror.Error
	for _, f := range flist {
		if rf, has := wd.mapFS[f.RelativePath]; has {
			result = multierror.Append(result, fmt.Errorf("cannot create %s for %s, already created for %s", f.RelativePath, jennystack(f.From), jennystack(rf.Sys.(*File).From)))
		}
		if filepath.IsAbs(f.RelativePath) {
			result = multierror.Append(result, fmt.Errorf("files added to FS must have relative paths, got %s from %s", f.RelativePath, jennystack(f.From)))
		}
	}
	if result.ErrorOrNil() != nil {
		return result
	}

	for _, f := range flist {
		fc := f
		wd.mapFS[f.RelativePath] = &mapFile{Data: f.Data, Sys: &fc}
	}
	return nil
}

// Merge combines all the entries from the provided FS into the callee FS.
// Duplicate paths result in an error.
func (wd *FS) Merge(wd2 *FS) error {
	if wd2 == nil {
		return nil
	}
	files := wd2.AsFiles()

	wd.mu.Lock()
	defer wd.mu.Unlock()
	var result *multierror.Error
	for _, f := range files {
		if err := wd.add(f); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

// AsFiles returns the contents of the FS as a slice of [File], sorted by
// relative path.
func (wd *FS) AsFiles() Files {
	wd.mu.Lock()
	defer wd.mu.Unlock()

	fl := make(Files, 0, len(wd.mapFS))
	for _, it := range wd.toSlice() {
		f := *wd.mapFS[it.path].Sys.(*File)
		fl = append(fl, f)
	}
	return fl
}
