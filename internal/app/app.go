// Package app implements the application layer for stash.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"go.trai.ch/stash/internal/adapters/detector"
	"go.trai.ch/stash/internal/adapters/watcher"
	"go.trai.ch/stash/internal/core/domain"
	"go.trai.ch/stash/internal/core/ports"
	"go.trai.ch/stash/internal/engine/cache"
	"go.trai.ch/stash/internal/ui/style"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	cache    *cache.Cache
	fs       ports.FileSystem
	resolver ports.ProjectResolver
	store    ports.RecordStore
	watcher  ports.Watcher
	logger   ports.Logger
	stdout   io.Writer
}

// New creates a new App instance.
func New(
	c *cache.Cache,
	fsys ports.FileSystem,
	resolver ports.ProjectResolver,
	store ports.RecordStore,
	w ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		cache:    c,
		fs:       fsys,
		resolver: resolver,
		store:    store,
		watcher:  w,
		logger:   log,
		stdout:   os.Stdout,
	}
}

// WithStdout redirects report output. This is primarily used for testing.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// StatusOptions configuration for the Status method.
type StatusOptions struct {
	OutputMode string
}

// Status reports the cache state of the given files. When no files are
// passed, every source file under the current project is reported.
func (a *App) Status(ctx context.Context, paths []string, opts StatusOptions) error {
	project, err := a.resolver.Resolve(".")
	if err != nil {
		return err
	}

	files, err := a.expandPaths(project.Root, paths)
	if err != nil {
		return err
	}

	autoMode := detector.DetectEnvironment()
	mode := detector.ResolveMode(autoMode, opts.OutputMode)
	styled := mode == detector.ModeStyled

	a.printHeader(project, styled)

	for _, path := range files {
		rec, getErr := a.cache.Get(ctx, path)
		if getErr != nil {
			return getErr
		}
		a.printFileStatus(project.Root, path, rec, styled)
	}

	return nil
}

func (a *App) printHeader(project *domain.Project, styled bool) {
	records := a.countRecords(project.Root)
	state := "disabled"
	if a.cache.Enabled() {
		state = "enabled"
	}

	label := func(s string) string { return s }
	if styled {
		label = func(s string) string { return style.Muted.Render(s) }
	}

	fmt.Fprintf(a.stdout, "%s  %s\n", label("project"), project.Root)
	fmt.Fprintf(a.stdout, "%s  %s\n", label("config "), project.Fingerprint)
	fmt.Fprintf(a.stdout, "%s  %s (%d records on disk)\n\n", label("cache  "), state, records)
}

func (a *App) printFileStatus(root, path string, rec domain.CacheRecord, styled bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	icon := style.Circle
	line := "baseline"
	if !rec.IsBaseline() {
		icon = style.Dot
		line = strings.Join(payloadSummary(rec), ", ")
	}

	if styled {
		if rec.IsBaseline() {
			icon = style.Muted.Render(icon)
			line = style.Muted.Render(line)
		} else {
			icon = style.Fresh.Render(icon)
		}
	}

	fmt.Fprintf(a.stdout, "%s %s  %s\n", icon, rel, line)
}

// payloadSummary names the payload fields present on a record.
func payloadSummary(rec domain.CacheRecord) []string {
	var parts []string
	if len(rec.CompileResults) > 0 {
		targets := make([]string, 0, len(rec.CompileResults))
		for target := range rec.CompileResults {
			targets = append(targets, target)
		}
		sort.Strings(targets)
		parts = append(parts, "compile["+strings.Join(targets, " ")+"]")
	}
	if rec.LintResult != nil {
		parts = append(parts, "lint")
	}
	if rec.DependencyAnalysis != nil {
		parts = append(parts, "deps")
	}
	if rec.ModuleSignature != nil {
		parts = append(parts, "signature")
	}
	return parts
}

// countRecords returns the number of record files under the project's cache
// directory. Failures count as zero; status output must not fail on a
// missing cache directory.
func (a *App) countRecords(root string) int {
	entries, err := os.ReadDir(filepath.Join(root, domain.DefaultCachePath()))
	if err != nil {
		return 0
	}
	count := 0
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == domain.RecordFileExt {
			count++
		}
	}
	return count
}

// InspectOptions configuration for the Inspect method.
type InspectOptions struct {
	ShowLocation bool
}

// Inspect prints the trusted cache record for a single file as indented
// JSON.
func (a *App) Inspect(ctx context.Context, path string, opts InspectOptions) error {
	rec, err := a.cache.Get(ctx, path)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrRecordMarshalFailed.Error())
	}
	fmt.Fprintln(a.stdout, string(data))

	if opts.ShowLocation {
		project, resolveErr := a.resolver.Resolve(path)
		if resolveErr != nil {
			return resolveErr
		}
		location, locErr := a.store.Location(project.Root, path)
		if locErr != nil {
			return locErr
		}
		fmt.Fprintln(a.stdout, location)
	}

	return nil
}

// WarmOptions configuration for the Warm method.
type WarmOptions struct {
	Jobs int
}

// Warm hydrates cache records for the given files concurrently. Directories
// are expanded to the source files beneath them; no files means the whole
// project.
func (a *App) Warm(ctx context.Context, paths []string, opts WarmOptions) error {
	project, err := a.resolver.Resolve(".")
	if err != nil {
		return err
	}

	if initErr := a.cache.Init(project.Root); initErr != nil {
		return initErr
	}

	files, err := a.expandPaths(project.Root, paths)
	if err != nil {
		return err
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for _, path := range files {
		g.Go(func() error {
			_, getErr := a.cache.Get(ctx, path)
			return getErr
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("warmed %d records", len(files)))
	return nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	All bool
}

// Clean removes the project's cache directory. With All set the whole stash
// directory goes.
func (a *App) Clean(_ context.Context, opts CleanOptions) error {
	project, err := a.resolver.Resolve(".")
	if err != nil {
		return err
	}

	target := filepath.Join(project.Root, domain.DefaultCachePath())
	name := "cache directory"
	if opts.All {
		target = filepath.Join(project.Root, domain.DefaultStashPath())
		name = "stash directory"
	}

	a.logger.Info(fmt.Sprintf("removing %s...", name))
	if err := a.fs.RemoveAll(target); err != nil {
		return zerr.Wrap(err, domain.ErrCacheCleanFailed.Error())
	}
	a.logger.Info(fmt.Sprintf("removed %s", name))
	return nil
}

// Watch initializes the cache for the current project and services file
// deletion events until the context is cancelled.
func (a *App) Watch(ctx context.Context) error {
	project, err := a.resolver.Resolve(".")
	if err != nil {
		return err
	}

	if initErr := a.cache.Init(project.Root); initErr != nil {
		return initErr
	}

	router := watcher.NewRouter(a.watcher, a.logger, a.cache)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return router.Run(ctx, project.Root)
	})
	g.Go(func() error {
		<-ctx.Done()
		return router.Stop()
	})

	a.logger.Info("watching " + project.Root)
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// expandPaths turns the user's file/directory arguments into absolute source
// file paths. Empty input expands to the whole project.
func (a *App) expandPaths(root string, paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{root}
	}

	var files []string
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrSourceStatFailed.Error())
		}

		isDir, err := a.fs.IsDir(abs)
		if err != nil {
			return nil, zerr.Wrap(err, domain.ErrSourceStatFailed.Error())
		}
		if !isDir {
			files = append(files, abs)
			continue
		}

		walked, err := collectSources(abs)
		if err != nil {
			return nil, err
		}
		files = append(files, walked...)
	}

	sort.Strings(files)
	return files, nil
}

// collectSources walks dir gathering regular files, skipping the stash
// directory, hidden directories, and the project config itself.
func collectSources(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != dir && (strings.HasPrefix(name, ".") || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if name == domain.ProjectFileName {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrSourceStatFailed.Error())
	}
	return files, nil
}
