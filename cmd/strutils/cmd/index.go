package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Wosser1sProductions/utils/core/config"
	"github.com/Wosser1sProductions/utils/core/errors"
	"github.com/Wosser1sProductions/utils/core/log"
	"github.com/Wosser1sProductions/utils/utils/navindex"
)

var (
	indexNested    bool
	indexOverloads bool
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Inspect Doxygen navtree index files",
	Long: `Parses Doxygen navtree index files (var name = [ [symbol, link, child], ... ];)
and checks that every entry is a well formed triple.

By default every entry must be a leaf (null third element), as in the
index of a single header file. --nested also accepts child arrays, which
are checked recursively, and references to other index files.

Config: [index] require_leaves`,
}

var indexCheckCmd = &cobra.Command{
	Use:     "check FILE...",
	Short:   "Validate index files",
	Example: `  strutils index check html/utils__string_8hpp.js`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runIndexCheck,
}

var indexSymbolsCmd = &cobra.Command{
	Use:   "symbols FILE",
	Short: "List the symbols of an index file",
	Long: `Prints every symbol once, in the order of first appearance. With
--overloads, each symbol is followed by the number of entries it has.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndexSymbols,
}

var indexWatchCmd = &cobra.Command{
	Use:   "watch FILE...",
	Short: "Re-check index files whenever they change",
	Long: `Checks the files once, then again after every write until interrupted.
When a config file is in use, changes to [index] require_leaves apply
without a restart.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndexWatch,
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.AddCommand(indexCheckCmd)
	indexCmd.AddCommand(indexSymbolsCmd)
	indexCmd.AddCommand(indexWatchCmd)

	indexCmd.PersistentFlags().BoolVar(&indexNested, "nested", false, "accept nested entries and check them recursively")
	indexSymbolsCmd.Flags().BoolVar(&indexOverloads, "overloads", false, "print the entry count of each symbol")
}

func indexOptions(cmd *cobra.Command, c *config.Config) navindex.Options {
	opts := navindex.DefaultOptions()
	if cmd.Flags().Changed("nested") {
		opts.RequireLeaves = !indexNested
	} else {
		opts.RequireLeaves = c.GetBool("index.require_leaves", opts.RequireLeaves)
	}
	return opts
}

// checkIndexFile prints every issue of path, or a summary line when there
// are none, and returns the number of issues.
func checkIndexFile(w io.Writer, path string, opts navindex.Options) (int, error) {
	idx, err := navindex.ParseFile(path)
	if err != nil {
		return 0, err
	}

	issues := navindex.Validate(idx, opts)
	if len(issues) == 0 {
		_, err = fmt.Fprintf(w, "%s: ok (%d entries, %d symbols)\n", path, len(idx.Entries), len(idx.Symbols()))
		return 0, err
	}
	for _, issue := range issues {
		if _, err := fmt.Fprintln(w, issue.Error()); err != nil {
			return len(issues), err
		}
	}
	return len(issues), nil
}

func runIndexCheck(cmd *cobra.Command, args []string) error {
	opts := indexOptions(cmd, cfg)
	out := cmd.OutOrStdout()

	total := 0
	for _, path := range args {
		n, err := checkIndexFile(out, path, opts)
		if err != nil {
			return err
		}
		total += n
		logger.Debug("index checked", log.String("path", path), log.Int("issues", n))
	}

	if total > 0 {
		source := args[0]
		if len(args) > 1 {
			source = fmt.Sprintf("%d files", len(args))
		}
		return errors.NavindexInvalid(source, total)
	}
	return nil
}

func runIndexSymbols(cmd *cobra.Command, args []string) error {
	idx, err := navindex.ParseFile(args[0])
	if err != nil {
		return err
	}

	symbols := idx.Symbols()
	if !indexOverloads {
		return writeLines(cmd.OutOrStdout(), symbols)
	}

	counts := idx.Overloads()
	for _, s := range symbols {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", s, counts[s]); err != nil {
			return err
		}
	}
	return nil
}

func runIndexWatch(cmd *cobra.Command, args []string) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := &indexWatcher{
		out:   cmd.OutOrStdout(),
		paths: args,
		opts:  indexOptions(cmd, cfg),
	}
	nestedFlag := cmd.Flags().Changed("nested")

	w.checkAll()
	if ctx.Err() != nil {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return w.watchFiles(ctx) })

	if cfg.FilePath() != "" && !nestedFlag {
		g.Go(func() error {
			return cfg.Watch(ctx, func(_, updated *config.Config) {
				w.setOptions(indexOptions(cmd, updated))
				logger.Info("configuration reloaded", log.String("file", updated.FilePath()))
				w.checkAll()
			}, func(err error) {
				logger.WarnWithErr("config reload failed", err)
			})
		})
	}

	logger.Info("watching index files", log.Int("files", len(args)))
	return g.Wait()
}

// indexWatcher re-checks a set of index files. Output from concurrent
// triggers is serialized.
type indexWatcher struct {
	mu    sync.Mutex
	out   io.Writer
	paths []string
	opts  navindex.Options
}

func (w *indexWatcher) setOptions(opts navindex.Options) {
	w.mu.Lock()
	w.opts = opts
	w.mu.Unlock()
}

func (w *indexWatcher) checkAll() {
	for _, path := range w.paths {
		w.check(path)
	}
}

func (w *indexWatcher) check(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := checkIndexFile(w.out, path, w.opts); err != nil {
		fmt.Fprintf(w.out, "%s: %v\n", path, err)
		logger.LogError(err)
	}
}

func (w *indexWatcher) watchFiles(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	watched := make(map[string]string, len(w.paths))
	for _, path := range w.paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		watched[filepath.Clean(abs)] = path
		if err := fw.Add(filepath.Dir(abs)); err != nil {
			return errors.InvalidInput(errors.ModuleCLI, "index_watch", path, "a watchable file")
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			path, tracked := watched[filepath.Clean(ev.Name)]
			if !tracked || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("index changed", log.String("path", path), log.String("op", ev.Op.String()))
			w.check(path)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.WarnWithErr("file watcher error", err)
		}
	}
}
