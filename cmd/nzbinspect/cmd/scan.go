package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	concpool "github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/javi11/nzbinspect/nzb"
	"github.com/javi11/nzbinspect/nzb/nzbfile"
)

func init() {
	scanCmd := &cobra.Command{
		Use:   "scan <dir>",
		Short: "Parse every NZB file under a directory",
		Long:  `Walk a directory, parse every .nzb and .nzb.gz file in parallel and print a one-line summary per document.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runScan,
	}

	rootCmd.AddCommand(scanCmd)
}

type scanResult struct {
	path string
	nzb  *nzb.Nzb
	err  error
}

func runScan(cmd *cobra.Command, args []string) error {
	fsys := afero.NewOsFs()

	var paths []string
	err := afero.Walk(fsys, args[0], func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		name := strings.ToLower(filepath.Base(path))
		if strings.HasSuffix(name, ".nzb") || strings.HasSuffix(name, ".nzb.gz") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk %s: %w", args[0], err)
	}

	if len(paths) == 0 {
		return fmt.Errorf("no NZB files found under %s", args[0])
	}

	// Documents are independent and the parser keeps no shared mutable
	// state, so they can be parsed in parallel.
	p := concpool.NewWithResults[scanResult]().WithMaxGoroutines(runtime.NumCPU())
	for _, path := range paths {
		p.Go(func() scanResult {
			n, err := nzbfile.Load(fsys, path)
			return scanResult{path: path, nzb: n, err: err}
		})
	}
	results := p.Wait()

	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			slog.Error("Failed to parse NZB", "path", res.path, "error", res.err)
			continue
		}

		name := "(unknown)"
		if main, err := res.nzb.MainFile(); err == nil && main.Name() != "" {
			name = main.Name()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d files\t%s\t%s\n",
			res.path, len(res.nzb.Files), humanSize(res.nzb.Size()), name)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d NZB files failed to parse", failed, len(paths))
	}
	return nil
}
