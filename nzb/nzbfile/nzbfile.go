// Package nzbfile reads NZB documents from a filesystem, transparently
// decompressing gzipped files. The core parser consumes only decoded text;
// this package is the file-acquisition layer in front of it.
package nzbfile

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/spf13/afero"

	"github.com/javi11/nzbinspect/nzb"
)

// Load reads and parses an NZB file from the given filesystem. Files with a
// ".gz" extension (case-insensitive) are gunzipped first.
func Load(fsys afero.Fs, path string) (*nzb.Nzb, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("gunzip %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	n, err := nzb.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return n, nil
}
