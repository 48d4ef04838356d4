package file

import (
	"bufio"
	"io"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/leakscan/pkg/utils/safe"
)

// writeAtomic writes a temporary file next to path and renames it over path,
// so readers observe either the old content or the complete new content.
func writeAtomic(path string, write func(w io.Writer) error) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp file", goerr.V("path", path))
	}
	tmpPath := tmp.Name()

	committed := false
	defer func() {
		if !committed {
			safe.Close(tmp)
			safe.Remove(tmpPath)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := write(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return goerr.Wrap(err, "failed to flush temp file", goerr.V("path", tmpPath))
	}
	if err := tmp.Sync(); err != nil {
		return goerr.Wrap(err, "failed to sync temp file", goerr.V("path", tmpPath))
	}
	if err := tmp.Close(); err != nil {
		return goerr.Wrap(err, "failed to close temp file", goerr.V("path", tmpPath))
	}
	if err := os.Rename(tmpPath, path); err != nil {
		safe.Remove(tmpPath)
		committed = true
		return goerr.Wrap(err, "failed to replace file", goerr.V("path", path), goerr.V("tmp", tmpPath))
	}

	committed = true
	return nil
}
