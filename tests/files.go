// Package tests downloads the reference test roms used by the ROM-driven
// test suites, once, next to this file.
package tests

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"golang.org/x/sync/errgroup"
)

// nestest files: the rom, and the canonical Nintendulator execution log the
// CPU trace is diffed against ("PPU:  0, 21 CYC:7" column format).
var nestestFiles = []struct {
	url  string
	name string
}{
	{
		url:  `https://raw.githubusercontent.com/christopherpow/nes-test-roms/master/other/nestest.nes`,
		name: "nestest.nes",
	},
	{
		url:  `https://www.qmtpro.com/~nes/misc/nestest.log`,
		name: "nestest.log",
	},
}

func download(url, dest string) error {
	resp, err := http.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(dest), os.ModePerm); err != nil {
		return err
	}
	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = io.Copy(f, resp.Body)
	return err
}

// NestestPath returns the directory holding nestest.nes and nestest.log,
// downloading both on first use. Tests call t.Skip when the download fails:
// the corpus is a convenience, not a build requirement.
func NestestPath(tb testing.TB) string {
	dir, err := sync.OnceValues(func() (string, error) {
		_, b, _, _ := runtime.Caller(0)
		dir := filepath.Join(filepath.Dir(b), "nes-test-roms", "other")

		if _, err := os.Stat(filepath.Join(dir, "nestest.nes")); !errors.Is(err, fs.ErrNotExist) {
			return dir, nil
		}

		tb.Log("nestest files not found, downloading...")
		var g errgroup.Group
		g.SetLimit(runtime.NumCPU())
		for _, f := range nestestFiles {
			g.Go(func() error {
				return download(f.url, filepath.Join(dir, f.name))
			})
		}
		return dir, g.Wait()
	})()
	if err != nil {
		tb.Skipf("failed to download nestest files: %s", err)
	}
	return dir
}
