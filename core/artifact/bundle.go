package artifact

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/iso639/core/errors"
)

// Pack archives every regular file at the root of srcDir into a tar.xz
// bundle at dstPath. Timestamps are normalized so identical artifact sets
// produce identical bundles.
func Pack(srcDir, dstPath string) error {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return errors.NewIO("read", srcDir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	out, err := os.Create(dstPath)
	if err != nil {
		return errors.NewIO("create", dstPath, err)
	}
	defer out.Close()

	xw, err := xz.NewWriter(out)
	if err != nil {
		return errors.Wrap(err, "creating xz writer")
	}
	tw := tar.NewWriter(xw)

	epoch := time.Unix(0, 0)
	for _, name := range names {
		path := filepath.Join(srcDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.NewIO("read", path, err)
		}
		header := &tar.Header{
			Name:    name,
			Mode:    0644,
			Size:    int64(len(data)),
			ModTime: epoch,
		}
		if err := tw.WriteHeader(header); err != nil {
			return errors.Wrapf(err, "writing tar header for %s", name)
		}
		if _, err := tw.Write(data); err != nil {
			return errors.Wrapf(err, "writing %s", name)
		}
	}

	if err := tw.Close(); err != nil {
		return errors.Wrap(err, "closing tar writer")
	}
	if err := xw.Close(); err != nil {
		return errors.Wrap(err, "closing xz writer")
	}
	return out.Close()
}

// Unpack extracts a bundle created by Pack into dstDir, creating it if
// needed. Entry names with path separators are rejected: bundles are flat.
func Unpack(srcPath, dstDir string) error {
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return errors.NewIO("create directory", dstDir, err)
	}

	in, err := os.Open(srcPath)
	if err != nil {
		return errors.NewIO("open", srcPath, err)
	}
	defer in.Close()

	xr, err := xz.NewReader(in)
	if err != nil {
		return errors.Wrap(err, "creating xz reader")
	}
	tr := tar.NewReader(xr)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.NewParse("tar", srcPath, err.Error())
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}
		name := header.Name
		if strings.ContainsAny(name, `/\`) || name == "" || strings.HasPrefix(name, ".") {
			return errors.NewValidation("entry", "unexpected path in bundle: "+name)
		}
		data, err := io.ReadAll(tr)
		if err != nil {
			return errors.NewParse("tar", srcPath, err.Error())
		}
		path := filepath.Join(dstDir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return errors.NewIO("write", path, err)
		}
	}
}
