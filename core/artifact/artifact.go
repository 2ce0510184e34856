// Package artifact handles the on-disk artifact set produced by the
// compiler: a BLAKE3 checksum manifest over the mapping tables, and a
// portable tar.xz bundle of the whole data directory.
package artifact

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/iso639/core/errors"
	"github.com/FocuswithJustin/iso639/core/mapping"
)

const (
	// ChecksumsFile is the checksum manifest written next to the artifacts.
	ChecksumsFile = "checksums.json"
	// BundleFile is the default name of the packed artifact bundle.
	BundleFile = "iso639-data.tar.xz"
)

// HashFile returns the hex-encoded BLAKE3 hash of a file.
func HashFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.NewIO("read", path, err)
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// WriteChecksums hashes every mapping artifact present in dir, plus any
// extra file names given, and writes the manifest to dir/checksums.json.
// Absent artifacts are skipped, matching the loader's tolerance for
// partially-built data directories.
func WriteChecksums(dir string, extra ...string) error {
	sums := map[string]string{}
	for _, name := range append(append([]string{}, mapping.Files...), extra...) {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return errors.NewIO("stat", path, err)
		}
		sum, err := HashFile(path)
		if err != nil {
			return err
		}
		sums[name] = sum
	}

	data, err := json.MarshalIndent(sums, "", " ")
	if err != nil {
		return errors.Wrap(err, "marshaling checksums")
	}
	path := filepath.Join(dir, ChecksumsFile)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return errors.NewIO("write", path, err)
	}
	return nil
}

// VerifyChecksums recomputes the hash of every file named in the manifest
// and reports the first mismatch or missing file.
func VerifyChecksums(dir string) error {
	path := filepath.Join(dir, ChecksumsFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewIO("read", path, err)
	}
	var sums map[string]string
	if err := json.Unmarshal(data, &sums); err != nil {
		return errors.NewParse("checksums", path, err.Error())
	}

	names := make([]string, 0, len(sums))
	for name := range sums {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		sum, err := HashFile(filepath.Join(dir, name))
		if err != nil {
			return err
		}
		if sum != sums[name] {
			return errors.NewValidation(name, "checksum mismatch")
		}
	}
	return nil
}
