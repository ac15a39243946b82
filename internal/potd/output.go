package potd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/Ritvik-Gupta/scraprs/internal/scrapeerr"
)

const dateLayout = "20060102"

type outputFile struct {
	POTD outputEntry `toml:"potd"`
}

type outputEntry struct {
	Number      uint32  `toml:"number"`
	Name        string  `toml:"name"`
	URL         string  `toml:"url"`
	SolutionURL *string `toml:"solution_url,omitempty"`
	Date        string  `toml:"date"`
}

// EncodeTOML renders rec under a [potd] table, stamped with the UTC date of now.
func EncodeTOML(rec *Record, now time.Time) ([]byte, error) {
	out := outputFile{POTD: outputEntry{
		Number:      rec.Number,
		Name:        rec.Name,
		URL:         rec.URL,
		SolutionURL: rec.SolutionURL,
		Date:        now.UTC().Format(dateLayout),
	}}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return nil, fmt.Errorf("%w: encode record: %v", scrapeerr.ErrSerialization, err)
	}
	return buf.Bytes(), nil
}

// WriteTOML replaces path with the encoded record. The content is staged in
// a temporary file next to path and renamed over it, so path holds either
// the old content or the complete record.
func WriteTOML(path string, rec *Record, now time.Time) error {
	data, err := EncodeTOML(rec, now)
	if err != nil {
		return err
	}
	if err := replaceFile(path, data); err != nil {
		return fmt.Errorf("%w: write %s: %v", scrapeerr.ErrIO, path, err)
	}
	return nil
}

func replaceFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
