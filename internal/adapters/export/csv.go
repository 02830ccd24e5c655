// Package export writes copy-count reports as CSV.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jsamuelsen/copy-census/internal/catalog"
)

// ContentType is the media type of every report.
const ContentType = "text/csv"

// ErrUnknownDimension is returned for a dimension without a report layout.
var ErrUnknownDimension = errors.New("unknown report dimension")

var headers = map[catalog.Dimension][]string{
	catalog.DimensionLocation: {"Location", "Number of Copies"},
	catalog.DimensionTitle:    {"Title", "Number of Copies"},
	catalog.DimensionEdition:  {"Edition", "Number of Copies"},
	catalog.DimensionIssue:    {"Issue (Title + ESTC)", "Number of Copies"},
	catalog.DimensionProvenanceName: {
		"Provenance Name", "Bio", "VIAF", "Gender", "Start Century", "End Century", "Number of Copies",
	},
}

// Header returns the header row of the report for dim.
func Header(dim catalog.Dimension) ([]string, error) {
	h, ok := headers[dim]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDimension, dim)
	}

	out := make([]string, len(h))
	copy(out, h)

	return out, nil
}

// Filename is the attachment name of the report for dim.
func Filename(dim catalog.Dimension) string {
	return string(dim) + "_copy_count.csv"
}

// Write writes the header and one record per row.
func Write(w io.Writer, dim catalog.Dimension, rows []catalog.Row) error {
	header, err := Header(dim)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range rows {
		if err := cw.Write(record(dim, r)); err != nil {
			return err
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteFile writes the report for dim to path, creating parent directories.
// The report goes to a temporary file in the same directory that replaces
// path only once fully written, so a failed write leaves any previous report
// in place.
func WriteFile(path string, dim catalog.Dimension, rows []catalog.Row) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating report directory: %w", err)
	}

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	if err := errors.Join(Write(f, dim, rows), f.Close()); err != nil {
		return err
	}

	if err := os.Chmod(f.Name(), 0o644); err != nil {
		return fmt.Errorf("setting report permissions: %w", err)
	}

	if err := os.Rename(f.Name(), path); err != nil {
		return fmt.Errorf("replacing report file: %w", err)
	}

	return nil
}

func record(dim catalog.Dimension, r catalog.Row) []string {
	count := strconv.Itoa(r.Copies)

	if dim == catalog.DimensionProvenanceName && r.Owner != nil {
		o := r.Owner

		return []string{
			o.Name,
			o.Bio,
			o.VIAF,
			string(o.Gender),
			string(o.StartCentury),
			string(o.EndCentury),
			count,
		}
	}

	return []string{r.Label(), count}
}
