package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/copy-census/internal/catalog"
	"github.com/jsamuelsen/copy-census/internal/domain"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWrite(t *testing.T) {
	tempest := &domain.Title{ID: 1, Name: "The Tempest"}
	edition := &domain.Edition{ID: 3, Title: tempest, Number: 2}
	issue := &domain.Issue{ID: 7, Edition: edition, ESTC: "S1234"}
	owner := &domain.ProvenanceName{
		ID: 9, Name: "Pepys, Samuel", Bio: "Diarist", VIAF: "17233450",
		Gender: domain.GenderMale, StartCentury: domain.CenturyPre1700,
	}

	tests := []struct {
		name     string
		dim      catalog.Dimension
		rows     []catalog.Row
		expected string
	}{
		{
			name:     "location",
			dim:      catalog.DimensionLocation,
			rows:     []catalog.Row{{Location: &domain.Location{Name: "Bodleian Library"}, Copies: 3}},
			expected: "Location,Number of Copies\nBodleian Library,3\n",
		},
		{
			name:     "title",
			dim:      catalog.DimensionTitle,
			rows:     []catalog.Row{{Title: tempest, Copies: 12}},
			expected: "Title,Number of Copies\nThe Tempest,12\n",
		},
		{
			name:     "edition",
			dim:      catalog.DimensionEdition,
			rows:     []catalog.Row{{Edition: edition, Copies: 2}},
			expected: "Edition,Number of Copies\nThe Tempest Edition 2,2\n",
		},
		{
			name:     "issue",
			dim:      catalog.DimensionIssue,
			rows:     []catalog.Row{{Issue: issue, Copies: 1}},
			expected: "Issue (Title + ESTC),Number of Copies\nThe Tempest (ESTC S1234),1\n",
		},
		{
			name: "provenance writes stored codes",
			dim:  catalog.DimensionProvenanceName,
			rows: []catalog.Row{{Owner: owner, Copies: 4}},
			expected: "Provenance Name,Bio,VIAF,Gender,Start Century,End Century,Number of Copies\n" +
				"\"Pepys, Samuel\",Diarist,17233450,M,17,,4\n",
		},
		{
			name:     "empty report has only the header",
			dim:      catalog.DimensionTitle,
			rows:     nil,
			expected: "Title,Number of Copies\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := Write(&buf, tt.dim, tt.rows)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWrite_UnknownDimension(t *testing.T) {
	var buf bytes.Buffer

	err := Write(&buf, catalog.Dimension("shelfmark"), nil)

	require.ErrorIs(t, err, ErrUnknownDimension)
	assert.Empty(t, buf.String())
}

func TestWrite_WriterError(t *testing.T) {
	err := Write(failingWriter{}, catalog.DimensionLocation, nil)

	require.Error(t, err)
}

func TestHeader_ReturnsCopy(t *testing.T) {
	h, err := Header(catalog.DimensionLocation)
	require.NoError(t, err)

	h[0] = "changed"

	again, err := Header(catalog.DimensionLocation)
	require.NoError(t, err)
	assert.Equal(t, "Location", again[0])
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "location_copy_count.csv", Filename(catalog.DimensionLocation))
	assert.Equal(t, "provenance_name_copy_count.csv", Filename(catalog.DimensionProvenanceName))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", Filename(catalog.DimensionTitle))
	rows := []catalog.Row{{Title: &domain.Title{Name: "The Tempest"}, Copies: 2}}

	require.NoError(t, WriteFile(path, catalog.DimensionTitle, rows))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Title,Number of Copies\nThe Tempest,2\n", string(got))
}

func TestWriteFile_UnknownDimensionLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shelfmark_copy_count.csv")

	err := WriteFile(path, catalog.Dimension("shelfmark"), nil)
	require.ErrorIs(t, err, ErrUnknownDimension)

	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Empty(t, entries, "temporary file is cleaned up")
}

func TestWriteFile_FailedWriteKeepsPreviousReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename(catalog.DimensionTitle))
	rows := []catalog.Row{{Title: &domain.Title{Name: "The Tempest"}, Copies: 2}}

	require.NoError(t, WriteFile(path, catalog.DimensionTitle, rows))

	err := WriteFile(path, catalog.Dimension("shelfmark"), rows)
	require.ErrorIs(t, err, ErrUnknownDimension)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Title,Number of Copies\nThe Tempest,2\n", string(got))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFile_ReplacesPreviousReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename(catalog.DimensionTitle))

	require.NoError(t, WriteFile(path, catalog.DimensionTitle, []catalog.Row{{Title: &domain.Title{Name: "The Tempest"}, Copies: 2}}))
	require.NoError(t, WriteFile(path, catalog.DimensionTitle, []catalog.Row{{Title: &domain.Title{Name: "Hamlet"}, Copies: 5}}))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Title,Number of Copies\nHamlet,5\n", string(got))
}
