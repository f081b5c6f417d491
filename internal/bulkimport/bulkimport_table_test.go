package bulkimport

import (
	"bytes"
	"strings"
	"testing"
	"time"

	bulkimporterrors "sharda-hr/internal/bulkimport/errors"
	"sharda-hr/internal/shared/apperror"
	"sharda-hr/internal/shared/dateutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadTable_CSV(t *testing.T) {
	src := "\xef\xbb\xbfemployee_code, full_name\n EMP-1 ,Asha Rao\n\n,\n"

	rows, err := readTable(FormatCSV, strings.NewReader(src))

	require.NoError(t, err)
	assert.Equal(t, [][]string{{"employee_code", "full_name"}, {"EMP-1", "Asha Rao"}}, rows)
}

func TestReadTable_Empty(t *testing.T) {
	_, err := readTable(FormatCSV, strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, bulkimporterrors.ErrEmptyFile)

	_, err = readTable("ods", strings.NewReader("a"))
	assert.ErrorIs(t, err, bulkimporterrors.ErrUnsupportedFormat)
}

func TestWriteTable_XLSXRoundTrip(t *testing.T) {
	in := [][]string{
		{"employee_code", "1", "2"},
		{"EMP-000001", "P", "H"},
		{"EMP-000002", "", "A"},
	}

	b, err := writeTable(FormatXLSX, in)
	require.NoError(t, err)

	out, err := readTable(FormatXLSX, bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, in[0], out[0])
	assert.Equal(t, in[1], out[1])
	assert.Equal(t, "A", cell(out[2], 2))
	assert.Equal(t, "", cell(out[2], 1))
}

func TestHeaderIndex(t *testing.T) {
	t.Run("order and case are free", func(t *testing.T) {
		idx, err := headerIndex([]string{"Full Name", "EMPLOYEE_CODE"}, []string{"employee_code", "full_name"})

		require.NoError(t, err)
		assert.Equal(t, map[string]int{"full_name": 0, "employee_code": 1}, idx)
	})

	t.Run("missing unknown and duplicate columns are reported", func(t *testing.T) {
		_, err := headerIndex(
			[]string{"employee_code", "nickname", "employee_code"},
			[]string{"employee_code", "full_name"},
		)

		require.ErrorIs(t, err, bulkimporterrors.ErrHeaderMismatch)
		assert.Equal(t, map[string][]string{
			"missing":   {"full_name"},
			"unknown":   {"nickname"},
			"duplicate": {"employee_code"},
		}, apperror.ToHTTP(err).Details)
	})

	t.Run("attendance columns follow the month length", func(t *testing.T) {
		m, _ := dateutil.ParseMonth("2024-02")
		cols := attendanceColumns(m)

		assert.Len(t, cols, 30)
		assert.Equal(t, "29", cols[29])
	})
}

func TestParseRupees(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"", 0, false},
		{"25000", 2500000, false},
		{"25,000.50", 2500050, false},
		{"1.500", 150, false},
		{"1.005", 0, true},
		{"-10", 0, true},
		{"ten", 0, true},
	}
	for _, tc := range cases {
		got, err := parseRupees(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
	assert.Equal(t, "25000.50", formatRupees(2500050))
}

func TestParseDateCell(t *testing.T) {
	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, v := range []string{"2025-01-01", "01-01-2025", "01/01/2025", "45658"} {
		got, err := parseDateCell(v)
		require.NoError(t, err, v)
		assert.True(t, want.Equal(got), v)
	}

	_, err := parseDateCell("next monday")
	assert.Error(t, err)
}

func TestSafeCell(t *testing.T) {
	cases := map[string]string{
		"Asha Rao":                 "Asha Rao",
		"":                         "",
		"=HYPERLINK(\"http://x\")": "'=HYPERLINK(\"http://x\")",
		"+91 98450 12345":          "'+91 98450 12345",
		"-2+3":                     "'-2+3",
		"@SUM(A1:A9)":              "'@SUM(A1:A9)",
		"Ops = Support":            "Ops = Support",
	}
	for in, want := range cases {
		assert.Equal(t, want, safeCell(in), in)
	}

	t.Run("quoted text stays a plain string in a workbook", func(t *testing.T) {
		b, err := writeTable(FormatXLSX, [][]string{{"full_name"}, {safeCell("=1+2")}})
		require.NoError(t, err)

		out, err := readTable(FormatXLSX, bytes.NewReader(b))
		require.NoError(t, err)
		assert.Equal(t, "'=1+2", out[1][0])
	})
}
