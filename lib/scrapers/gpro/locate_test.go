package gpro

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func loadDoc(t *testing.T, name string) *goquery.Document {
	f, err := os.Open(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestSectionByHeader(t *testing.T) {
	doc := loadDoc(t, "race_analysis.html")

	section, err := sectionByHeader(doc, "Setups used")
	if err != nil {
		t.Fatal(err)
	}
	require.True(t, section.Is("table"))

	_, err = sectionByHeader(doc, "No such section")
	require.Error(t, err)

	var nf *SectionNotFoundError
	require.True(t, errors.As(err, &nf))
	require.Equal(t, "No such section", nf.Label)
}

func TestSectionByMarker(t *testing.T) {
	doc := loadDoc(t, "race_analysis.html")

	block, err := sectionByMarker(doc, "block", 0)
	if err != nil {
		t.Fatal(err)
	}
	require.Contains(t, block.Text(), "Season 54 - Race 14")

	_, err = sectionByMarker(doc, "nope", 0)
	var nf *SectionNotFoundError
	require.True(t, errors.As(err, &nf))
}

func TestRowCells(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<table>
		<tr><th>Some section</th></tr>
		<tr><th>A</th><th>B</th></tr>
		<tr><td>  one
		</td><td> two  three </td></tr>
		</table>`))
	if err != nil {
		t.Fatal(err)
	}

	section, err := sectionByHeader(doc, "Some section")
	if err != nil {
		t.Fatal(err)
	}

	cells, err := rowCells(section, "Some section", 3)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, []string{"one", "two three"}, cells)

	_, err = rowCells(section, "Some section", 4)
	var rnf *RowNotFoundError
	require.True(t, errors.As(err, &rnf))
	require.Equal(t, 4, rnf.Row)
}
