package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestGetText(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<div>outer <span>inner <b>deep</b></span> tail</div>`,
	))
	if err != nil {
		t.Fatal(err)
	}

	text := GetText(doc.Find("div").Get(0))
	require.Equal(t, "outer inner deep tail", text)
}

func TestCellTexts(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<table><tr>
		<td>  plain </td>
		<td><img title="Sunny"> Temp:
		19&deg;C</td>
		<td>nested <b>markup</b></td>
		</tr></table>`))
	if err != nil {
		t.Fatal(err)
	}

	cells := CellTexts(doc.Find("tr").First())
	require.Equal(t, []string{"plain", "Temp: 19°C", "nested markup"}, cells)
}
