package gpro

import (
	"gproassist/lib/htmlutil"
	"gproassist/lib/textutil"

	"github.com/PuerkitoBio/goquery"
)

// sectionByHeader returns the table enclosing a header cell whose text
// equals label exactly. A miss means the document no longer matches the
// layout this scraper encodes, not that the race is missing.
func sectionByHeader(doc *goquery.Document, label string) (*goquery.Selection, error) {
	var section *goquery.Selection
	doc.Find("th").EachWithBreak(func(_ int, th *goquery.Selection) bool {
		if textutil.CleanCell(th.Text()) != label {
			return true
		}
		table := th.Closest("table")
		if table.Length() == 0 {
			return true
		}
		section = table
		return false
	})
	if section == nil {
		return nil, &SectionNotFoundError{Label: label}
	}
	return section, nil
}

// sectionByMarker returns the nth node carrying a structural marker class.
func sectionByMarker(doc *goquery.Document, class string, nth int) (*goquery.Selection, error) {
	sel := doc.Find("." + class).Eq(nth)
	if sel.Length() == 0 {
		return nil, &SectionNotFoundError{Label: "." + class}
	}
	return sel, nil
}

// row returns the 1-based rowIndex-th row of a section.
func row(section *goquery.Selection, label string, rowIndex int) (*goquery.Selection, error) {
	r := section.Find("tr").Eq(rowIndex - 1)
	if r.Length() == 0 {
		return nil, &RowNotFoundError{Label: label, Row: rowIndex}
	}
	return r, nil
}

// rowCells returns the cleaned text of every data cell in the 1-based
// rowIndex-th row of a section.
func rowCells(section *goquery.Selection, label string, rowIndex int) ([]string, error) {
	r, err := row(section, label, rowIndex)
	if err != nil {
		return nil, err
	}
	return htmlutil.CellTexts(r), nil
}
