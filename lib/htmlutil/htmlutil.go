package htmlutil

import (
	"bytes"

	"gproassist/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// CellTexts returns the cleaned text of every data cell in a table row.
func CellTexts(row *goquery.Selection) []string {
	var texts []string
	row.Find("td").Each(func(_ int, cell *goquery.Selection) {
		texts = append(texts, textutil.CleanCell(GetText(cell.Get(0))))
	})
	return texts
}
