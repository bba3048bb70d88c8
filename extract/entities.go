package extract

import "regexp"

var (
	entityPattern = regexp.MustCompile(`&[^;]+;`)

	entities = map[string]string{
		"&nbsp;":  " ",
		"&#8211;": "–",
		"&amp;":   "&",
		"&lt;":    "<",
		"&gt;":    ">",
		"&quot;":  `"`,
		"&#39;":   "'",
	}
)

// CleanHTMLEntities decodes the small fixed set of entities seen in the alert
// feed. Unknown entities are left verbatim.
func CleanHTMLEntities(text string) string {
	return entityPattern.ReplaceAllStringFunc(text, func(e string) string {
		if r, ok := entities[e]; ok {
			return r
		}
		return e
	})
}
