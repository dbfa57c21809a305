package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

// entities typed by the user are text, not markup
var literalAmp = strings.NewReplacer("&", "&amp;")

// SanitizeText strips markup from user supplied text. Only the escaping
// bluemonday adds is decoded, so the result never contains a tag.
func SanitizeText(input string) string {
	clean := textPolicy.Sanitize(literalAmp.Replace(input))
	return strings.TrimSpace(html.UnescapeString(clean))
}
