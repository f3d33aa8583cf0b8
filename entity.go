package topicreader

import "strings"

// entityReplacer scans its input once, so a decoded "&amp;" never combines
// with the text that follows it into a second entity.
var entityReplacer = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#039;", "'",
	"&amp;", "&",
)

// UnescapeEntities reverses the small set of entities that feed producers
// emit for plain-text fields. "&amp;lt;" decodes to "&lt;", not "<".
func UnescapeEntities(s string) string {
	if s == "" {
		return ""
	}
	return entityReplacer.Replace(s)
}
