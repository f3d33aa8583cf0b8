package topicreader

import "regexp"

// fieldPattern matches one tag inside an item fragment.
type fieldPattern struct {
	cdata *regexp.Regexp
	plain *regexp.Regexp
}

func newFieldPattern(tag string) fieldPattern {
	t := regexp.QuoteMeta(tag)
	return fieldPattern{
		cdata: regexp.MustCompile(`(?is)<` + t + `>\s*<!\[CDATA\[(.*?)\]\]>\s*</` + t + `>`),
		plain: regexp.MustCompile(`(?is)<` + t + `>(.*?)</` + t + `>`),
	}
}

// extract returns the CDATA interior verbatim when the tag wraps a CDATA
// section, otherwise the entity-decoded interior. Only the first occurrence
// of the tag is considered.
func (p fieldPattern) extract(fragment string) string {
	if m := p.cdata.FindStringSubmatch(fragment); m != nil {
		return m[1]
	}
	if m := p.plain.FindStringSubmatch(fragment); m != nil {
		return UnescapeEntities(m[1])
	}
	return ""
}

// ExtractField returns the text content of the first <tag>...</tag> in
// fragment. The tag name is matched case-insensitively and literally, so
// namespaced names such as "dc:creator" work. Returns "" when the tag is
// absent.
func ExtractField(fragment, tag string) string {
	if fragment == "" || tag == "" {
		return ""
	}
	return newFieldPattern(tag).extract(fragment)
}
