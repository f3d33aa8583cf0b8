// Package topicreader provides a reader for Discourse-style forum feeds.
// It lists per-category topic feeds and renders single topics as markdown
// through an external content-extraction service.
//
// This package contains domain types, interfaces and the text parsers,
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/, jina/,
// goquery/).
package topicreader

// Version is reported in the User-Agent of outbound requests.
const Version = "0.3.0"
