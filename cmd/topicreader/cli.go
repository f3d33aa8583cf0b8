package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/topicreader"
	"github.com/prometheus/client_golang/prometheus"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Config   topicreader.Config
	Logger   *slog.Logger
	Registry *prometheus.Registry

	Categories []topicreader.Category
	Reader     topicreader.Reader
	Feeds      topicreader.FeedService
	Converter  topicreader.Converter
	Summarizer topicreader.Summarizer
	Dates      topicreader.DateFormatter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	FeedBase   string        `name:"feed-base" env:"TOPICREADER_FEED_BASE" default:"${feed_base}" help:"Base URL of the category feed files"`
	ReaderBase string        `name:"reader-base" env:"TOPICREADER_READER_BASE" default:"${reader_base}" help:"Base URL of the content extraction service"`
	ReaderKey  string        `name:"reader-key" env:"TOPICREADER_READER_KEY" help:"API key for the content extraction service"`
	Origin     string        `env:"TOPICREADER_ORIGIN" default:"${origin}" help:"Forum host that bare topic paths belong to"`
	Timeout    time.Duration `default:"${timeout}" help:"Timeout for each remote request"`
	Reader     string        `enum:"jina,local" default:"jina" help:"Topic reader: extraction service (jina) or local readability (local)"`
	Rate       float64       `default:"0" help:"Requests per second per host (0 disables limiting)"`
	Burst      int           `default:"1" help:"Request burst per host when rate limiting"`
	Timezone   string        `name:"tz" env:"TOPICREADER_TZ" default:"UTC" help:"Time zone for displayed dates"`
	LogLevel   string        `name:"log-level" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFormat  string        `name:"log-format" default:"text" enum:"text,json" help:"Log format"`

	Serve      ServeCmd      `cmd:"" help:"Serve the JSON API"`
	Feed       FeedCmd       `cmd:"" help:"List topics in a category feed"`
	Read       ReadCmd       `cmd:"" help:"Read a topic as markdown"`
	Categories CategoriesCmd `cmd:"" help:"List known categories"`
	Watch      WatchCmd      `cmd:"" help:"Poll a category and print new topics"`
}

// Config returns the process configuration described by the global flags.
func (c *CLI) Config() topicreader.Config {
	return topicreader.Config{
		FeedBaseURL:   c.FeedBase,
		ReaderBaseURL: c.ReaderBase,
		ReaderAPIKey:  c.ReaderKey,
		Origin:        c.Origin,
		Timeout:       c.Timeout,
	}
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}

// FeedCmd is the "feed" subcommand.
type FeedCmd struct {
	Slug     string `arg:"" help:"Category slug"`
	Markdown bool   `short:"m" help:"Show each topic's description as markdown"`
	JSON     bool   `name:"json" help:"Print items as JSON"`
	Limit    int    `short:"n" default:"0" help:"Show at most N topics (0 shows all)"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	Target string `arg:"" help:"Topic URL or forum path"`
	Base   string `help:"Override the extraction service base URL"`
	Key    string `help:"Override the extraction service API key"`
	JSON   bool   `name:"json" help:"Print the document as JSON"`
	Out    string `short:"o" type:"path" help:"Save the document as a markdown file under this directory"`
}

// CategoriesCmd is the "categories" subcommand.
type CategoriesCmd struct {
	OPML bool `name:"opml" help:"Write an OPML subscription list"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Slug     string        `arg:"" help:"Category slug"`
	Interval time.Duration `default:"1m" help:"Poll interval"`
	All      bool          `help:"Print topics already in the feed on the first poll"`
	Polls    int           `default:"0" help:"Stop after N polls (0 runs until interrupted)"`
}
