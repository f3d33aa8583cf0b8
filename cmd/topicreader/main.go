package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/topicreader"
	"github.com/fwojciec/topicreader/dateparse"
	"github.com/fwojciec/topicreader/goquery"
	"github.com/fwojciec/topicreader/htmltomarkdown"
	trhttp "github.com/fwojciec/topicreader/http"
	"github.com/fwojciec/topicreader/jina"
	trprometheus "github.com/fwojciec/topicreader/prometheus"
	"github.com/fwojciec/topicreader/readability"
	"github.com/fwojciec/topicreader/rss"
	trslog "github.com/fwojciec/topicreader/slog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher used for all remote calls. Defaults to an HTTP fetcher built
	// from the parsed flags; tests replace it.
	Fetcher topicreader.Fetcher

	// Registry collects process and fetch metrics.
	Registry *prometheus.Registry
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Registry: prometheus.NewRegistry(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("topicreader"),
		kong.Description("Browse forum category feeds and read topics as markdown"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"feed_base":   topicreader.DefaultFeedBaseURL,
			"reader_base": topicreader.DefaultReaderBaseURL,
			"origin":      topicreader.DefaultOrigin,
			"timeout":     topicreader.DefaultTimeout.String(),
		},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'topicreader --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := m.wire(deps, cli, stderr); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", topicreader.ErrorMessage(err))
		return err
	}

	return kongCtx.Run(deps)
}

// wire builds the services shared by all commands from the parsed flags.
func (m *Main) wire(deps *Dependencies, cli *CLI, stderr io.Writer) error {
	config := cli.Config()
	if err := config.Validate(); err != nil {
		return err
	}

	logger, err := trslog.NewLogger(stderr, cli.LogFormat, cli.LogLevel)
	if err != nil {
		return topicreader.Errorf(topicreader.EINVALID, "%s", err)
	}

	loc, err := time.LoadLocation(cli.Timezone)
	if err != nil {
		return topicreader.Errorf(topicreader.EINVALID, "unknown time zone %q", cli.Timezone)
	}

	if m.Registry == nil {
		m.Registry = prometheus.NewRegistry()
	}
	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	fetcher := m.Fetcher
	if fetcher == nil {
		opts := []trhttp.Option{trhttp.WithTimeout(config.Timeout)}
		if cli.Rate > 0 {
			opts = append(opts, trhttp.WithRateLimiter(trhttp.NewDomainLimiter(cli.Rate, cli.Burst)))
		}
		fetcher = trhttp.NewFetcher(opts...)
	}
	fetcher = trprometheus.NewInstrumentedFetcher(fetcher, trprometheus.NewFetchMetrics(m.Registry))
	fetcher = trslog.NewLoggingFetcher(fetcher, logger)

	converter := htmltomarkdown.NewConverter()

	var reader topicreader.Reader
	switch cli.Reader {
	case "local":
		reader = readability.NewReader(fetcher, converter, config.Origin)
	default:
		reader = jina.NewReader(fetcher, config)
	}

	categories := topicreader.DefaultCategories()

	deps.Config = config
	deps.Logger = logger
	deps.Registry = m.Registry
	deps.Categories = categories
	deps.Reader = trslog.NewLoggingReader(reader, logger)
	deps.Feeds = trslog.NewLoggingFeedService(rss.NewFeedService(fetcher, config.FeedBaseURL, categories), logger)
	deps.Converter = converter
	deps.Summarizer = goquery.NewSummarizer(0)
	deps.Dates = dateparse.NewFormatter(loc)
	return nil
}
