package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fwojciec/topicreader"
	trhttp "github.com/fwojciec/topicreader/http"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

// Run executes the serve command. It blocks until the context is canceled
// or the process receives SIGINT or SIGTERM.
func (c *ServeCmd) Run(deps *Dependencies) error {
	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := trhttp.NewServer()
	s.Addr = c.Addr
	s.Reader = deps.Reader
	s.Feeds = deps.Feeds
	s.Categories = deps.Categories
	s.Summarizer = deps.Summarizer
	s.Dates = deps.Dates
	if deps.Logger != nil {
		s.Logger = deps.Logger
	}
	if deps.Registry != nil {
		s.Metrics = promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})
	}

	if err := s.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", topicreader.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Listening on %s\n", s.URL())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		<-ctx.Done()
		return s.Close()
	})
	return g.Wait()
}
