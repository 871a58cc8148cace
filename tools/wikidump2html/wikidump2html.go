// Convert a wikipedia dump into a tree of static HTML pages.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-wikihtml"
	"github.com/dustin/go-wikihtml/catalog"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func loadConfig(c *cli.Context) (wikihtml.Config, error) {
	cfg := wikihtml.DefaultConfig()
	if c.IsSet("config") {
		var err error
		cfg, err = wikihtml.LoadConfig(c.String("config"))
		if err != nil {
			return cfg, err
		}
	}

	if c.IsSet("out") {
		cfg.OutputDir = c.String("out")
	}
	if c.IsSet("engine") {
		cfg.Engine.Command = c.String("engine")
	}
	if c.IsSet("engine-arg") {
		cfg.Engine.Args = c.StringSlice("engine-arg")
	}
	if c.IsSet("timeout") {
		cfg.Engine.Timeout = c.Duration("timeout")
	}
	if c.IsSet("keep-going") {
		cfg.KeepGoing = c.Bool("keep-going")
	}
	if c.IsSet("progress") {
		cfg.Progress = c.String("progress")
	}
	if c.IsSet("report-every") {
		cfg.ReportEvery = c.Int64("report-every")
	}
	if c.IsSet("catalog") {
		cfg.Catalog.Kind = c.String("catalog")
	}
	if c.IsSet("catalog-url") {
		cfg.Catalog.URL = c.String("catalog-url")
	}
	if c.Bool("quiet") {
		cfg.Progress = "none"
	}
	return cfg, cfg.Validate()
}

func newProgress(cfg wikihtml.Config) (wikihtml.Progress, error) {
	switch cfg.Progress {
	case "counter", "":
		return &wikihtml.CounterProgress{W: os.Stdout}, nil
	case "log":
		return &wikihtml.LogProgress{Every: cfg.ReportEvery}, nil
	case "none":
		return wikihtml.NopProgress{}, nil
	}
	return nil, errors.Errorf("unknown progress style %q", cfg.Progress)
}

func dumpArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", errors.New("need exactly one DUMPFILE.XML")
	}
	return c.Args().First(), nil
}

func convertAction(c *cli.Context) error {
	filename, err := dumpArg(c)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	progress, err := newProgress(cfg)
	if err != nil {
		return err
	}

	sink, err := catalog.Open(cfg.Catalog)
	if err != nil {
		return err
	}
	if sink != nil {
		defer sink.Close()
	}

	f, err := wikihtml.OpenDump(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	p := &wikihtml.Pipeline{
		Materializer: &wikihtml.Materializer{
			Root:      cfg.OutputDir,
			Converter: wikihtml.NewConverter(cfg.NewEngine()),
		},
		Progress:  progress,
		KeepGoing: cfg.KeepGoing,
	}
	if sink != nil {
		p.Catalog = sink
	}

	// Stop between pages on ^C so the tree and catalog stay consistent.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	st, err := p.Run(ctx, f)
	log.Printf("Wrote %s pages to %v in %v (%s redirects, %s unconverted, %s failed)",
		humanize.Comma(st.Pages), cfg.OutputDir, time.Since(start),
		humanize.Comma(st.Redirects), humanize.Comma(st.FixedPoint+st.Exhausted),
		humanize.Comma(st.Failed))
	return err
}

func scanAction(c *cli.Context) error {
	filename, err := dumpArg(c)
	if err != nil {
		return err
	}

	f, err := wikihtml.OpenDump(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	st, err := wikihtml.Census(f, c.Bool("coords"),
		&wikihtml.LogProgress{Every: c.Int64("report-every")})
	log.Printf("Got site info:  %+v", st.SiteInfo)
	log.Printf("%s pages, %s redirects, %s revisions, %s empty",
		humanize.Comma(st.Pages), humanize.Comma(st.Redirects),
		humanize.Comma(st.Revisions), humanize.Comma(st.EmptyPages))
	if c.Bool("coords") {
		log.Printf("%s pages with geo data, %s with bad geo data",
			humanize.Comma(st.WithCoords), humanize.Comma(st.CoordErrors))
	}
	return err
}

func convertFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: wikihtml.DefaultOutputDir, Usage: "output directory"},
		&cli.StringFlag{Name: "engine", Value: wikihtml.DefaultEngineCommand, Usage: "markup to HTML converter command"},
		&cli.StringSliceFlag{Name: "engine-arg", Usage: "converter argument, repeatable (used with --engine)"},
		&cli.DurationFlag{Name: "timeout", Usage: "give up on a single conversion after this long (0 waits forever)"},
		&cli.BoolFlag{Name: "keep-going", Aliases: []string{"k"}, Usage: "skip pages that can't be written"},
		&cli.StringFlag{Name: "progress", Value: "counter", Usage: "progress style: counter, log or none"},
		&cli.Int64Flag{Name: "report-every", Value: wikihtml.DefaultReportEvery, Usage: "pages between log progress lines"},
		&cli.StringFlag{Name: "catalog", Usage: "record pages in: sqlite, couchdb, couchbase, elasticsearch or mongodb"},
		&cli.StringFlag{Name: "catalog-url", Usage: "catalog database file or server URL"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "no progress output"},
	}
}

func main() {
	app := &cli.App{
		Name:      "wikidump2html",
		Usage:     "convert a MediaWiki XML dump into static HTML pages",
		ArgsUsage: "DUMPFILE.XML[.bz2]",
		Flags:     convertFlags(),
		Action:    convertAction,
		Commands: []*cli.Command{
			{
				Name:      "scan",
				Usage:     "count the pages of a dump without converting them",
				ArgsUsage: "DUMPFILE.XML[.bz2]",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "coords", Usage: "try to parse geo data while traversing"},
					&cli.Int64Flag{Name: "report-every", Value: wikihtml.DefaultReportEvery},
				},
				Action: scanAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%+v", err)
	}
}
