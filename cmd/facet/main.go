// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/poiesic/facet/core"
	"github.com/poiesic/facet/dynamic"
	"github.com/poiesic/facet/search"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "facet",
		Usage: "Search and filter structured records by field paths",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Find records with a field containing the query",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Path to a YAML file holding a list of records",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:     "path",
						Aliases:  []string{"p"},
						Usage:    "Field path to inspect, e.g. name or stores[].name (repeatable)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "dedup",
						Usage: "Dedup policy: identity keeps every match, value collapses equal ones",
						Value: "identity",
					},
				},
			},
			{
				Name:   "filter",
				Usage:  "Keep only records carrying an exact value at a field path",
				Action: filterCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "Path to a YAML file holding a list of records",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "path",
						Aliases:  []string{"p"},
						Usage:    "Field path to compare, e.g. stores[].name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "value",
						Usage:    "Exact text the field must equal (case-insensitive)",
						Required: true,
					},
				},
			},
			{
				Name:   "sample",
				Usage:  "Print a sample record file to try the other commands with",
				Action: sampleCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func searchCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("query argument is required")
	}

	records, err := loadRecords(c.String("data"))
	if err != nil {
		return err
	}

	policy, err := parseDedup(c.String("dedup"))
	if err != nil {
		return err
	}

	compiler := dynamic.NewCompiler()
	specs := c.StringSlice("path")
	paths := make([]*core.Path, 0, len(specs))
	for _, spec := range specs {
		path, err := compiler.Compile(spec)
		if err != nil {
			return fmt.Errorf("invalid path: %w", err)
		}
		paths = append(paths, path)
	}

	searcher, err := search.NewSearcher(paths,
		search.WithDedupPolicy(policy),
		search.WithLabeler(compiler.Labeler()),
	)
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}
	defer searcher.Release()

	results := searcher.Search(records, query)

	fmt.Printf("Found %d hits\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %q [%s]\n", i, hit.Matched, hit.Category)
	}

	return nil
}

func filterCommand(c *cli.Context) error {
	records, err := loadRecords(c.String("data"))
	if err != nil {
		return err
	}

	compiler := dynamic.NewCompiler()
	path, err := compiler.Compile(c.String("path"))
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	filter := core.NewSearchResult("", c.String("value"), path)
	narrowed := search.Apply(filter, records)

	out, err := yaml.Marshal(narrowed)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	fmt.Fprintf(os.Stderr, "%d of %d records match\n", len(narrowed), len(records))
	fmt.Print(string(out))

	return nil
}

func sampleCommand(c *cli.Context) error {
	fmt.Print(sampleRecords)
	return nil
}

// loadRecords reads a YAML file holding a list of arbitrarily shaped
// records.
func loadRecords(filePath string) ([]any, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	var records []any
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse records: %w", err)
	}

	return records, nil
}

func parseDedup(name string) (search.DedupPolicy, error) {
	switch strings.ToLower(name) {
	case "identity":
		return search.DedupIdentity, nil
	case "value":
		return search.DedupValue, nil
	}
	return 0, fmt.Errorf("invalid dedup policy %q: must be identity or value", name)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

const sampleRecords = `- name: Lamp
  price: "34.99"
  stores:
    - name: Acme Home
      city: Portland
    - name: Bright Ideas
      city: Austin
- name: Chair
  price: "129.00"
  stores:
    - name: Bolt Furniture
      city: Denver
- name: Toy Robot
  price: "59.50"
  stores:
    - name: Acme Home
      city: Portland
    - name: Toys Unlimited
      city: Austin
`
