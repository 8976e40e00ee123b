package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"tosec-parser/internal/config"
	"tosec-parser/internal/graph"
	"tosec-parser/internal/pipeline"
	"tosec-parser/internal/server"
	"tosec-parser/internal/store"
	"tosec-parser/internal/tosec"

	"github.com/radovskyb/watcher"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	var (
		explain bool
		file    bool
	)

	cmd := &cobra.Command{
		Use:   "classify <name>...",
		Short: "Classify names given on the command line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records := lo.Map(args, func(name string, _ int) tosec.Record {
				if file {
					return tosec.ParseFile(name)
				}
				return tosec.Parse(name)
			})

			if explain {
				for i, r := range records {
					if i > 0 {
						printf(cmd, "\n")
					}
					writeDescription(cmd, r)
				}
				return nil
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			enc.SetEscapeHTML(false)
			return enc.Encode(records)
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "Print populated fields with readable country and language names")
	cmd.Flags().BoolVar(&file, "file", false, "Treat names as file names and strip their extension")
	return cmd
}

func writeDescription(cmd *cobra.Command, r tosec.Record) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, d := range tosec.Describe(r) {
		if d.Meaning != "" {
			fmt.Fprintf(tw, "%s\t%s\t(%s)\n", d.Field, d.Value, d.Meaning)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", d.Field, d.Value)
	}
	tw.Flush()
}

func similarCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "similar <title>",
		Short: "Find stored titles close to <title>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := setupContext()
			defer cancel()

			cfg := config.Load()
			pool, err := store.Connect(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer pool.Close()

			matches, err := store.NewRecordStore(pool).Similar(ctx, args[0], limit)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				log.Warn().Str("title", args[0]).Msg("No similar titles found")
				return nil
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, m := range matches {
				fmt.Fprintf(tw, "%.3f\t%s\t%s\n", m.Score, m.Title, m.ROM)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of matches")
	return cmd
}

func releasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "releases <title>",
		Short: "List the ROMs linked to a title in the release graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := setupContext()
			defer cancel()

			cfg := config.Load()
			driver, err := graph.Connect(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
			if err != nil {
				return err
			}
			defer driver.Close(ctx)

			releases, err := graph.NewLinker(driver).Releases(ctx, args[0])
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range releases {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%v\n", r.ROM, r.Date, r.Publisher, r.System, r.Countries)
			}
			return tw.Flush()
		},
	}
}

func watchCmd() *cobra.Command {
	cfg := config.Load()
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "watch <dir> <output-dir>",
		Short: "Re-classify a ROM directory whenever its files change",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := setupContext()
			defer cancel()

			sinks, closeSinks, err := openSinks(ctx, cfg, opts)
			if err != nil {
				return err
			}
			defer closeSinks()

			run := func() {
				_, err := pipeline.Run(ctx, pipeline.Options{
					Input:     args[0],
					OutputDir: args[1],
					Recursive: opts.recursive,
					Workers:   opts.workers,
					Sinks:     sinks,
				})
				if err != nil {
					log.Error().Err(err).Str("dir", args[0]).Msg("Classification failed")
				}
			}
			run()

			w := watcher.New()
			w.FilterOps(watcher.Create, watcher.Remove, watcher.Rename, watcher.Move)
			if opts.recursive {
				err = w.AddRecursive(args[0])
			} else {
				err = w.Add(args[0])
			}
			if err != nil {
				return fmt.Errorf("watch %s: %w", args[0], err)
			}

			go func() {
				<-ctx.Done()
				w.Close()
			}()

			go func() {
				for {
					select {
					case event := <-w.Event:
						if event.IsDir() && filepath.Clean(event.Path) == filepath.Clean(args[0]) {
							continue
						}
						if isWithin(event.Path, args[1]) {
							continue
						}
						log.Info().Str("op", event.Op.String()).Str("path", event.Path).Msg("Input changed")
						run()
					case err := <-w.Error:
						log.Error().Err(err).Msg("Watcher error")
					case <-w.Closed:
						return
					}
				}
			}()

			interval := time.Duration(cfg.WatchIntervalMs) * time.Millisecond
			log.Info().Str("dir", args[0]).Dur("interval", interval).Msg("Watching for changes")
			if err := w.Start(interval); err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			return nil
		},
	}
	opts.register(cmd, cfg)
	return cmd
}

func serveCmd() *cobra.Command {
	cfg := config.Load()
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the classifier over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info().Str("addr", addr).Msg("Starting HTTP API")
			return server.NewRouter().Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", cfg.HTTPAddr, "Listen address")
	return cmd
}

// isWithin reports whether path lies inside dir.
func isWithin(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
