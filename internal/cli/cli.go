package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tosec-parser/internal/config"
	"tosec-parser/internal/graph"
	"tosec-parser/internal/pipeline"
	"tosec-parser/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tosec-parser",
		Short: "Classify TOSEC ROM names into structured flags",
		Long: `Parses ROM file names or datfile rom entries written in the TOSEC naming
convention and writes one record of named flags per name as CSV and JSON.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.SetGlobalLevel(config.Load().Level())
		},
	}

	rootCmd.AddCommand(parseCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(similarCmd())
	rootCmd.AddCommand(releasesCmd())
	rootCmd.AddCommand(watchCmd())
	rootCmd.AddCommand(serveCmd())

	return rootCmd
}

// parseOptions are the flags shared by parse and watch.
type parseOptions struct {
	recursive bool
	store     bool
	graph     bool
	workers   int
}

func (o *parseOptions) register(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().BoolVarP(&o.recursive, "recursive", "r", false, "Descend into subdirectories of a directory input")
	cmd.Flags().BoolVar(&o.store, "store", cfg.StoreEnabled, "Upsert records into PostgreSQL (DATABASE_URL)")
	cmd.Flags().BoolVar(&o.graph, "graph", cfg.GraphEnabled, "Link records into Neo4j (NEO4J_URI)")
	cmd.Flags().IntVarP(&o.workers, "workers", "w", cfg.WorkerCount, "Number of classification workers")
}

func parseCmd() *cobra.Command {
	cfg := config.Load()
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <input> <output-dir>",
		Short: "Classify a ROM directory or datfile and write CSV and JSON",
		Long: `Classifies every name of <input> and writes <input-name>.csv and
<input-name>.json into <output-dir>. <input> is either a directory of ROM
files or a datfile whose rom elements carry name attributes.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := setupContext()
			defer cancel()
			return runParse(ctx, cfg, opts, args[0], args[1])
		},
	}
	opts.register(cmd, cfg)
	return cmd
}

// runParse handles the `parse` command.
func runParse(ctx context.Context, cfg *config.Config, opts *parseOptions, input, outputDir string) error {
	sinks, closeSinks, err := openSinks(ctx, cfg, opts)
	if err != nil {
		return err
	}
	defer closeSinks()

	log.Info().Str("input", input).Str("output", outputDir).Msg("Starting classification")

	_, err = pipeline.Run(ctx, pipeline.Options{
		Input:     input,
		OutputDir: outputDir,
		Recursive: opts.recursive,
		Workers:   opts.workers,
		Sinks:     sinks,
	})
	return err
}

// openSinks connects the optional database sinks. The returned func closes
// whatever was opened.
func openSinks(ctx context.Context, cfg *config.Config, opts *parseOptions) ([]pipeline.RecordSink, func(), error) {
	var (
		sinks   []pipeline.RecordSink
		closers []func()
	)
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if opts.store {
		pool, err := store.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, closeAll, err
		}
		closers = append(closers, pool.Close)

		rs := store.NewRecordStore(pool)
		if err := rs.EnsureSchema(ctx); err != nil {
			closeAll()
			return nil, func() {}, err
		}
		sinks = append(sinks, pipeline.StoreSink{Store: rs, BatchSize: cfg.BatchSize})
	}

	if opts.graph {
		driver, err := graph.Connect(ctx, cfg.Neo4jURI, cfg.Neo4jUser, cfg.Neo4jPassword)
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		closers = append(closers, func() { driver.Close(context.Background()) })

		linker := graph.NewLinker(driver)
		if err := linker.EnsureSchema(ctx); err != nil {
			closeAll()
			return nil, func() {}, err
		}
		sinks = append(sinks, pipeline.GraphSink{Linker: linker, BatchSize: cfg.BatchSize})
	}

	return sinks, closeAll, nil
}

// setupContext creates a cancellable context with signal handling.
func setupContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
			log.Warn().Msg("Received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigCh)
	}()

	return ctx, cancel
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
