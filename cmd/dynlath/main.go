// Command dynlath converts dynamic graphs between interaction lists,
// snapshot lists and a SQLite dataset store, and summarizes them.
//
//	dynlath convert -in net.txt -to snapshots -out net.snap
//	dynlath convert -in net.txt -to sqlite -name contacts
//	dynlath convert -from sqlite -in contacts -to interactions
//	dynlath stats -format snapshots -in net.snap
//	dynlath list
//	dynlath delete contacts
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/katalvlaran/dynlath/config"
	"github.com/katalvlaran/dynlath/core"
	"github.com/katalvlaran/dynlath/edgelist"
	"github.com/katalvlaran/dynlath/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const formatSQLite = "sqlite"

const usage = `usage: dynlath <command> [flags]

commands:
  convert   read a graph and write it in another format
  stats     print a summary of a graph
  list      list stored datasets
  delete    delete a stored dataset by id or name

run "dynlath <command> -h" for the flags of a command
`

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var cmd func(context.Context, *app, []string) error
	switch args[0] {
	case "convert":
		cmd = runConvert
	case "stats":
		cmd = runStats
	case "list":
		cmd = runList
	case "delete":
		cmd = runDelete
	case "-h", "-help", "--help", "help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "dynlath: unknown command %q\n\n%s", args[0], usage)
		return 2
	}

	a := &app{stdout: stdout, stderr: stderr}
	defer a.close()
	if err := cmd(ctx, a, args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "dynlath %s: %v\n", args[0], err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}

	return 0
}

// app carries what every command shares once its flags are parsed.
type app struct {
	stdout, stderr io.Writer

	cfg    *config.Config
	logger *zap.Logger
	st     *store.Store
}

// setup loads the configuration and builds the logger.
func (a *app) setup(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.cfg = cfg
	a.logger = logger.With(zap.String("run", uuid.NewString()))

	return nil
}

// openStore opens the configured database on first use.
func (a *app) openStore(ctx context.Context) (*store.Store, error) {
	if a.st != nil {
		return a.st, nil
	}
	st, err := store.Open(ctx, a.cfg.Database, store.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	a.st = st

	return st, nil
}

func (a *app) close() {
	if a.st != nil {
		if err := a.st.Close(); err != nil {
			a.logger.Warn("failed to close store", zap.Error(err))
		}
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// newLogger mirrors zap's presets: development output at debug level,
// production JSON otherwise.
func newLogger(level string) (*zap.Logger, error) {
	if level == "debug" {
		return zap.NewDevelopment()
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	return zcfg.Build()
}

// readerOptions returns the configured edgelist options plus logging and
// strict-mode accounting; *skipped counts ignored lines.
func (a *app) readerOptions(skipped *int) ([]edgelist.Option, error) {
	opts, err := a.cfg.Options()
	if err != nil {
		return nil, err
	}
	opts = append(opts,
		edgelist.WithLogger(a.logger),
		edgelist.WithWarnings(func(w edgelist.Warning) {
			*skipped++
			a.logger.Warn("skipped line", zap.Stringer("warning", w))
		}),
	)

	return opts, nil
}

// load reads in as format. For sqlite, in is a dataset id or name.
func (a *app) load(ctx context.Context, format, in string) (*core.Graph, error) {
	if format == formatSQLite {
		st, err := a.openStore(ctx)
		if err != nil {
			return nil, err
		}
		ds, err := st.Resolve(ctx, in)
		if err != nil {
			return nil, err
		}
		return st.Load(ctx, ds.ID)
	}

	var skipped int
	opts, err := a.readerOptions(&skipped)
	if err != nil {
		return nil, err
	}
	src := inputSource(in)

	var g *core.Graph
	switch format {
	case config.FormatInteractions:
		g, err = edgelist.ReadInteractions(src, opts...)
	case config.FormatSnapshots:
		g, err = edgelist.ReadSnapshots(src, opts...)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", errUsage, format)
	}
	if err != nil {
		return nil, err
	}
	if a.cfg.Strict && skipped > 0 {
		return nil, fmt.Errorf("%s: %d line(s) skipped in strict mode", src.Name(), skipped)
	}

	return g, nil
}

// inputSource maps "-" to standard input, buffered so it can be read twice.
func inputSource(in string) edgelist.Source {
	if in != "-" {
		return edgelist.File(in)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return failingSource{name: "<stdin>", err: err}
	}

	return edgelist.Bytes("<stdin>", data)
}

// parseFlags marks flag errors as usage errors.
func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}

	return fmt.Errorf("%w: %v", errUsage, err)
}

type failingSource struct {
	name string
	err  error
}

func (s failingSource) Name() string                 { return s.name }
func (s failingSource) Open() (io.ReadCloser, error) { return nil, s.err }

func runConvert(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	from := fs.String("from", "", "input format: interactions, snapshots or sqlite (default: config format)")
	to := fs.String("to", "", "output format: interactions, snapshots or sqlite (default: config format)")
	in := fs.String("in", "-", "input file, \"-\" for stdin, or a dataset id/name with -from sqlite")
	out := fs.String("out", "-", "output file, \"-\" for stdout")
	name := fs.String("name", "", "dataset name with -to sqlite (default: input base name)")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	if err := a.setup(*configPath); err != nil {
		return err
	}
	if *from == "" {
		*from = a.cfg.Format
	}
	if *to == "" {
		*to = a.cfg.Format
	}

	g, err := a.load(ctx, *from, *in)
	if err != nil {
		return err
	}

	if *to == formatSQLite {
		if *name == "" {
			*name = strings.TrimSuffix(filepath.Base(*in), filepath.Ext(*in))
		}
		st, err := a.openStore(ctx)
		if err != nil {
			return err
		}
		ds, err := st.Save(ctx, *name, g)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.stdout, ds.ID)
		return nil
	}

	opts, err := a.cfg.Options()
	if err != nil {
		return err
	}
	opts = append(opts, edgelist.WithLogger(a.logger))

	return writeGraph(g, *to, *out, a.stdout, opts)
}

func writeGraph(g *core.Graph, format, out string, stdout io.Writer, opts []edgelist.Option) error {
	switch format {
	case config.FormatInteractions:
		if out == "-" {
			return edgelist.WriteInteractions(g, stdout, opts...)
		}
		return edgelist.WriteInteractionsFile(g, out, opts...)
	case config.FormatSnapshots:
		if out == "-" {
			return edgelist.WriteSnapshots(g, stdout, opts...)
		}
		return edgelist.WriteSnapshotsFile(g, out, opts...)
	default:
		return fmt.Errorf("%w: unknown format %q", errUsage, format)
	}
}

func runStats(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	format := fs.String("format", "", "input format: interactions, snapshots or sqlite (default: config format)")
	in := fs.String("in", "-", "input file, \"-\" for stdin, or a dataset id/name with -format sqlite")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := a.setup(*configPath); err != nil {
		return err
	}
	if *format == "" {
		*format = a.cfg.Format
	}

	g, err := a.load(ctx, *format, *in)
	if err != nil {
		return err
	}
	s := g.Stats()
	fmt.Fprintf(a.stdout, "directed:     %t\n", s.Directed)
	fmt.Fprintf(a.stdout, "vertices:     %d\n", s.VertexCount)
	fmt.Fprintf(a.stdout, "edges:        %d\n", s.EdgeCount)
	fmt.Fprintf(a.stdout, "interactions: %d\n", s.Interactions)
	fmt.Fprintf(a.stdout, "spans:        %d\n", s.Spans)
	if s.Interactions > 0 {
		fmt.Fprintf(a.stdout, "time range:   [%d, %d]\n", s.FirstTime, s.LastTime)
		fmt.Fprintf(a.stdout, "snapshots:    %d\n", len(g.TemporalSnapshots()))
	}

	return nil
}

func runList(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if err := a.setup(*configPath); err != nil {
		return err
	}
	st, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	list, err := st.List(ctx)
	if err != nil {
		return err
	}
	for _, ds := range list {
		fmt.Fprintf(a.stdout, "%s\t%s\tdirected=%t\tedges=%d\tspans=%d\t%s\n",
			ds.ID, ds.Name, ds.Directed, ds.Edges, ds.Spans, ds.CreatedAt.Format("2006-01-02T15:04:05Z07:00"))
	}

	return nil
}

func runDelete(ctx context.Context, a *app, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	configPath := fs.String("config", "", "YAML configuration file")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: delete takes exactly one dataset id or name", errUsage)
	}
	if err := a.setup(*configPath); err != nil {
		return err
	}
	st, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	ds, err := st.Resolve(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	return st.Delete(ctx, ds.ID)
}
