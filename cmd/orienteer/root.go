package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/orienteer/config"
	"github.com/katalvlaran/orienteer/core"
	"github.com/katalvlaran/orienteer/records"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg config.Config
	log *logrus.Entry
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "orienteer",
		Short: "Multi-agent prize-collecting search over small graphs",
		Long: `orienteer reads a graph of nodes with activation rates and reports the
maximum value a team of agents can collect within a time budget.`,
		Version:           versionString(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file (env: ORIENTEER_*)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: trace|debug|info|warn|error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log format: text|json")

	versionCmd := newVersionCmd()
	versionCmd.PersistentPreRunE = func(*cobra.Command, []string) error { return nil }

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newVerifyCmd(a))
	root.AddCommand(newGenerateCmd(a))
	root.AddCommand(versionCmd)

	return root
}

// setup loads configuration, applies the persistent flags and builds the
// run-scoped logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	l, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = l.WithFields(logrus.Fields{
		"run_id":  uuid.NewString(),
		"command": cmd.Name(),
	})

	return nil
}

// readGraph parses the graph from the file named by args[0], or from stdin
// when no file (or "-") is given. An empty format picks one by extension.
func readGraph(cmd *cobra.Command, args []string, format string) (*core.Graph, error) {
	var (
		r    io.Reader = cmd.InOrStdin()
		path           = "-"
	)
	if len(args) > 0 && args[0] != "-" {
		path = args[0]
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	f := records.FormatFromPath(path)
	if format != "" {
		var err error
		if f, err = records.ParseFormat(format); err != nil {
			return nil, err
		}
	}
	recs, err := records.Parse(r, f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return core.Build(recs)
}
