package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/danielrab/save-monger/internal/config"
	"github.com/danielrab/save-monger/pkg/logging"
	"github.com/danielrab/save-monger/pkg/save/format_v6"
)

const version = "0.1.0"

var (
	configPath    string
	logLevel      string
	endpointsOnly bool
	versionFlag   bool
	exportFormat  string
	exportChain   string
	outputPath    string
	rootCmd       *cobra.Command

	// set by setup before any command runs
	cfg    *config.Config
	logger hclog.Logger
)

func getBuildTimestamp() string {
	// Try to get vcs.time from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.time" {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					return t.UTC().Format(time.RFC3339)
				}
			}
		}
	}
	// Fallback to binary modification time
	if exePath, err := os.Executable(); err == nil {
		if stat, err := os.Stat(exePath); err == nil {
			return stat.ModTime().UTC().Format(time.RFC3339)
		}
	}
	return time.Now().UTC().Format(time.RFC3339)
}

func printVersion(cmd *cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "save-monger %s\n", version)
	fmt.Fprintf(cmd.OutOrStdout(), "Built: %s\n", getBuildTimestamp())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "save-monger [file]",
		Short: "Decode circuit.data save files",
		Long: `Decode version 6 circuit.data save files.

With a file argument and no command, the save header is printed.`,
		Args:              cobra.MaximumNArgs(1),
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if versionFlag {
				printVersion(cmd)
				return nil
			}
			if len(args) == 0 {
				return cmd.Help()
			}
			return runHeader(cmd, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (or "+config.EnvConfig+")")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&endpointsOnly, "endpoints-only", false, "Keep only the first and last point of each wire path")
	root.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	headerCmd := &cobra.Command{
		Use:   "header <file>",
		Short: "Print the save header",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeader,
	}

	infoCmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Print header, statistics, sizes and payload digest",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}

	verifyCmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Decode stage by stage and report the failing stage",
		Args:  cobra.ExactArgs(1),
		RunE:  runVerify,
	}

	exportCmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Dump the decoded circuit as json, yaml, cbor or msgpack",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Output format (json, yaml, cbor, msgpack)")
	exportCmd.Flags().StringVarP(&exportChain, "compress", "c", "", "Compression chain (raw, gzip, bzip2, zstd, lz4, or a|b)")
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output path, - for stdout (defaults to the input with the format's extension)")

	listCmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List circuit.data files under the saves directory",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runList,
	}

	root.AddCommand(headerCmd, infoCmd, verifyCmd, exportCmd, listCmd)
	return root
}

func init() {
	rootCmd = newRootCmd()
}

// setup loads the config and builds the logger. Flags override the config
// file, which overrides the environment defaults.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return err
	}

	level := logging.GetLogLevel()
	if cfg.LogLevel != "" {
		level = cfg.LogLevel
	}
	if logLevel != "" {
		level = logLevel
	}
	jsonLog := cfg.JSONLog || os.Getenv(logging.EnvJSONLog) == "1"

	logger = logging.NewLoggerWithFormat("save-monger", level, cmd.ErrOrStderr(), jsonLog)
	logger.Debug("Configuration loaded", "config", configPath, "wire_paths", cfg.WirePaths)
	return nil
}

// decodeOptions picks the wire path mode. An explicit --endpoints-only,
// true or false, wins over the config file.
func decodeOptions(cmd *cobra.Command) format_v6.Options {
	if cmd.Flags().Changed("endpoints-only") {
		if endpointsOnly {
			return format_v6.Options{PathMode: format_v6.PathEndpoints}
		}
		return format_v6.Options{PathMode: format_v6.PathFull}
	}
	return format_v6.Options{PathMode: cfg.PathMode()}
}

// execute runs root and logs any failure, returning the exit code.
func execute(root *cobra.Command) int {
	logger = nil
	if err := root.Execute(); err != nil {
		if logger == nil {
			// setup failed before the configured logger existed
			logger = logging.NewLogger("save-monger", logging.GetLogLevel(), root.ErrOrStderr())
		}
		logger.Error("Command failed", "error", err)
		return 1
	}
	return 0
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		printVersion(rootCmd)
		os.Exit(0)
	}

	os.Exit(execute(rootCmd))
}
