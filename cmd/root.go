package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/spf13/cobra"

	"github.com/containifyci/pixbench/benchmarks"
	"github.com/containifyci/pixbench/pkg/config"
	"github.com/containifyci/pixbench/pkg/logger"
	"github.com/containifyci/pixbench/pkg/pixbuf"
)

type rootCmdArgs struct {
	cpuProfileFile *os.File
	version        VersionInfo
	ConfigFile     string
	CPUProfile     string
	MemProfile     string
	LogFormat      string
	Sizes          string
	Kinds          []string
	Verbose        bool
}

type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	Repo    string `json:"repo"`
}

const skipRootHooks = "skipRootHooks"

var RootArgs = &rootCmdArgs{}

// rootCmd runs the benchmark suite when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pixbench",
	Short: "Compare allocation strategies for grayscale pixel buffers",
	Long: `pixbench allocates, fills and releases square grayscale pixel buffers
with three storage strategies ([]byte slice, string, raw mmap block) and
prints the time spent in each phase for sizes 256 through 4096.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          RunBenchmarks,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[skipRootHooks] == "true" {
			return nil
		}
		logOpts := slog.HandlerOptions{
			Level:       slog.LevelInfo,
			AddSource:   false,
			ReplaceAttr: nil,
		}

		if RootArgs.Verbose {
			logOpts.Level = slog.LevelDebug
			logOpts.AddSource = true
		}
		handler, err := logger.New(RootArgs.LogFormat, os.Stderr, logOpts)
		if err != nil {
			return err
		}
		slog.SetDefault(slog.New(handler))
		slog.Debug("Version", "version", RootArgs.version)

		// Enable CPU profiling if requested
		if RootArgs.CPUProfile != "" {
			f, err := os.Create(RootArgs.CPUProfile)
			if err != nil {
				return fmt.Errorf("could not create CPU profile: %w", err)
			}
			if err := pprof.StartCPUProfile(f); err != nil {
				_ = f.Close()
				return fmt.Errorf("could not start CPU profile: %w", err)
			}
			RootArgs.cpuProfileFile = f
			slog.Info("CPU profiling started", "file", RootArgs.CPUProfile)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[skipRootHooks] == "true" {
			return nil
		}

		// Stop CPU profiling if it was started
		if RootArgs.cpuProfileFile != nil {
			pprof.StopCPUProfile()
			slog.Info("CPU profiling stopped", "file", RootArgs.CPUProfile)
			if err := RootArgs.cpuProfileFile.Close(); err != nil {
				slog.Warn("Failed to close CPU profile file", "error", err)
			}
			RootArgs.cpuProfileFile = nil
		}

		// Write memory profile if requested
		if RootArgs.MemProfile != "" {
			f, err := os.Create(RootArgs.MemProfile)
			if err != nil {
				return fmt.Errorf("could not create memory profile: %w", err)
			}
			defer f.Close()

			runtime.GC() // get up-to-date statistics
			if err := pprof.WriteHeapProfile(f); err != nil {
				return fmt.Errorf("could not write memory profile: %w", err)
			}
			slog.Info("Memory profile written", "file", RootArgs.MemProfile)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	logOpts := slog.HandlerOptions{
		Level:       slog.LevelInfo,
		AddSource:   false,
		ReplaceAttr: nil,
	}

	slogger := slog.New(logger.NewRootLog(logOpts))
	slog.SetDefault(slogger)
	rootCmd.PersistentFlags().BoolVarP(&RootArgs.Verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&RootArgs.LogFormat, "log-format", logger.FormatPretty,
		"The logging format to use. Options are: "+strings.Join(logger.Formats, ", "))

	rootCmd.Flags().StringVarP(&RootArgs.ConfigFile, "config", "c", "", "YAML or JSON file with sizes and kinds")
	rootCmd.Flags().StringVarP(&RootArgs.Sizes, "sizes", "s", "", "comma separated buffer edge lengths, e.g. 256,512")
	rootCmd.Flags().StringSliceVarP(&RootArgs.Kinds, "kinds", "k", nil,
		"buffer kinds to run, in order. Options are: "+strings.Join(pixbuf.KindNames(), ", "))

	// Profiling flags
	rootCmd.PersistentFlags().StringVar(&RootArgs.CPUProfile, "cpuprofile", "", "write cpu profile to file")
	rootCmd.PersistentFlags().StringVar(&RootArgs.MemProfile, "memprofile", "", "write memory profile to file")
}

// suiteConfig resolves the configuration file and flag overrides.
func suiteConfig() (*config.Config, error) {
	cfg, err := config.Load(RootArgs.ConfigFile)
	if err != nil {
		return nil, err
	}

	sizes, err := config.ParseSizes(RootArgs.Sizes)
	if err != nil {
		return nil, err
	}
	cfg.Merge(config.Overrides{Sizes: sizes, Kinds: RootArgs.Kinds})

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// RunBenchmarks runs the configured suite and prints the report.
func RunBenchmarks(cmd *cobra.Command, _ []string) error {
	cfg, err := suiteConfig()
	if err != nil {
		return err
	}

	suite, err := benchmarks.NewSuite(cfg.Kinds, cfg.Sizes)
	if err != nil {
		return err
	}

	slog.Debug("Running benchmarks", "kinds", cfg.Kinds, "sizes", cfg.Sizes)
	return suite.Run(cmd.OutOrStdout())
}

func SetVersionInfo(version, commit, date, repo string) string {
	rootCmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s of %s)", version, date, commit, repo)
	RootArgs.version = VersionInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
		Repo:    repo,
	}
	return rootCmd.Version
}

func RootCmd() *cobra.Command {
	return rootCmd
}
