package main

import (
	"fmt"
	"os"
	"os/signal"
	"path"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"rtcheck/pkg/history"
	"rtcheck/pkg/probes"
	"rtcheck/pkg/runner"
)

// defaultBaseURL is the local address the backend listens on when both
// run in the same environment.
const defaultBaseURL = "http://localhost:3001"

type harnessConfig struct {
	LogLevel    string
	CfgFile     string
	Timeout     time.Duration
	ExportPath  string
	NoExport    bool
	HistoryPath string
}

var harnessCfg = harnessConfig{LogLevel: "info"}

// exitCode carries the run's result out of cobra's RunE, where a
// returned error would conflate check failures with usage errors.
var exitCode int

var rootCmd = &cobra.Command{ // nolint:gochecknoglobals
	PersistentPreRunE: configLogger,
	Use:               "rtcheck [base-url]",
	Short:             "Smoke-test a WebRTC signaling and metrics backend over HTTP",
	Long: `rtcheck runs a fixed battery of independent HTTP probes against a
running WebRTC signaling backend: health, mode and metrics endpoints,
offer/ICE-candidate signaling, static content, CORS headers, and
unknown-route handling. Results are printed per probe, summarized, and
exported as JSON. The process exits 0 only when every probe passed.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		baseURL := defaultBaseURL
		if len(args) == 1 {
			baseURL = args[0]
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		r, err := runner.New(baseURL, probes.Battery(),
			runner.WithLogger(log.StandardLogger()),
			runner.WithTimeout(harnessCfg.Timeout),
		)
		if err != nil {
			return err
		}

		exitCode = r.RunAll(ctx)

		// Export and history faults degrade to log lines; the exit
		// code reflects the checks alone.
		if !harnessCfg.NoExport {
			_ = r.Export(harnessCfg.ExportPath)
		}
		if harnessCfg.HistoryPath != "" {
			saveHistory(r.Summary())
		}

		return nil
	},
}

func saveHistory(sum runner.Summary) {
	store, err := history.Open(harnessCfg.HistoryPath)
	if err != nil {
		log.Warnf("history disabled: %v", err)
		return
	}
	defer store.Close()

	if _, err := store.SaveRun(sum); err != nil {
		log.Warnf("failed to record run history: %v", err)
	}
}

func configLogger(cmd *cobra.Command, args []string) error {
	lvl, err := log.ParseLevel(harnessCfg.LogLevel)
	if err != nil {
		return fmt.Errorf("incorrect log level %q", harnessCfg.LogLevel)
	}

	log.SetLevel(lvl)
	log.WithField("log-level", lvl).Debug("log level configured")

	return nil
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them
		// to their equivalent keys with underscores, e.g. --log-level
		// to RTCHECK_LOG_LEVEL.
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))

			if err := v.BindEnv(f.Name, fmt.Sprintf("RTCHECK_%s", envVarSuffix)); err != nil {
				log.Fatal(err)
			}
		}

		// Apply the viper config value to the flag when the flag is not
		// set and viper has a value.
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)

			if err := cmd.PersistentFlags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				log.Fatal(err)
			}
		}
	})
}

func readConfigFile() *viper.Viper {
	v := viper.New()
	if harnessCfg.CfgFile != "" {
		v.SetConfigFile(harnessCfg.CfgFile)
	} else {
		currentDir := path.Dir("")

		v.AddConfigPath(currentDir)
		v.SetConfigType("yaml")
		v.SetConfigName("rtcheck")
	}

	// A missing config file is fine; a present but unparsable one is
	// worth a log line.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Info(err)
		}
	}

	v.SetEnvPrefix("RTCHECK")
	v.AutomaticEnv()

	return v
}

func init() {
	v := readConfigFile()

	rootCmd.PersistentFlags().StringVar(&harnessCfg.LogLevel, "log-level",
		"info", "set log level verbosity (options: debug, info, warning, error)")
	rootCmd.PersistentFlags().StringVar(&harnessCfg.CfgFile, "config", "",
		"config file (default is ./rtcheck.yaml)")
	rootCmd.PersistentFlags().DurationVar(&harnessCfg.Timeout, "timeout",
		10*time.Second, "per-call HTTP timeout")
	rootCmd.PersistentFlags().StringVar(&harnessCfg.ExportPath, "export",
		runner.DefaultExportFile, "path of the JSON results file")
	rootCmd.PersistentFlags().BoolVar(&harnessCfg.NoExport, "no-export",
		false, "skip writing the JSON results file")
	rootCmd.PersistentFlags().StringVar(&harnessCfg.HistoryPath, "history",
		"", "SQLite database recording run history (empty disables)")

	bindFlags(rootCmd, v)
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		return 1
	}
	return exitCode
}
