package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "SIGINFO"

// config is the resolved command configuration.
type config struct {
	Signal    string
	Frequency float64
	Amplitude float64
	Phase     float64
	Rate      float64
	Duration  float64
	Noise     float64
	Seed      int64
	Backend   string
	Strict    bool
	Workers   int
	Peaks     int
	Output    string
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configFile string

	cmd := &cobra.Command{
		Use:   "siginfo",
		Short: "Sample a test signal and report its statistics and spectrum",
		Long: `siginfo samples one of the built-in continuous signals, optionally adds
seeded Gaussian noise, transforms it and prints time-domain statistics,
spectral shape measures and the strongest bins.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(cmd, v, configFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			rep, err := analyze(cfg)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), cfg.Output, rep)
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "YAML config file")

	f := cmd.Flags()
	f.StringP("signal", "s", "sine", "signal kind (see 'siginfo list')")
	f.Float64P("frequency", "f", 1000, "frequency in Hz for periodic signals")
	f.Float64P("amplitude", "a", 1, "peak amplitude")
	f.Float64("phase", 0, "phase offset in radians")
	f.Float64P("rate", "r", 48000, "sample rate in Hz")
	f.Float64P("duration", "d", 0.01, "duration in seconds")
	f.Float64("noise", 0, "standard deviation of added Gaussian noise")
	f.Int64("seed", 1, "noise seed")
	f.String("backend", "builtin", "transform backend (builtin, algofft, gonum)")
	f.Bool("strict", false, "reject transform lengths that are not a power of two")
	f.Int("workers", 1, "goroutines per transform")
	f.Int("peaks", 4, "number of strongest bins to list")
	f.StringP("output", "o", "table", "output format (table, yaml)")

	cmd.AddCommand(newListCmd())
	return cmd
}

// initConfig layers config file and SIGINFO_* environment values under the
// command-line flags.
func initConfig(cmd *cobra.Command, v *viper.Viper, configFile string) error {
	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", configFile, err)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var bindErr error
	cmd.Flags().VisitAll(func(fl *pflag.Flag) {
		if err := v.BindPFlag(fl.Name, fl); err != nil && bindErr == nil {
			bindErr = err
		}
	})
	return bindErr
}

func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		Signal:    strings.ToLower(strings.TrimSpace(v.GetString("signal"))),
		Frequency: v.GetFloat64("frequency"),
		Amplitude: v.GetFloat64("amplitude"),
		Phase:     v.GetFloat64("phase"),
		Rate:      v.GetFloat64("rate"),
		Duration:  v.GetFloat64("duration"),
		Noise:     v.GetFloat64("noise"),
		Seed:      v.GetInt64("seed"),
		Backend:   strings.ToLower(v.GetString("backend")),
		Strict:    v.GetBool("strict"),
		Workers:   v.GetInt("workers"),
		Peaks:     v.GetInt("peaks"),
		Output:    strings.ToLower(v.GetString("output")),
	}
	switch cfg.Output {
	case "table", "yaml":
	default:
		return cfg, fmt.Errorf("unknown output format %q (want table or yaml)", cfg.Output)
	}
	if cfg.Peaks < 0 {
		return cfg, fmt.Errorf("peaks must be >= 0: %d", cfg.Peaks)
	}
	return cfg, nil
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List signal kinds and transform backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, "signals:"); err != nil {
				return err
			}
			for _, name := range signalNames() {
				if _, err := fmt.Fprintf(out, "  %s\n", name); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(out, "backends:"); err != nil {
				return err
			}
			for _, name := range backendNames() {
				if _, err := fmt.Fprintf(out, "  %s\n", name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
