package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ensigniasec/holdclock/internal/config"
	"github.com/ensigniasec/holdclock/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configFile string
	verbose    bool
	logFile    string
	force      bool

	rootCmd = &cobra.Command{
		Use:   "holdclock",
		Short: "A press-and-hold countdown timer dashboard for the terminal.",
		Long: `Holdclock is a single-screen terminal dashboard: a selectable item list, a press-and-hold timer and a legend panel.

Hold space to count down from the configured start value. Releasing the key switches the timer to counting up.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging()
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}

			opts := tui.Options{}
			if logFile != "" {
				f, err := openLogFile(logFile)
				if err != nil {
					return err
				}
				defer f.Close()
				opts.LogOutput = f
			}
			return tui.Run(cmd.Context(), cfg, opts)
		},
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr so stdout stays clean for config output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().
		StringVar(&configFile, "config", config.DefaultPath, "Path to the YAML configuration file")
	rootCmd.PersistentFlags().
		StringVar(&logFile, "log-file", "", "Optional: write logs to this file while the dashboard is running")

	configInitCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging()
		cfg, err := config.Load(configFile)
		if err != nil {
			logrus.Fatal(err)
		}
		out, err := cfg.Marshal()
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprint(os.Stdout, string(out))
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Long:  "Write the built-in default configuration to the config path. An existing file is kept unless --force is given.",
	Run: func(cmd *cobra.Command, args []string) {
		configureLogging()
		path, err := config.WriteDefault(configFile, force)
		if err != nil {
			logrus.Fatal(err)
		}
		fmt.Fprintf(os.Stdout, "Configuration written to %s\n", path)
	},
}

func main() {
	Execute()
}
