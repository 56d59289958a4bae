package cmd

import (
	"errors"
	"fmt"
	"os"

	"kc/internal/color"
	"kc/internal/config"
	"kc/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	verbose    bool
	debug      bool
	configPath string

	// settings is filled from the configuration files before any subcommand
	// runs. Flags of the subcommands take precedence over it.
	settings config.KcConfig
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "kc",
	Short: "Combine a directory of kubeconfig files into one kubeconfig",
	Long: `kc merges every kubeconfig in a source directory (default ~/.kube/config.d)
into a single kubeconfig (default ~/.kube/config).

Clusters, users and contexts are renamed after the file they came from, so
files that all call their cluster "default" no longer collide. A file with a
single cluster is collapsed onto the file name: prod.yaml yields a cluster,
user and context all called "prod".

Settings are read from ~/.config/kc/config.yaml (or --config). If that file
cannot be parsed, every command except "version" fails until it is fixed.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. no clusters found, malformed files)
	SilenceUsage: true,
	// Errors are printed by Execute so that they can be styled.
	SilenceErrors:     true,
	PersistentPreRunE: initSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return &UsageError{Msg: "no command given, use 'kc run' to combine your kubeconfig files"}
	},
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "kc version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Error("Error:"), err)
		os.Exit(ExitCode(err))
	}
}

// UsageError reports an invocation kc does not understand.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// ExitCode maps an error returned by a command to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return 2
	}
	return 1
}

// initSettings loads the configuration and sets up logging and colors.
func initSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	settings = cfg

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if verbose && level > logging.LevelInfo {
		level = logging.LevelInfo
	}
	if debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())
	color.InitializeFromEnv()
	return nil
}

func init() {
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newContextsCmd())
	rootCmd.AddCommand(newUseContextCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print which files are processed")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $HOME/.config/kc/config.yaml)")
}
