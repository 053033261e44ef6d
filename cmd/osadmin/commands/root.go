// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/imamik/osadmin/cmd/osadmin/handlers"
	"github.com/imamik/osadmin/internal/logging"
)

// envBindings maps persistent flags to the environment variables that set
// them when the flag is not given.
var envBindings = map[string]string{
	"cloud":        "OS_CLOUD",
	"debug":        "OSADMIN_DEBUG",
	"log-format":   "OSADMIN_LOG_FORMAT",
	"metrics-file": "OSADMIN_METRICS_FILE",
	"timeout":      "OSADMIN_TIMEOUT",
}

// Root returns the root command for the osadmin CLI.
func Root() *cobra.Command {
	cmd, _ := newRoot()
	return cmd
}

// newRoot builds the command tree and returns the globals its subcommands read.
func newRoot() (*cobra.Command, *handlers.Globals) {
	v := viper.New()
	g := &handlers.Globals{}

	cmd := &cobra.Command{
		Use:           "osadmin",
		Short:         "Administer projects, users and networks on an OpenStack cloud",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			loadGlobals(v, g)
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("cloud", "", "Cloud profile from clouds.yaml (env OS_CLOUD)")
	pf.Bool("debug", false, "Enable debug logging")
	pf.String("log-format", logging.FormatConsole, "Log format: console or json")
	pf.String("metrics-file", "", "Write Prometheus metrics to this file on exit")
	pf.Duration("timeout", 0, "Abort the command after this duration (0 means no limit)")
	bindFlags(v, pf)

	// Administrative commands
	cmd.AddCommand(Project(g))
	cmd.AddCommand(User(g))
	cmd.AddCommand(Pair(g))
	cmd.AddCommand(Network(g))
	cmd.AddCommand(SSHRule(g))

	// Utility commands
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd, g
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		if env, ok := envBindings[f.Name]; ok {
			_ = v.BindEnv(f.Name, env)
		}
	})
}

func loadGlobals(v *viper.Viper, g *handlers.Globals) {
	g.Cloud = v.GetString("cloud")
	g.Debug = v.GetBool("debug")
	g.LogFormat = v.GetString("log-format")
	g.MetricsFile = v.GetString("metrics-file")
	g.Timeout = v.GetDuration("timeout")
}
