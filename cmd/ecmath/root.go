package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/smallyu/go-weierstrass/pkg/ecc"
)

// envPrefix is prepended to configuration keys read from the environment,
// e.g. ECMATH_CURVE.
const envPrefix = "ecmath"

// app carries the state shared by all subcommands.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	a.v.SetEnvPrefix(envPrefix)
	a.v.AutomaticEnv()
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	root := &cobra.Command{
		Use:          "ecmath",
		Short:        "Short-Weierstrass curve arithmetic",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.String("curve", "secp256k1", "curve name, see 'ecmath curves'")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	a.v.BindPFlag("curve", flags.Lookup("curve"))
	a.v.BindPFlag("log_level", flags.Lookup("log-level"))

	root.AddCommand(a.curvesCmd())
	root.AddCommand(a.mulCmd())
	root.AddCommand(a.addCmd())
	root.AddCommand(a.invCmd())
	return root
}

func (a *app) initLogger() error {
	level, err := zap.ParseAtomicLevel(a.v.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{"stderr"}
	cfg.Encoding = "console"

	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	a.logger = logger.Named("ecmath")
	return nil
}

func (a *app) group() (*ecc.Group, error) {
	return ecc.New(&ecc.Parameters{
		Curve:  a.v.GetString("curve"),
		Logger: a.logger,
	})
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
