package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sdboyer/calljen/callgen"
)

// log is replaced in PersistentPreRunE once flags are parsed.
var log = zap.NewNop().Sugar()

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "calljen",
		Short: "Generate families of generic call wrappers",
		Long: `calljen emits one generic wrapper for every combination of argument
count and return count in a fixed profile.

Each profile subcommand prints its wrappers to stdout, ready to be redirected
into a source file. The generate subcommand writes the targets declared in
calljen.yaml instead, and can verify that checked-in files are up to date.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log = newLogger(verbose).Sugar()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = log.Sync()
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")

	for _, p := range callgen.Profiles() {
		root.AddCommand(newProfileCmd(p))
	}
	root.AddCommand(newGenerateCmd())
	return root
}

// newLogger logs to stderr so that stdout only ever carries generated code.
func newLogger(verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	))
}
