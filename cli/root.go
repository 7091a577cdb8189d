// Package cli implements the goforms command line tool.
package cli

import (
	"io"
	"os"
	"strings"

	"github.com/heathj/goforms/html"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "GOFORMS"

// app carries what the commands share: the file system fixtures are read
// from, the merged flag/env/file configuration and the logger.
type app struct {
	fs     afero.Fs
	v      *viper.Viper
	logger *logrus.Logger
}

// NewRootCommand returns the goforms command reading files from fs.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, v: viper.New(), logger: logrus.New()}

	root := &cobra.Command{
		Use:          "goforms",
		Short:        "Evaluate HTML input controls described by form fixtures",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.String("log-level", "warning", "log level: trace, debug, info, warning or error")
	flags.String("log-format", "text", "log format: text or json")

	root.AddCommand(newCheckCommand(a), newTypesCommand())
	return root
}

// Execute runs goforms against the OS file system.
func Execute() {
	if err := NewRootCommand(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}

// init merges flags, GOFORMS_* environment variables and the optional config
// file, in that order of precedence, then configures logging.
func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "bind flags")
	}

	if path := a.v.GetString("config"); path != "" {
		a.v.SetFs(a.fs)
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "read config %s", path)
		}
	}
	return a.configureLogging(cmd.ErrOrStderr())
}

func (a *app) configureLogging(out io.Writer) error {
	level, err := logrus.ParseLevel(a.v.GetString("log-level"))
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	a.logger.SetOutput(out)
	a.logger.SetLevel(level)

	switch format := a.v.GetString("log-format"); format {
	case "text":
		a.logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	case "json":
		a.logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("unknown log format %q", format)
	}
	html.SetLogger(a.logger)
	return nil
}

func newTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the recognized input type keywords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range html.InputTypeNames() {
				if _, err := io.WriteString(out, name+"\n"); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
