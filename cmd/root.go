package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dtroode/emr-server/internal/app"
	"github.com/dtroode/emr-server/internal/config"
	"github.com/dtroode/emr-server/internal/logger"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

var errNotSignedIn = errors.New("not signed in, run `emr login` first")

// cli carries global flags and the configuration loaded from them.
type cli struct {
	envFile string
	output  string
	verbose bool

	cfg    *config.Config
	logger *logger.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	rootCmd := &cobra.Command{
		Use:          "emr",
		Short:        "Electronic medical records server and CLI",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "dotenv file with configuration overrides")
	rootCmd.PersistentFlags().StringVarP(&c.output, "output", "o", outputJSON, "output format: json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log service activity to stderr")

	rootCmd.AddCommand(
		newServeCmd(c),
		newVersionCmd(),
		newRegisterCmd(c),
		newLoginCmd(c),
		newLogoutCmd(c),
		newWhoamiCmd(c),
		newPatientsCmd(c),
		newAppointmentsCmd(c),
		newMessagesCmd(c),
		newSettingsCmd(c),
		newDashboardCmd(c),
	)

	return rootCmd
}

func (c *cli) load(cmd *cobra.Command) error {
	if c.output != outputJSON && c.output != outputYAML {
		return fmt.Errorf("unknown output format %q", c.output)
	}

	cfg, err := config.NewConfig(c.envFile)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := cfg.LogLevel
	if !c.verbose && level < int(slog.LevelWarn) {
		level = int(slog.LevelWarn)
	}
	c.logger = logger.NewWithWriter(cmd.ErrOrStderr(), level)
	return nil
}

// open loads the EMR over the configured medium. The returned func releases
// the medium.
func (c *cli) open(ctx context.Context) (*app.App, func(), error) {
	medium, closeMedium, err := app.OpenMedium(ctx, c.cfg)
	if err != nil {
		return nil, nil, err
	}
	release := func() {
		if err := closeMedium(); err != nil {
			c.logger.Error("failed to close medium", "error", err)
		}
	}

	a, err := app.New(ctx, medium, c.cfg, c.logger)
	if err != nil {
		release()
		return nil, nil, err
	}
	return a, release, nil
}

// clinic is open for commands that need a signed-in user.
func (c *cli) clinic(ctx context.Context) (*app.App, func(), error) {
	a, release, err := c.open(ctx)
	if err != nil {
		return nil, nil, err
	}
	if _, ok := a.Auth.CurrentUser(); !ok {
		release()
		return nil, nil, errNotSignedIn
	}
	return a, release, nil
}

func (c *cli) print(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	if c.output == outputJSON {
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	// round trip through JSON keeps the json field names
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, _ []string) {
			logAppVersion(cmd.OutOrStdout())
		},
	}
}

func logAppVersion(w io.Writer) {
	tmpl := `Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Fprintf(w, tmpl, buildVersion, buildDate, buildCommit)
}
