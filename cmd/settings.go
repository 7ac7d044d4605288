package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dtroode/emr-server/internal/app"
)

const (
	sectionPractice     = "practice"
	sectionNotification = "notification"
	sectionSecurity     = "security"
)

func newSettingsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change practice settings",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "get",
			Short: "Show all settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, release, err := c.clinic(cmd.Context())
				if err != nil {
					return err
				}
				defer release()

				all, err := a.Settings.All(cmd.Context())
				if err != nil {
					return err
				}
				return c.print(cmd.OutOrStdout(), all)
			},
		},
		newSettingsSetCmd(c),
	)

	return cmd
}

func newSettingsSetCmd(c *cli) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:       "set <practice|notification|security>",
		Short:     "Merge values from a YAML or JSON file into a settings section",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{sectionPractice, sectionNotification, sectionSecurity},
		RunE: func(cmd *cobra.Command, args []string) error {
			patch, err := readPatch(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}

			a, release, err := c.clinic(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			v, err := saveSection(cmd.Context(), a, args[0], patch)
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), v)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "file with the new values, - for stdin")

	return cmd
}

// readPatch decodes a YAML document (JSON is valid YAML) into its JSON form.
func readPatch(stdin io.Reader, file string) ([]byte, error) {
	var data []byte
	var err error
	if file == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}

	patch, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return patch, nil
}

// merge decodes patch over the stored value so absent keys keep their value.
func merge[T any](ctx context.Context, load func(context.Context) (T, error), save func(context.Context, T) error, patch []byte) (T, error) {
	v, err := load(ctx)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(patch, &v); err != nil {
		return v, fmt.Errorf("failed to apply settings: %w", err)
	}
	return v, save(ctx, v)
}

func saveSection(ctx context.Context, a *app.App, section string, patch []byte) (any, error) {
	s := a.Settings
	switch section {
	case sectionPractice:
		return merge(ctx, s.Practice, s.SavePractice, patch)
	case sectionNotification:
		return merge(ctx, s.Notification, s.SaveNotification, patch)
	case sectionSecurity:
		return merge(ctx, s.Security, s.SaveSecurity, patch)
	}
	return nil, fmt.Errorf("unknown settings section %q", section)
}

func newDashboardCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Summarise patients, appointments and messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, release, err := c.clinic(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			return c.print(cmd.OutOrStdout(), a.Dashboard.Get(cmd.Context()))
		},
	}
}
