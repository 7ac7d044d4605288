package main

import (
	"github.com/spf13/cobra"

	"github.com/dtroode/emr-server/internal/model"
)

func newMessagesCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "messages",
		Aliases: []string{"message", "msg"},
		Short:   "Manage messages to patients",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List messages",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, release, err := c.clinic(cmd.Context())
				if err != nil {
					return err
				}
				defer release()

				return c.print(cmd.OutOrStdout(), a.Messages.List(cmd.Context()))
			},
		},
		newMessageSendCmd(c),
		&cobra.Command{
			Use:   "read <id>",
			Short: "Mark a message as read",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, release, err := c.clinic(cmd.Context())
				if err != nil {
					return err
				}
				defer release()

				m, err := a.Messages.MarkRead(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.print(cmd.OutOrStdout(), m)
			},
		},
		newMessageUpdateCmd(c),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a message",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, release, err := c.clinic(cmd.Context())
				if err != nil {
					return err
				}
				defer release()

				return a.Messages.Delete(cmd.Context(), args[0])
			},
		},
	)

	return cmd
}

func newMessageSendCmd(c *cli) *cobra.Command {
	var params model.SendMessageParams
	var priority string

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Send a message to a patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, release, err := c.clinic(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			params.Priority = model.MessagePriority(priority)
			m, err := a.Messages.Send(cmd.Context(), params)
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), m)
		},
	}

	cmd.Flags().StringVar(&params.RecipientID, "to", "", "recipient patient id")
	cmd.Flags().StringVar(&params.Subject, "subject", "", "subject line")
	cmd.Flags().StringVar(&params.Content, "content", "", "message body")
	cmd.Flags().StringVar(&priority, "priority", "", "low, normal or urgent")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newMessageUpdateCmd(c *cli) *cobra.Command {
	var subject, content, priority, st string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, release, err := c.clinic(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			m, err := a.Messages.Update(cmd.Context(), args[0], model.MessagePatch{
				Subject:  changed(cmd, "subject", subject),
				Content:  changed(cmd, "content", content),
				Priority: changed(cmd, "priority", model.MessagePriority(priority)),
				Status:   changed(cmd, "status", model.MessageStatus(st)),
			})
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), m)
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "subject line")
	cmd.Flags().StringVar(&content, "content", "", "message body")
	cmd.Flags().StringVar(&priority, "priority", "", "low, normal or urgent")
	cmd.Flags().StringVar(&st, "status", "", "unread, read or sent")

	return cmd
}
