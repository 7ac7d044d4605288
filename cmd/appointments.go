package main

import (
	"github.com/spf13/cobra"

	"github.com/dtroode/emr-server/internal/model"
)

func newAppointmentsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "appointments",
		Aliases: []string{"appointment", "appt"},
		Short:   "Manage appointments",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List appointments",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, release, err := c.clinic(cmd.Context())
				if err != nil {
					return err
				}
				defer release()

				return c.print(cmd.OutOrStdout(), a.Appointments.List(cmd.Context()))
			},
		},
		newAppointmentScheduleCmd(c),
		newAppointmentUpdateCmd(c),
		&cobra.Command{
			Use:   "cancel <id>",
			Short: "Cancel an appointment",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, release, err := c.clinic(cmd.Context())
				if err != nil {
					return err
				}
				defer release()

				appt, err := a.Appointments.Cancel(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.print(cmd.OutOrStdout(), appt)
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete an appointment",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, release, err := c.clinic(cmd.Context())
				if err != nil {
					return err
				}
				defer release()

				return a.Appointments.Delete(cmd.Context(), args[0])
			},
		},
	)

	return cmd
}

func newAppointmentScheduleCmd(c *cli) *cobra.Command {
	var params model.ScheduleAppointmentParams
	var typ string

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule an appointment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, release, err := c.clinic(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			params.Type = model.AppointmentType(typ)
			appt, err := a.Appointments.Schedule(cmd.Context(), params)
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), appt)
		},
	}

	cmd.Flags().StringVar(&params.PatientID, "patient", "", "patient id")
	cmd.Flags().StringVar(&params.Date, "date", "", "date, YYYY-MM-DD")
	cmd.Flags().StringVar(&params.Time, "time", "", "time, HH:MM")
	cmd.Flags().StringVar(&typ, "type", "", "checkup, followup, emergency or consultation")
	cmd.Flags().StringVar(&params.Notes, "notes", "", "free text notes")
	_ = cmd.MarkFlagRequired("patient")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("time")

	return cmd
}

func newAppointmentUpdateCmd(c *cli) *cobra.Command {
	var patientID, date, tm, typ, st, notes string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, release, err := c.clinic(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			appt, err := a.Appointments.Update(cmd.Context(), args[0], model.AppointmentPatch{
				PatientID: changed(cmd, "patient", patientID),
				Date:      changed(cmd, "date", date),
				Time:      changed(cmd, "time", tm),
				Type:      changed(cmd, "type", model.AppointmentType(typ)),
				Status:    changed(cmd, "status", model.AppointmentStatus(st)),
				Notes:     changed(cmd, "notes", notes),
			})
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), appt)
		},
	}

	cmd.Flags().StringVar(&patientID, "patient", "", "patient id")
	cmd.Flags().StringVar(&date, "date", "", "date, YYYY-MM-DD")
	cmd.Flags().StringVar(&tm, "time", "", "time, HH:MM")
	cmd.Flags().StringVar(&typ, "type", "", "checkup, followup, emergency or consultation")
	cmd.Flags().StringVar(&st, "status", "", "scheduled, completed or cancelled")
	cmd.Flags().StringVar(&notes, "notes", "", "free text notes")

	return cmd
}
