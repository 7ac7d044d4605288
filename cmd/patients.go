package main

import (
	"github.com/spf13/cobra"

	"github.com/dtroode/emr-server/internal/model"
)

// changed returns a pointer to v when the flag was set on the command line.
func changed[T any](cmd *cobra.Command, flag string, v T) *T {
	if !cmd.Flags().Changed(flag) {
		return nil
	}
	return &v
}

type patientFlags struct {
	name, email, phone, dob, gender, address, history string
	fields                                            map[string]string
}

func (f *patientFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "full name")
	cmd.Flags().StringVar(&f.email, "email", "", "email address")
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&f.dob, "dob", "", "date of birth, YYYY-MM-DD")
	cmd.Flags().StringVar(&f.gender, "gender", "", "gender")
	cmd.Flags().StringVar(&f.address, "address", "", "postal address")
	cmd.Flags().StringVar(&f.history, "history", "", "medical history")
	cmd.Flags().StringToStringVar(&f.fields, "field", nil, "extra field as key=value, repeatable")
}

func (f *patientFlags) patch(cmd *cobra.Command) model.PatientPatch {
	return model.PatientPatch{
		Name:           changed(cmd, "name", f.name),
		Email:          changed(cmd, "email", f.email),
		Phone:          changed(cmd, "phone", f.phone),
		DateOfBirth:    changed(cmd, "dob", f.dob),
		Gender:         changed(cmd, "gender", f.gender),
		Address:        changed(cmd, "address", f.address),
		MedicalHistory: changed(cmd, "history", f.history),
		Fields:         f.fields,
	}
}

func newPatientsCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "patients",
		Aliases: []string{"patient"},
		Short:   "Manage patient records",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List patients",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, release, err := c.clinic(cmd.Context())
				if err != nil {
					return err
				}
				defer release()

				return c.print(cmd.OutOrStdout(), a.Patients.List(cmd.Context()))
			},
		},
		&cobra.Command{
			Use:   "get <id>",
			Short: "Show a patient",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, release, err := c.clinic(cmd.Context())
				if err != nil {
					return err
				}
				defer release()

				p, err := a.Patients.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return c.print(cmd.OutOrStdout(), p)
			},
		},
		newPatientAddCmd(c),
		newPatientUpdateCmd(c),
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a patient",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a, release, err := c.clinic(cmd.Context())
				if err != nil {
					return err
				}
				defer release()

				return a.Patients.Delete(cmd.Context(), args[0])
			},
		},
	)

	return cmd
}

func newPatientAddCmd(c *cli) *cobra.Command {
	var f patientFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a patient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, release, err := c.clinic(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			p, err := a.Patients.Add(cmd.Context(), model.Patient{
				Name:           f.name,
				Email:          f.email,
				Phone:          f.phone,
				DateOfBirth:    f.dob,
				Gender:         f.gender,
				Address:        f.address,
				MedicalHistory: f.history,
				Fields:         f.fields,
			})
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), p)
		},
	}
	f.bind(cmd)
	return cmd
}

func newPatientUpdateCmd(c *cli) *cobra.Command {
	var f patientFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of a patient",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, release, err := c.clinic(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			p, err := a.Patients.Update(cmd.Context(), args[0], f.patch(cmd))
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), p)
		},
	}
	f.bind(cmd)
	return cmd
}
