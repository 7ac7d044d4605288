package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dtroode/emr-server/internal/model"
)

type harness struct {
	t   *testing.T
	dir string
}

func newHarness(t *testing.T) *harness {
	dir := t.TempDir()
	t.Setenv("MEDIUM_DRIVER", "file")
	t.Setenv("MEDIUM_DIR", dir)
	t.Setenv("KDF_MEM", "64")
	t.Setenv("KDF_PAR", "1")
	return &harness{t: t, dir: dir}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(h.dir, "missing.env")}, args...))

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (h *harness) mustRun(v any, args ...string) {
	h.t.Helper()

	out, err := h.run(args...)
	require.NoError(h.t, err)
	if v != nil {
		require.NoError(h.t, json.Unmarshal([]byte(out), v))
	}
}

func TestCLI_ClinicRequiresSession(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("patients", "list")
	assert.ErrorIs(t, err, errNotSignedIn)

	_, err = h.run("whoami")
	assert.ErrorIs(t, err, errNotSignedIn)
}

func TestCLI_Flow(t *testing.T) {
	h := newHarness(t)

	var session model.Session
	h.mustRun(&session, "register", "--email", "doc@clinic.test", "--password", "s3cret")
	assert.Equal(t, "doc@clinic.test", session.Email)

	var me model.Session
	h.mustRun(&me, "whoami")
	assert.Equal(t, session.ID, me.ID)

	var ada model.Patient
	h.mustRun(&ada, "patients", "add", "--name", "Ada Lovelace", "--field", "allergy=penicillin")
	assert.Equal(t, "penicillin", ada.Fields["allergy"])

	var updated model.Patient
	h.mustRun(&updated, "patients", "update", ada.ID, "--phone", "555-0100")
	assert.Equal(t, "Ada Lovelace", updated.Name)
	assert.Equal(t, "555-0100", updated.Phone)

	var appt model.Appointment
	h.mustRun(&appt, "appointments", "schedule", "--patient", ada.ID, "--date", "2099-01-01", "--time", "09:00")
	assert.Equal(t, "Ada Lovelace", appt.PatientName)

	_, err := h.run("appointments", "schedule", "--patient", ada.ID, "--date", "01/01/2099", "--time", "09:00")
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	var msg model.Message
	h.mustRun(&msg, "messages", "send", "--to", ada.ID, "--subject", "Results", "--content", "All clear")
	assert.Equal(t, model.MessageSent, msg.Status)

	out, err := h.run("-o", "yaml", "dashboard")
	require.NoError(t, err)
	var dash map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &dash))
	assert.Equal(t, 1, dash["patients"])
	assert.Equal(t, 1, dash["scheduledAppointments"])

	h.mustRun(nil, "patients", "delete", ada.ID)
	var list []model.Patient
	h.mustRun(&list, "patients", "list")
	assert.Empty(t, list)

	h.mustRun(nil, "logout")
	_, err = h.run("patients", "list")
	assert.ErrorIs(t, err, errNotSignedIn)

	h.mustRun(&me, "login", "--email", "doc@clinic.test", "--password", "s3cret")
	assert.Equal(t, session.ID, me.ID)

	_, err = h.run("login", "--email", "doc@clinic.test", "--password", "nope")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestCLI_SettingsSet(t *testing.T) {
	h := newHarness(t)
	h.mustRun(nil, "register", "--email", "doc@clinic.test", "--password", "s3cret")

	file := filepath.Join(h.dir, "practice.yaml")
	require.NoError(t, os.WriteFile(file, []byte("practiceName: Sunrise Family Care\n"), 0o600))

	var practice model.PracticeSettings
	h.mustRun(&practice, "settings", "set", "practice", "-f", file)
	assert.Equal(t, "Sunrise Family Care", practice.PracticeName)
	assert.Equal(t, model.DefaultPracticeSettings().Address, practice.Address)

	var all model.Settings
	h.mustRun(&all, "settings", "get")
	assert.Equal(t, "Sunrise Family Care", all.Practice.PracticeName)
	assert.Equal(t, model.DefaultSecuritySettings(), all.Security)

	require.NoError(t, os.WriteFile(file, []byte("practiceName: \"\"\n"), 0o600))
	_, err := h.run("settings", "set", "practice", "-f", file)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)

	_, err = h.run("settings", "set", "billing", "-f", file)
	assert.Error(t, err)
}

func TestCLI_OutputFlag(t *testing.T) {
	h := newHarness(t)

	_, err := h.run("-o", "xml", "whoami")
	assert.ErrorContains(t, err, "unknown output format")

	out, err := h.run("version")
	require.NoError(t, err)
	assert.Contains(t, out, "Build version: N/A")
}
