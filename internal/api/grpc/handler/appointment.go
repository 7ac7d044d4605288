package handler

import (
	"context"

	"github.com/dtroode/emr-server/internal/model"
)

func (h *EMR) ListAppointments(ctx context.Context, _ Empty) (List[model.Appointment], error) {
	return newList(h.services.Appointments.List(ctx)), nil
}

func (h *EMR) ScheduleAppointment(ctx context.Context, req model.ScheduleAppointmentParams) (model.Appointment, error) {
	a, err := h.services.Appointments.Schedule(ctx, req)
	if err != nil {
		h.logger.Info("Appointment handler: schedule failed",
			"user_id", h.userID(ctx),
			"patient_id", req.PatientID,
			"error", err.Error())
		return model.Appointment{}, handleError(err)
	}
	return a, nil
}

func (h *EMR) UpdateAppointment(ctx context.Context, req UpdateRequest[model.AppointmentPatch]) (model.Appointment, error) {
	a, err := h.services.Appointments.Update(ctx, req.ID, req.Patch)
	if err != nil {
		return model.Appointment{}, handleError(err)
	}
	return a, nil
}

func (h *EMR) CancelAppointment(ctx context.Context, req IDRequest) (model.Appointment, error) {
	a, err := h.services.Appointments.Cancel(ctx, req.ID)
	if err != nil {
		return model.Appointment{}, handleError(err)
	}
	return a, nil
}

func (h *EMR) DeleteAppointment(ctx context.Context, req IDRequest) (Empty, error) {
	if err := h.services.Appointments.Delete(ctx, req.ID); err != nil {
		return Empty{}, handleError(err)
	}
	return Empty{}, nil
}
