package handler

import (
	"context"

	"github.com/dtroode/emr-server/internal/model"
)

func (h *EMR) ListPatients(ctx context.Context, _ Empty) (List[model.Patient], error) {
	return newList(h.services.Patients.List(ctx)), nil
}

func (h *EMR) GetPatient(ctx context.Context, req IDRequest) (model.Patient, error) {
	p, err := h.services.Patients.Get(ctx, req.ID)
	if err != nil {
		return model.Patient{}, handleError(err)
	}
	return p, nil
}

func (h *EMR) AddPatient(ctx context.Context, req model.Patient) (model.Patient, error) {
	p, err := h.services.Patients.Add(ctx, req)
	if err != nil {
		h.logger.Info("Patient handler: add failed",
			"user_id", h.userID(ctx),
			"error", err.Error())
		return model.Patient{}, handleError(err)
	}

	h.logger.Debug("Patient handler: patient added",
		"user_id", h.userID(ctx),
		"patient_id", p.ID)
	return p, nil
}

func (h *EMR) UpdatePatient(ctx context.Context, req UpdateRequest[model.PatientPatch]) (model.Patient, error) {
	p, err := h.services.Patients.Update(ctx, req.ID, req.Patch)
	if err != nil {
		return model.Patient{}, handleError(err)
	}
	return p, nil
}

func (h *EMR) DeletePatient(ctx context.Context, req IDRequest) (Empty, error) {
	if err := h.services.Patients.Delete(ctx, req.ID); err != nil {
		return Empty{}, handleError(err)
	}

	h.logger.Debug("Patient handler: patient deleted",
		"user_id", h.userID(ctx),
		"patient_id", req.ID)
	return Empty{}, nil
}
