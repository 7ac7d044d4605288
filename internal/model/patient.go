package model

import (
	"context"
	"maps"
	"time"
)

// PatientStore defines persistence operations for patients.
type PatientStore interface {
	List() []Patient
	Get(id string) (Patient, error)
	Add(ctx context.Context, patient Patient) (Patient, error)
	Update(ctx context.Context, id string, patch PatientPatch) (Patient, error)
	Delete(ctx context.Context, id string) error
}

// Patient is a patient record.
type Patient struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Email          string            `json:"email,omitempty"`
	Phone          string            `json:"phone,omitempty"`
	DateOfBirth    string            `json:"dateOfBirth,omitempty"`
	Gender         string            `json:"gender,omitempty"`
	Address        string            `json:"address,omitempty"`
	MedicalHistory string            `json:"medicalHistory,omitempty"`
	Fields         map[string]string `json:"fields,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// EntityID implements Entity.
func (p Patient) EntityID() string { return p.ID }

// Clone returns a copy of p that does not share Fields.
func (p Patient) Clone() Patient {
	p.Fields = maps.Clone(p.Fields)
	return p
}

// PatientPatch is a shallow merge patch. Nil fields are left untouched,
// Fields entries are merged key by key.
type PatientPatch struct {
	Name           *string           `json:"name,omitempty"`
	Email          *string           `json:"email,omitempty"`
	Phone          *string           `json:"phone,omitempty"`
	DateOfBirth    *string           `json:"dateOfBirth,omitempty"`
	Gender         *string           `json:"gender,omitempty"`
	Address        *string           `json:"address,omitempty"`
	MedicalHistory *string           `json:"medicalHistory,omitempty"`
	Fields         map[string]string `json:"fields,omitempty"`
}

// Apply merges the patch into p.
func (pp PatientPatch) Apply(p *Patient) {
	setString(&p.Name, pp.Name)
	setString(&p.Email, pp.Email)
	setString(&p.Phone, pp.Phone)
	setString(&p.DateOfBirth, pp.DateOfBirth)
	setString(&p.Gender, pp.Gender)
	setString(&p.Address, pp.Address)
	setString(&p.MedicalHistory, pp.MedicalHistory)
	if len(pp.Fields) > 0 {
		merged := make(map[string]string, len(p.Fields)+len(pp.Fields))
		maps.Copy(merged, p.Fields)
		maps.Copy(merged, pp.Fields)
		p.Fields = merged
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
