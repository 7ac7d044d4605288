package service

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/dtroode/emr-server/internal/logger"
	"github.com/dtroode/emr-server/internal/model"
)

const upcomingLimit = 5

type Dashboard struct {
	patients     model.PatientStore
	appointments model.AppointmentStore
	messages     model.MessageStore
	sessions     model.SessionReader
	now          func() time.Time
	logger       *logger.Logger
}

func NewDashboard(
	patients model.PatientStore,
	appointments model.AppointmentStore,
	messages model.MessageStore,
	sessions model.SessionReader,
	logger *logger.Logger,
) *Dashboard {
	return &Dashboard{
		patients:     patients,
		appointments: appointments,
		messages:     messages,
		sessions:     sessions,
		now:          time.Now,
		logger:       logger,
	}
}

// Get counts scheduled appointments from today on, in local time.
func (s *Dashboard) Get(_ context.Context) model.Dashboard {
	today := s.now().Format(dateLayout)

	upcoming := slices.DeleteFunc(s.appointments.List(), func(a model.Appointment) bool {
		return a.Status != model.AppointmentScheduled || a.Date < today
	})
	slices.SortStableFunc(upcoming, func(a, b model.Appointment) int {
		return cmp.Or(cmp.Compare(a.Date, b.Date), cmp.Compare(a.Time, b.Time))
	})

	if upcoming == nil {
		upcoming = []model.Appointment{}
	}

	unread := 0
	for _, m := range s.messages.List() {
		if m.Status == model.MessageUnread {
			unread++
		}
	}

	user, _ := s.sessions.CurrentUser()

	return model.Dashboard{
		User:                  user,
		Patients:              len(s.patients.List()),
		ScheduledAppointments: len(upcoming),
		UnreadMessages:        unread,
		Upcoming:              upcoming[:min(len(upcoming), upcomingLimit)],
	}
}
