package model

// Dashboard summarises the practice for the signed-in user.
type Dashboard struct {
	User                  Session       `json:"user"`
	Patients              int           `json:"patients"`
	ScheduledAppointments int           `json:"scheduledAppointments"`
	UnreadMessages        int           `json:"unreadMessages"`
	Upcoming              []Appointment `json:"upcoming"`
}
