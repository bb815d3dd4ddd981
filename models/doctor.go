package models

// WorkingHours describes a doctor's bookable window. Hours are on the local
// clock; SlotDuration is in minutes. Slot starts are offered strictly before
// EndHour.
type WorkingHours struct {
	StartHour    int `bson:"startHour" json:"startHour"`
	EndHour      int `bson:"endHour" json:"endHour"`
	SlotDuration int `bson:"slotDuration" json:"slotDuration"`
}

// Default working hours, matching the clinic-wide schedule: 10:00-21:00 in
// 30-minute increments.
const (
	DefaultStartHour    = 10
	DefaultEndHour      = 21
	DefaultSlotDuration = 30
)

// DefaultWorkingHours returns the clinic-wide default schedule.
func DefaultWorkingHours() WorkingHours {
	return WorkingHours{
		StartHour:    DefaultStartHour,
		EndHour:      DefaultEndHour,
		SlotDuration: DefaultSlotDuration,
	}
}

// Valid reports whether the window is usable: start strictly before end and a
// positive slot duration.
func (wh WorkingHours) Valid() bool {
	return wh.StartHour < wh.EndHour && wh.SlotDuration > 0
}

// Doctor is a practitioner record. The directory fields are owned by the
// doctor-profile service; this server only reads them. SlotsBooked is the
// availability index: date key ("d-M-yyyy") to the list of reserved time
// labels. It is mutated exclusively through the scheduler repository's
// reserve/release operations.
type Doctor struct {
	ID           string              `bson:"id" json:"id"`
	Name         string              `bson:"name" json:"name"`
	Speciality   string              `bson:"speciality" json:"speciality"`
	Degree       string              `bson:"degree,omitempty" json:"degree,omitempty"`
	Experience   string              `bson:"experience,omitempty" json:"experience,omitempty"`
	About        string              `bson:"about,omitempty" json:"about,omitempty"`
	Fees         float64             `bson:"fees" json:"fees"`
	Available    bool                `bson:"available" json:"available"`
	WorkingHours WorkingHours        `bson:"workingHours,omitempty" json:"workingHours,omitzero"`
	SlotsBooked  map[string][]string `bson:"slotsBooked" json:"slotsBooked"`
}

// DoctorDTO is the public directory view, without the availability index.
type DoctorDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Speciality string  `json:"speciality"`
	Degree     string  `json:"degree,omitempty"`
	Experience string  `json:"experience,omitempty"`
	About      string  `json:"about,omitempty"`
	Fees       float64 `json:"fees"`
	Available  bool    `json:"available"`
}

// DTO strips the availability index from a doctor record.
func (d Doctor) DTO() DoctorDTO {
	return DoctorDTO{
		ID:         d.ID,
		Name:       d.Name,
		Speciality: d.Speciality,
		Degree:     d.Degree,
		Experience: d.Experience,
		About:      d.About,
		Fees:       d.Fees,
		Available:  d.Available,
	}
}
