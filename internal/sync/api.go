package sync

// APIReservation models a single reservation from the upstream reservations
// service.
type APIReservation struct {
	ID            int64    `json:"id"`
	RoomName      string   `json:"room_name"`
	PeopleEmail   string   `json:"people_email"`
	Articles      []string `json:"articles"`
	DateHourStart string   `json:"date_hour_start"`
	DateHourEnd   string   `json:"date_hour_end"`
}
