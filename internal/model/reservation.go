package model

import "time"

// ReservationHistory is the local copy of a reservation record fetched from
// the upstream reservations service.
//
// Articles is stored as raw text. Depending on which ingestion path wrote the
// row it is either a comma-separated list ("Proyector, Pizarra") or a
// string-encoded list literal ("['Proyector', 'Pizarra']"); readers must
// tolerate both.
type ReservationHistory struct {
	ID            int64     `gorm:"primaryKey"`
	ReservationID int64     `gorm:"uniqueIndex;not null"`
	RoomName      string    `gorm:"size:100;not null;index"`
	PeopleEmail   string    `gorm:"size:150"`
	Articles      string    `gorm:"type:text"`
	StartTime     time.Time `gorm:"not null;index"`
	EndTime       time.Time `gorm:"not null"`
	FetchedAt     time.Time `gorm:"not null"`
}

// TableName keeps the table name aligned with the upstream schema.
func (ReservationHistory) TableName() string { return "reservation_history" }
