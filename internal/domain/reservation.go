package domain

import "time"

// Reservation is a booking of a room by a user. Username is the owner and is
// set once at creation; no statement ever updates it. There is deliberately
// no foreign key to users: a reservation may reference a username that no
// longer (or never) exists.
//
// Date, StartTime and EndTime are stored as plain strings exactly as the
// client sent them. No timezone or range validation is applied.
type Reservation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomName  string    `gorm:"column:room_name;type:varchar(191);not null" json:"roomName"`
	Date      string    `gorm:"column:date;type:varchar(32);not null;index:idx_date_start,priority:1" json:"date"`
	StartTime string    `gorm:"column:start_time;type:varchar(32);not null;index:idx_date_start,priority:2" json:"startTime"`
	EndTime   string    `gorm:"column:end_time;type:varchar(32);not null" json:"endTime"`
	Purpose   string    `gorm:"column:purpose;type:text;not null" json:"purpose"`
	Username  string    `gorm:"column:username;type:varchar(191) COLLATE utf8mb4_bin;not null;index" json:"username"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// Room is a bookable space shown by the frontend. Rooms are a static list,
// not a persisted entity; Reservation.RoomName is free text, not a key into
// this list.
type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
	Capacity string `json:"capacity"`
	Location string `json:"location"`
}
