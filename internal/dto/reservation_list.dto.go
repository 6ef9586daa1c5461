package dto

import "time"

type ReservationListDTO struct {
	ID          uint      `json:"id"`
	Date        time.Time `json:"date"`
	TimeSlot    string    `json:"time_slot"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
}
