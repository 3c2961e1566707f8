package entity

type Booking struct {
	ID              string       `json:"id"`
	NumberOfTickets int          `json:"numberOfTickets"`
	TotalPrice      float64      `json:"totalPrice"`
	BookingDate     string       `json:"bookingDate"`
	Event           BookingEvent `json:"event"`
	User            *BookingUser `json:"user,omitempty"`
}

type BookingEvent struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Location string `json:"location"`
}

type BookingUser struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
