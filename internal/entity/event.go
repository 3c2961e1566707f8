package entity

type Event struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Date             string    `json:"date"`
	Location         string    `json:"location"`
	Artist           string    `json:"artist"`
	Price            float64   `json:"price"`
	TotalTickets     int       `json:"totalTickets"`
	AvailableTickets int       `json:"availableTickets"`
	ImageURL         string    `json:"imageUrl,omitempty"`
	CategoryID       string    `json:"categoryId,omitempty"`
	Category         *Category `json:"category,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EventInput is the payload for creating or patching an event.
type EventInput struct {
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Date         string  `json:"date"`
	Location     string  `json:"location"`
	Artist       string  `json:"artist"`
	Price        float64 `json:"price"`
	TotalTickets int     `json:"totalTickets"`
	ImageURL     string  `json:"imageUrl"`
	CategoryID   string  `json:"categoryId"`
}
