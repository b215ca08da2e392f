package models

import "time"

// RequestStatus is the lifecycle state of a help request
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "PENDING"
	RequestStatusAccepted  RequestStatus = "ACCEPTED"
	RequestStatusCompleted RequestStatus = "COMPLETED"
)

// Priority is the urgency of a help request
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// ValidPriority reports whether p is one of the known priority levels.
func ValidPriority(p Priority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// HelpRequest is an emergency roadside help request.
// AssignedShopID stays nil until a shop accepts the request.
type HelpRequest struct {
	ID             int           `json:"id" db:"id"`
	Title          string        `json:"title" db:"title"`
	Description    string        `json:"description" db:"description"`
	Latitude       float64       `json:"latitude" db:"latitude"`
	Longitude      float64       `json:"longitude" db:"longitude"`
	Status         RequestStatus `json:"status" db:"status"`
	Priority       Priority      `json:"priority" db:"priority"`
	CustomerID     int           `json:"customer_id" db:"customer_id"`
	AssignedShopID *int          `json:"assigned_shop_id" db:"assigned_shop_id"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
	Version        int64         `json:"version" db:"version"`
}

// Coordinate returns the request location.
func (r *HelpRequest) Coordinate() Location {
	return Location{Latitude: r.Latitude, Longitude: r.Longitude}
}

// CreateHelpRequestInput is the payload for creating a help request.
// Coordinates are pointers so that a missing component can be rejected
// instead of silently defaulting to zero.
type CreateHelpRequestInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Priority    Priority `json:"priority"`
}

// EmergencyNotification is the payload published per matched shop when a
// new help request is dispatched.
type EmergencyNotification struct {
	ID         string    `json:"id"`
	RequestID  int       `json:"request_id"`
	ShopID     int       `json:"shop_id"`
	Title      string    `json:"title"`
	Priority   Priority  `json:"priority"`
	Location   Location  `json:"location"`
	DistanceKm float64   `json:"distance_km"`
	CreatedAt  time.Time `json:"created_at"`
}
