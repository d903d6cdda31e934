package domain

import (
	"regexp"
	"strings"
)

type (
	// DeliveryStatus represents the lifecycle state of a delivery.
	DeliveryStatus string
	// JobType represents the kind of driver engagement a delivery is offered for.
	JobType string
)

// List of delivery statuses
const (
	StatusOpen       DeliveryStatus = "OPEN"
	StatusAssigned   DeliveryStatus = "ASSIGNED"
	StatusInProgress DeliveryStatus = "IN_PROGRESS"
	StatusDelivered  DeliveryStatus = "DELIVERED"
	StatusCancelled  DeliveryStatus = "CANCELLED"
)

// List of job types
const (
	JobTypeGig      JobType = "GIG"
	JobTypeFullTime JobType = "FULLTIME"
)

// AllStatuses lists every delivery status in lifecycle order.
var AllStatuses = [...]DeliveryStatus{
	StatusOpen, StatusAssigned, StatusInProgress, StatusDelivered, StatusCancelled,
}

var allowedJobTypes = [...]JobType{JobTypeGig, JobTypeFullTime}

// Valid checks if the DeliveryStatus is valid
func (s DeliveryStatus) Valid() bool {
	for _, v := range AllStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Active reports whether a driver is currently working on the delivery.
func (s DeliveryStatus) Active() bool {
	return s == StatusAssigned || s == StatusInProgress
}

// Valid checks if the JobType is valid
func (t JobType) Valid() bool {
	for _, v := range allowedJobTypes {
		if t == v {
			return true
		}
	}
	return false
}

// ParseJobType normalizes raw input; an empty string yields def.
func ParseJobType(raw string, def JobType) (JobType, bool) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return def, true
	}
	t := JobType(raw)
	return t, t.Valid()
}

// rePhone is a loose international phone format.
var rePhone = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
