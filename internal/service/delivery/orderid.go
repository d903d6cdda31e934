package delivery

import "github.com/google/uuid"

const orderIDPrefix = "ORD-"

type uuidOrderIDs struct{}

// NewOrderIDGenerator returns a generator of ORD-<uuid> identifiers.
func NewOrderIDGenerator() OrderIDGenerator {
	return uuidOrderIDs{}
}

func (uuidOrderIDs) NewOrderID() string {
	return orderIDPrefix + uuid.NewString()
}
