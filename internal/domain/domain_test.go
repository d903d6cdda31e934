package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryStatus_Valid(t *testing.T) {
	t.Parallel()

	for _, s := range AllStatuses {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, DeliveryStatus("").Valid())
	assert.False(t, DeliveryStatus("open").Valid())
	assert.False(t, DeliveryStatus("LOST").Valid())
}

func TestDeliveryStatus_Active(t *testing.T) {
	t.Parallel()

	active := map[DeliveryStatus]bool{
		StatusOpen:       false,
		StatusAssigned:   true,
		StatusInProgress: true,
		StatusDelivered:  false,
		StatusCancelled:  false,
	}
	for s, want := range active {
		assert.Equal(t, want, s.Active(), s)
	}
}

func TestParseJobType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw    string
		want   JobType
		wantOK bool
	}{
		{"", JobTypeGig, true},
		{"  ", JobTypeGig, true},
		{"gig", JobTypeGig, true},
		{" FullTime ", JobTypeFullTime, true},
		{"contract", JobType("CONTRACT"), false},
	}
	for _, tt := range tests {
		got, ok := ParseJobType(tt.raw, JobTypeGig)
		assert.Equal(t, tt.wantOK, ok, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidatePhone("+251911223344"))
	assert.True(t, ValidatePhone("0911223344"))
	assert.False(t, ValidatePhone("12345"))
	assert.False(t, ValidatePhone("+251-911-223344"))
	assert.False(t, ValidatePhone(""))
}

func TestDriverDocs_Complete(t *testing.T) {
	t.Parallel()

	full := DriverDocs{Selfie: "s3://a", IDFront: "s3://b", IDBack: "s3://c"}
	assert.True(t, full.Complete())

	missing := full
	missing.IDBack = ""
	assert.False(t, missing.Complete())
	assert.False(t, DriverDocs{}.Complete())
}
