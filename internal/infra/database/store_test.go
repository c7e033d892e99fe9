package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/purva-galani/Everest-main-live-sub001/internal/entity"
)

func TestNormalizeDatesCoercesDateFields(t *testing.T) {
	fields := map[string]any{
		"date":    "2026-08-30",
		"endDate": "2026-09-15T10:00:00Z",
	}
	normalizeDates(fields)

	d, ok := fields["date"].(time.Time)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC), d)

	e, ok := fields["endDate"].(time.Time)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC), e)
}

func TestNormalizeDatesLeavesFreeTextAlone(t *testing.T) {
	// A date-shaped value in a text field stays a string.
	fields := map[string]any{
		"notes":       "2026-01-01",
		"description": "2026-09-15T10:00:00Z",
		"companyName": "Acme",
	}
	normalizeDates(fields)

	assert.Equal(t, "2026-01-01", fields["notes"])
	assert.Equal(t, "2026-09-15T10:00:00Z", fields["description"])
	assert.Equal(t, "Acme", fields["companyName"])
}

func TestNormalizeDatesSkipsNonStrings(t *testing.T) {
	when := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	fields := map[string]any{"date": when, "dueDate": 12345}
	normalizeDates(fields)

	assert.Equal(t, when, fields["date"])
	assert.Equal(t, 12345, fields["dueDate"])
}

func TestObjectID(t *testing.T) {
	id := bson.NewObjectID()
	parsed, err := objectID(id.Hex())
	assert.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = objectID("not-a-hex-id")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}
