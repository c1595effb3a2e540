// Package uuid adapts the google/uuid generator to the chartist.IDService
// interface.
package uuid

import (
	"github.com/google/uuid"
	"github.com/lukasz-zimnoch/chartist"
)

type IDService struct{}

func (ids *IDService) NewID() chartist.ID {
	return uuid.New()
}

func (ids *IDService) NewIDFromString(id string) (chartist.ID, error) {
	return uuid.Parse(id)
}
