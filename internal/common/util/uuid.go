package util

import (
	"github.com/google/uuid"
)

// NewJobId returns a fresh, globally unique job id string.
func NewJobId() string {
	return uuid.New().String()
}
