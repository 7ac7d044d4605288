package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/dtroode/emr-server/internal/model"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s %s", model.ErrInvalidArgument, field, reason)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return invalid(field, "is required")
	}
	return nil
}

func validDate(value string) error {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return invalid("date", "must be YYYY-MM-DD")
	}
	return nil
}

func validTime(value string) error {
	if _, err := time.Parse(timeLayout, value); err != nil {
		return invalid("time", "must be HH:MM")
	}
	return nil
}
