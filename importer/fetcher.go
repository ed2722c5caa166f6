package importer

import (
	"github.com/emersion/go-ical"
	"github.com/jettchent/timeblok-go/ir"
)

// Fetcher retrieves externally-hosted regional calendar data by name: a
// holiday calendar (for the `holidays` command) or a list of working days
// (for the `region` command). A production binary backs this with an
// HTTP client plus a disk cache (the network transport itself is out of
// scope, spec §1); tests supply their own implementation.
type Fetcher interface {
	FetchHolidays(region string) (*ical.Calendar, error)
	FetchWorkdays(region string) ([]ir.ExactDate, error)
	FetchICS(source string) (*ical.Calendar, error)
}
