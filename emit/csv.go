package emit

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/jettchent/timeblok-go/ir"
)

// ToCSV renders every Event record as a "timerange,event" row (spec
// §4.5); Notes and Todos have no CSV representation and are skipped,
// matching converter.rs's to_csv.
func ToCSV(records []ir.ExactRecord) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"timerange", "event"}); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		if rec.Event == nil {
			continue
		}
		if err := w.Write([]string{rec.Event.Range.String(), rec.Event.Name}); err != nil {
			return "", fmt.Errorf("write csv row %q: %w", rec.Event.Name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return sb.String(), nil
}
