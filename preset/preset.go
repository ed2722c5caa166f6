package preset

import (
	"github.com/jettchent/timeblok-go/environment"
	"github.com/jettchent/timeblok-go/importer"
)

// Insert seeds env with TimeBlok's builtin bindings: weekday/workday/
// weekend filters and the print/set/del/t/tz/timezone commands.
// Grounded on preset/mod.rs's insert_preset.
func Insert(env *environment.Environment) {
	insertWeekdays(env)
	insertCommands(env)
	insertTimezone(env)
}

// InsertWithFetcher additionally wires import/holidays/region, backed by
// fetcher for the out-of-scope network fetch (spec §1).
func InsertWithFetcher(env *environment.Environment, fetcher importer.Fetcher) {
	Insert(env)
	insertFetcherCommands(env, fetcher)
}
