// Package resolver implements TimeBlok's top-level compilation driver
// (spec §4.3): it threads a growing environment through a record list,
// turning partial records into fully-resolved ones and expanding
// generator blocks.
package resolver

import (
	"log/slog"

	"github.com/jettchent/timeblok-go/environment"
	"github.com/jettchent/timeblok-go/ir"
	"github.com/jettchent/timeblok-go/preset"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger overrides the diagnostic logger (default: silent, matching
// the teacher's io.Discard default in davserver/handler/handler.go).
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) { r.logger = logger }
}

// WithPresetInstaller overrides how the root environment is seeded; the
// default wires in the builtin weekday filters and command table via the
// preset package. Exposed mainly for tests that want a bare environment.
func WithPresetInstaller(install func(*environment.Environment)) Option {
	return func(r *Resolver) { r.installPreset = install }
}

// Resolver drives spec §4.3's per-record dispatch loop.
type Resolver struct {
	logger        *slog.Logger
	installPreset func(*environment.Environment)
}

// New builds a Resolver with the given options.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		logger:        slog.New(slog.NewTextHandler(discard{}, nil)),
		installPreset: preset.Insert,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// Resolve consumes records in source order, producing the resolved
// output stream (spec §4.3's per-record dispatch table).
func (r *Resolver) Resolve(records []ir.Record, baseTime ir.ExactDateTime) []ir.ExactRecord {
	rootCurrent := ir.DateTime{}
	yearOnly := ir.Date{Year: ir.Number(int64(baseTime.Date.Year))}
	rootCurrent.Date = &yearOnly
	rootCurrent.HasDate = true

	env := environment.New(baseTime, rootCurrent, nil)
	if r.installPreset != nil {
		r.installPreset(env)
	}

	var resolved []ir.ExactRecord
	for _, rec := range records {
		switch {
		case rec.Event != nil:
			event, err := ir.ResolveEvent(*rec.Event, env)
			if err != nil {
				r.logger.Warn("Error resolving event", "err", err)
				continue
			}
			resolved = append(resolved, ir.ExactRecordEvent(event))

		case rec.Occasion != nil:
			fixed, err := ir.ResolveOccasion(*rec.Occasion, env)
			if err != nil {
				r.logger.Warn("Error resolving occasion", "err", err)
				continue
			}
			env = env.Child(fixed, *rec.Occasion)

		case rec.Note != nil:
			resolved = append(resolved, ir.ExactRecordNote(*rec.Note))

		case rec.Command != nil:
			actions, err := rec.Command.Run(env)
			if err != nil {
				r.logger.Warn("Error when resolving command", "err", err)
				continue
			}
			for _, action := range actions {
				switch {
				case action.SetIdent != nil:
					env.Set(*action.SetIdent, *action.SetData)
				case action.InsertOne != nil:
					resolved = append(resolved, *action.InsertOne)
				case len(action.InsertMany) > 0:
					resolved = append(resolved, action.InsertMany...)
				case action.InsertTodo != nil:
					resolved = append(resolved, ir.ExactRecordTodo(*action.InsertTodo))
				case action.SetTZ != nil:
					newAnchor := env.DateTime()
					newAnchor.TZ = *action.SetTZ
					env = env.Child(newAnchor, env.Current())
				}
			}

		case rec.FlexOccasion != nil:
			// Reserved: spec §4.3 / §9 Open Question. A standalone
			// occasion filter carries no event templates to expand, so
			// there's nothing useful to do with it yet.
			r.logger.Warn("standalone FlexOccasion record is not supported; skipping")

		case rec.FlexEvents != nil:
			resolved = append(resolved, r.resolveFlexEvents(*rec.FlexEvents, env)...)
		}
	}
	return resolved
}

func (r *Resolver) resolveFlexEvents(fe ir.FlexEvents, env *environment.Environment) []ir.ExactRecord {
	filter := fe.Occasion.Filter
	if filter == nil {
		return nil
	}
	it, err := env.Iter()
	if err != nil {
		r.logger.Warn("Error iterating dates for generator block", "err", err)
		return nil
	}

	var out []ir.ExactRecord
	for {
		date, ok := it.Next()
		if !ok {
			break
		}
		if !filter.Check(date, env) {
			continue
		}
		exactDate, err := ir.ResolveDate(date, env)
		if err != nil {
			r.logger.Warn("Error resolving generator block date", "err", err)
			continue
		}
		anchor := ir.ExactDateTime{Date: exactDate, Time: ir.ExactTime{}, TZ: ir.TZLocal}
		dayDate := date
		tmp := env.Child(anchor, ir.DateTime{Date: &dayDate, HasDate: true})
		for _, event := range fe.Events {
			resolvedEvent, err := ir.ResolveEvent(event, tmp)
			if err != nil {
				r.logger.Warn("Error resolving event", "err", err)
				continue
			}
			out = append(out, ir.ExactRecordEvent(resolvedEvent))
		}
	}
	return out
}
