package resolver

import (
	"testing"

	"github.com/jettchent/timeblok-go/environment"
	"github.com/jettchent/timeblok-go/ir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrStr(s string) *string { return &s }

func TestResolveWakeAndBreakfastScenario(t *testing.T) {
	base := ir.ExactDateTimeFromYMDHMS(2023, 4, 4, 0, 0, 0)

	wakeOccasion := ir.DateTime{Time: &ir.Time{Hour: ir.Number(7)}, HasTime: true}
	wakeEvent := ir.Event{
		Name:  "wake up",
		Range: ir.RangeDuration(ir.Duration{Start: ir.DateTime{}, Duration: ir.Number(15)}),
	}
	breakfastEvent := ir.Event{
		Name:  "breakfast",
		Range: ir.RangeDuration(ir.Duration{Start: ir.DateTime{Time: &ir.Time{Hour: ir.Number(8)}, HasTime: true}, Duration: ir.Number(30)}),
	}

	records := []ir.Record{
		ir.RecordOccasion(wakeOccasion),
		ir.RecordEvent(wakeEvent),
		ir.RecordEvent(breakfastEvent),
	}

	r := New()
	out := r.Resolve(records, base)
	require.Len(t, out, 2)
	require.NotNil(t, out[0].Event)
	require.NotNil(t, out[1].Event)
	assert.Equal(t, "wake up", out[0].Event.Name)
	assert.Equal(t, "breakfast", out[1].Event.Name)

	wakeStart, _ := out[0].Event.Range.TimeRange.Start.ToTime()
	assert.Equal(t, 7, wakeStart.Hour())

	bfStart, _ := out[1].Event.Range.TimeRange.Start.ToTime()
	assert.Equal(t, 8, bfStart.Hour())
}

func TestResolveCommandInsertsTodo(t *testing.T) {
	base := ir.ExactDateTimeFromYMDHMS(2023, 4, 4, 0, 0, 0)

	todoCmd := ir.Command{
		Name:  "t",
		Arity: 0,
		Func: func(env ir.Env, call *ir.CommandCall) ([]ir.ResolverAction, error) {
			return []ir.ResolverAction{ir.ActionInsertTodo(ir.Todo{Name: call.Plain})}, nil
		},
	}

	r := New(WithPresetInstaller(func(env *environment.Environment) {
		env.Set("t", ir.IdentDataCommand(todoCmd))
	}))

	records := []ir.Record{
		ir.RecordCommand(ir.CommandCall{Command: "t", Plain: "buy milk"}),
	}
	out := r.Resolve(records, base)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Todo)
	assert.Equal(t, "buy milk", out[0].Todo.Name)
}

func TestResolveNoteIsPassedThrough(t *testing.T) {
	base := ir.ExactDateTimeFromYMDHMS(2023, 4, 4, 0, 0, 0)
	note := "remember the milk"
	records := []ir.Record{ir.RecordNote(note)}
	out := New().Resolve(records, base)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Note)
	assert.Equal(t, note, *out[0].Note)
}

func TestResolveGeneratorBlockExpandsMatchingDays(t *testing.T) {
	base := ir.ExactDateTimeFromYMDHMS(2023, 1, 1, 0, 0, 0)

	mon := ir.FlexDate{
		Year:  ir.Unsure,
		Month: ir.Unsure,
		Day: ir.DynFilter[ir.NumVal]{
			Name: "monday",
			Fn: func(value ir.NumVal, env ir.Env) bool {
				d, _ := ir.ResolveDate(ir.Date{Day: value}, env)
				w, err := d.Weekday()
				return err == nil && w == 1 // time.Monday
			},
		},
	}
	occasion := ir.FlexOccasion{Filter: mon.AsDateFilter()}
	gym := ir.Event{Name: "gym", Range: ir.RangeDuration(ir.Duration{Start: ir.DateTime{Time: &ir.Time{Hour: ir.Number(18)}, HasTime: true}, Duration: ir.Number(60)})}

	records := []ir.Record{ir.RecordFlexEvents(ir.FlexEvents{Occasion: occasion, Events: []ir.Event{gym}})}
	out := New().Resolve(records, base)
	assert.NotEmpty(t, out)
	for _, rec := range out {
		require.NotNil(t, rec.Event)
		assert.Equal(t, "gym", rec.Event.Name)
	}
}
