package preset

import (
	"fmt"

	"github.com/jettchent/timeblok-go/environment"
	"github.com/jettchent/timeblok-go/importer"
	"github.com/jettchent/timeblok-go/ir"
)

func cmd(name string, arity int, fn ir.CommandFunc) ir.IdentData {
	return ir.IdentDataCommand(ir.Command{Name: name, Arity: arity, Func: fn})
}

// insertCommands binds print/set/del/t, mirroring preset/mod.rs's
// insert_commands (minus the region/holidays/import trio, which need a
// Fetcher and are wired in insertFetcherCommands).
func insertCommands(env *environment.Environment) {
	env.Set("print", cmd("print", 1, func(env ir.Env, call *ir.CommandCall) ([]ir.ResolverAction, error) {
		name, ok := call.Args[0].IsIdent()
		if !ok {
			return nil, fmt.Errorf("the argument must be an identity")
		}
		data, ok := env.Get(name)
		if !ok {
			return nil, fmt.Errorf("identity %s not found", name)
		}
		fmt.Printf("%s : %+v\n", name, data)
		return nil, nil
	}))

	env.Set("set", cmd("set", 2, func(env ir.Env, call *ir.CommandCall) ([]ir.ResolverAction, error) {
		name, ok := call.Args[0].IsIdent()
		if !ok {
			return nil, fmt.Errorf("first argument for /set must be an identity")
		}
		return []ir.ResolverAction{ir.ActionSet(name, ir.IdentDataValue(call.Args[1]))}, nil
	}))

	env.Set("del", cmd("del", 1, func(env ir.Env, call *ir.CommandCall) ([]ir.ResolverAction, error) {
		name, ok := call.Args[0].IsIdent()
		if !ok {
			return nil, fmt.Errorf("first argument for /del must be an identity")
		}
		env.Del(name)
		return nil, nil
	}))

	env.Set("t", cmd("t", 0, func(env ir.Env, call *ir.CommandCall) ([]ir.ResolverAction, error) {
		return []ir.ResolverAction{ir.ActionInsertTodo(ir.TodoFromString(call.Plain))}, nil
	}))
}

// insertFetcherCommands binds import/holidays/region, each backed by the
// supplied Fetcher for the out-of-scope network/cache step (spec §1).
// Grounded on timeblok-compiler/src/preset/mod.rs's insert_region and the
// `import` arm of insert_commands.
func insertFetcherCommands(env *environment.Environment, fetcher importer.Fetcher) {
	if fetcher == nil {
		return
	}

	env.Set("import", cmd("import", 0, func(env ir.Env, call *ir.CommandCall) ([]ir.ResolverAction, error) {
		switch len(call.Args) {
		case 1:
			source, ok := call.Args[0].IsIdent()
			if !ok {
				return nil, fmt.Errorf("1-parameter import clause must contain an ident")
			}
			cal, err := fetcher.FetchICS(source)
			if err != nil {
				return nil, err
			}
			return []ir.ResolverAction{ir.ActionInsertRecords(importer.ToRecords(cal))}, nil
		case 2:
			source, ok := call.Args[0].IsIdent()
			name, ok2 := call.Args[1].IsIdent()
			if !ok || !ok2 {
				return nil, fmt.Errorf("the two arguments must be idents")
			}
			cal, err := fetcher.FetchICS(source)
			if err != nil {
				return nil, err
			}
			filt := importer.FromICS(cal)
			env.Set(name, ir.IdentDataValue(ir.ValueDateFilter(filt)))
			return nil, nil
		default:
			return nil, fmt.Errorf("unexpected argument length: %d", len(call.Args))
		}
	}))

	env.Set("holidays", cmd("holidays", 1, func(env ir.Env, call *ir.CommandCall) ([]ir.ResolverAction, error) {
		region, ok := call.Args[0].IsIdent()
		if !ok {
			return nil, fmt.Errorf("the argument must be an identity")
		}
		cal, err := fetcher.FetchHolidays(region)
		if err != nil {
			return nil, err
		}
		filt := importer.FromICS(cal)
		env.Set(region+"weekend", ir.IdentDataValue(ir.ValueDateFilter(filt)))
		return nil, nil
	}))

	env.Set("region", cmd("region", 1, func(env ir.Env, call *ir.CommandCall) ([]ir.ResolverAction, error) {
		region, ok := call.Args[0].IsIdent()
		if !ok {
			return nil, fmt.Errorf("the argument must be an identity")
		}
		dates, err := fetcher.FetchWorkdays(region)
		if err != nil {
			return nil, err
		}
		filt := importer.FromDates(dates)
		env.Set(region+"weekend", ir.IdentDataValue(ir.ValueDateFilter(filt)))
		env.Set(region+"workday", ir.IdentDataValue(ir.ValueDateFilter(ir.ExcludeFilt[ir.Date]{Target: filt})))
		return nil, nil
	}))
}
