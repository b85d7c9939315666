package dispatchers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/brig/internal/usage"
)

func requireUsageError(t *testing.T, err error, typ usage.ErrorType, cursor int) *usage.Error {
	t.Helper()
	require.Error(t, err)
	require.True(t, usage.IsType(err, typ), "got %v", err)
	var ue *usage.Error
	require.ErrorAs(t, err, &ue)
	require.Equal(t, cursor, ue.Cursor)
	return ue
}

func TestExecute_SimpleLiteral(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("foo").Executes(returns(42)))

	result, err := d.Execute("foo", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 42, result)
}

func TestExecute_UnknownCommand(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("foo").Executes(returns(1)))

	_, err := d.Execute("bar", player("steve"))
	ue := requireUsageError(t, err, usage.DispatcherUnknownCommand, 0)
	require.Equal(t, "Unknown command at position 0: <--[HERE]", ue.Error())
}

func TestExecute_EmptyInput(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("foo").Executes(returns(1)))

	_, err := d.Execute("", player("steve"))
	requireUsageError(t, err, usage.DispatcherUnknownCommand, 0)
}

func TestExecute_ImpermissibleLooksUnknown(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("foo").Requires(func(Source) bool { return false }).Executes(returns(1)))
	d.Register(Literal("op").RequiresPermission("admin").Executes(returns(2)))

	_, err := d.Execute("foo", player("steve"))
	requireUsageError(t, err, usage.DispatcherUnknownCommand, 0)

	_, err = d.Execute("op", player("steve"))
	requireUsageError(t, err, usage.DispatcherUnknownCommand, 0)

	result, err := d.Execute("op", player("alex", "admin"))
	require.NoError(t, err)
	require.Equal(t, 2, result)
}

func TestExecute_IncompleteCommand(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("foo").Then(Literal("bar").Executes(returns(1))))

	_, err := d.Execute("foo", player("steve"))
	requireUsageError(t, err, usage.DispatcherUnknownCommand, 3)
}

func TestExecute_UnknownSubcommand(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("foo").Then(Literal("bar").Executes(returns(1))))

	_, err := d.Execute("foo baz", player("steve"))
	requireUsageError(t, err, usage.DispatcherUnknownCommand, 4)
}

func TestExecute_TrailingInputOnLeaf(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("foo").Executes(returns(1)))

	_, err := d.Execute("foo bar", player("steve"))
	requireUsageError(t, err, usage.DispatcherUnknownArgument, 4)
}

func TestExecute_TrailingWhitespaceOnLeaf(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("foo").Executes(returns(7)))
	d.Register(Literal("bar").Executes(returns(1)).Then(Literal("baz").Executes(returns(2))))

	result, err := d.Execute("foo ", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 7, result)

	result, err = d.Execute("foo  ", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 7, result)

	_, err = d.Execute("bar ", player("steve"))
	require.Error(t, err)
}

func TestExecute_MergedRegistrations(t *testing.T) {
	d := NewDispatcher()
	first := d.Register(Literal("base").Then(Literal("foo").Executes(returns(1))))
	second := d.Register(Literal("base").Then(Literal("bar").Executes(returns(2))))

	require.Same(t, first, second)
	require.Len(t, d.Root().Children(), 1)

	result, err := d.Execute("base foo", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 1, result)

	result, err = d.Execute("base bar", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 2, result)
}

func TestExecute_MergeKeepsHandlerUnlessReplaced(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("foo").Executes(returns(1)))
	d.Register(Literal("foo").Then(Literal("bar").Executes(returns(2))))

	result, err := d.Execute("foo", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 1, result)

	d.Register(Literal("foo").Executes(returns(3)))
	result, err = d.Execute("foo", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 3, result)
}

func TestExecute_LiteralBeatsArgument(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("foo").Executes(returns(1)))
	d.Register(Argument("bar", wordType{}).Executes(returns(2)))

	result, err := d.Execute("foo", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 1, result)

	result, err = d.Execute("fox", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 2, result)
}

func TestExecute_LiteralNeedsSeparator(t *testing.T) {
	t.Run("falls through to sibling argument", func(t *testing.T) {
		d := NewDispatcher()
		d.Register(Literal("a").Executes(returns(1)))
		d.Register(Argument("x", wordType{}).Executes(returns(2)))

		result, err := d.Execute("a5", player("steve"))
		require.NoError(t, err)
		require.Equal(t, 2, result)
	})

	t.Run("sibling int argument rejects the token", func(t *testing.T) {
		d := NewDispatcher()
		d.Register(Literal("a").Executes(returns(1)))
		d.Register(Argument("x", intType{}).Executes(returns(2)))

		_, err := d.Execute("a5", player("steve"))
		requireUsageError(t, err, usage.ReaderExpectedInt, 0)
	})

	t.Run("no sibling", func(t *testing.T) {
		d := NewDispatcher()
		d.Register(Literal("a").Executes(returns(1)))

		_, err := d.Execute("a5", player("steve"))
		requireUsageError(t, err, usage.DispatcherUnknownCommand, 0)
	})
}

func TestExecute_ArgumentValues(t *testing.T) {
	d := NewDispatcher()
	var got int
	d.Register(Literal("add").Then(Argument("a", intType{}).Then(Argument("b", intType{}).Executes(func(ctx *Context) (int, error) {
		a, err := ArgumentAs[int](ctx, "a")
		if err != nil {
			return 0, err
		}
		b, err := ArgumentAs[int](ctx, "b")
		if err != nil {
			return 0, err
		}
		got = a + b
		require.Equal(t, []string{"a", "b"}, ctx.ArgumentNames())
		arg, ok := ctx.Argument("b")
		require.True(t, ok)
		require.Equal(t, "-3", arg.Range.Get(ctx.Input()))
		return got, nil
	}))))

	result, err := d.Execute("add 10 -3", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 7, result)
	require.Equal(t, 7, got)
}

func TestExecute_MostSpecificError(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("foo").Then(Argument("n", intType{}).Then(Literal("bar").Executes(returns(1)))))

	_, err := d.Execute("foo x", player("steve"))
	requireUsageError(t, err, usage.ReaderExpectedInt, 4)

	_, err = d.Execute("foo 1-2", player("steve"))
	requireUsageError(t, err, usage.ReaderInvalidInt, 4)

	_, err = d.Execute("foo 12x", player("steve"))
	requireUsageError(t, err, usage.DispatcherExpectedArgumentSeparator, 6)

	_, err = d.Execute("foo 12 baz", player("steve"))
	requireUsageError(t, err, usage.DispatcherUnknownCommand, 7)
}

func TestExecute_ErrorFromFurthestBranch(t *testing.T) {
	d := NewDispatcher()
	d.Register(Argument("n", intType{}).Executes(returns(1)))
	d.Register(Argument("w", separatorType{}).Executes(returns(2)))

	_, err := d.Execute("12x", player("steve"))
	requireUsageError(t, err, usage.DispatcherExpectedArgumentSeparator, 2)
}

func TestExecute_HandlerErrorPropagates(t *testing.T) {
	d := NewDispatcher()
	failure := usage.CommandFailed.Create("no such player")
	d.Register(Literal("kill").Executes(func(*Context) (int, error) { return 0, failure }))

	_, err := d.Execute("kill", player("steve"))
	require.ErrorIs(t, err, failure)
	require.Equal(t, "no such player", err.Error())
}

func TestExecute_Redirect(t *testing.T) {
	d := NewDispatcher()
	var seen []string
	d.Register(Literal("whoami").Executes(func(ctx *Context) (int, error) {
		seen = append(seen, ctx.Source().Name())
		return SingleSuccess, nil
	}))
	d.Register(Literal("as").Then(Argument("who", wordType{}).RedirectWith(d.Root(), func(ctx *Context) (Source, error) {
		name, err := ArgumentAs[string](ctx, "who")
		if err != nil {
			return nil, err
		}
		return player(name), nil
	})))

	result, err := d.Execute("as alex whoami", player("steve"))
	require.NoError(t, err)
	require.Equal(t, SingleSuccess, result)
	require.Equal(t, []string{"alex"}, seen)

	seen = nil
	_, err = d.Execute("as alex as bob whoami", player("steve"))
	require.NoError(t, err)
	require.Equal(t, []string{"bob"}, seen)
}

func TestExecute_PlainRedirectKeepsSource(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Register(Literal("ping").Executes(counter(&calls)))
	d.Register(Literal("run").Redirect(d.Root()))

	_, err := d.Execute("run run ping", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 1, calls)
}

func TestExecute_RedirectWithoutCommand(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("ping").Executes(returns(1)))
	d.Register(Literal("run").Redirect(d.Root()))

	_, err := d.Execute("run", player("steve"))
	requireUsageError(t, err, usage.DispatcherUnknownCommand, 3)
}

func TestExecute_Fork(t *testing.T) {
	d := NewDispatcher()
	var seen []string
	d.Register(Literal("hello").Executes(func(ctx *Context) (int, error) {
		seen = append(seen, ctx.Source().Name())
		return 10, nil
	}))
	d.Register(Literal("everyone").Fork(d.Root(), func(*Context) ([]Source, error) {
		return []Source{player("a"), player("b"), player("c")}, nil
	}))

	result, err := d.Execute("everyone hello", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 3, result)
	require.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestExecute_ForkSwallowsFailures(t *testing.T) {
	var consumed []bool
	d := NewDispatcher(WithResultConsumer(func(_ *Context, success bool, _ int) {
		consumed = append(consumed, success)
	}))
	d.Register(Literal("check").Executes(func(ctx *Context) (int, error) {
		if ctx.Source().Name() == "b" {
			return 0, errors.New("boom")
		}
		return 1, nil
	}))
	d.Register(Literal("each").Fork(d.Root(), func(*Context) ([]Source, error) {
		return []Source{player("a"), player("b"), player("c")}, nil
	}))
	d.Register(Literal("broken").Fork(d.Root(), func(*Context) ([]Source, error) {
		return nil, errors.New("no targets")
	}))

	result, err := d.Execute("each check", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 2, result)
	require.Equal(t, []bool{true, false, true}, consumed)

	result, err = d.Execute("broken check", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 0, result)
}

func TestExecute_RedirectModifierErrorPropagates(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("ping").Executes(returns(1)))
	modErr := errors.New("player is offline")
	d.Register(Literal("as").RedirectWith(d.Root(), func(*Context) (Source, error) { return nil, modErr }))

	_, err := d.Execute("as ping", player("steve"))
	require.ErrorIs(t, err, modErr)
}

func TestExecute_ResultConsumer(t *testing.T) {
	type call struct {
		success bool
		result  int
	}
	var calls []call
	d := NewDispatcher(WithResultConsumer(func(_ *Context, success bool, result int) {
		calls = append(calls, call{success, result})
	}))
	d.Register(Literal("ok").Executes(returns(5)))

	_, err := d.Execute("ok", player("steve"))
	require.NoError(t, err)
	_, err = d.Execute("ok", player("steve"))
	require.NoError(t, err)
	require.Equal(t, []call{{true, 5}, {true, 5}}, calls)
}

func TestExecute_ConsoleUsage(t *testing.T) {
	console := &testSource{name: "console", console: true}
	d := NewDispatcher()
	d.Register(Literal("stop").ConsoleUsage(ConsoleDenied).Executes(returns(1)))
	d.Register(Literal("admin").ConsoleUsage(ConsoleDenied).
		Then(Literal("kick").Executes(returns(2))).
		Then(Literal("list").ConsoleUsage(ConsoleAllowed).Executes(returns(3))))
	d.Register(Literal("ping").Executes(returns(4)))
	d.Register(Literal("sudo").ConsoleUsage(ConsoleDenied).Redirect(d.Root()))

	tests := []struct {
		input  string
		denied bool
		result int
	}{
		{"stop", true, 0},
		{"admin kick", true, 0},
		{"admin list", false, 3},
		{"ping", false, 4},
		{"sudo ping", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result, err := d.Execute(tt.input, console)
			if tt.denied {
				require.True(t, usage.IsType(err, usage.ConsoleUsageDenied))
				var ue *usage.Error
				require.ErrorAs(t, err, &ue)
				require.Equal(t, usage.CategoryAuthorization, ue.Category())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.result, result)

			result, err = d.Execute(tt.input, player("steve"))
			require.NoError(t, err)
			require.Equal(t, tt.result, result)
		})
	}

	result, err := d.Execute("stop", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 1, result)
}

func TestExecute_Options(t *testing.T) {
	d := NewDispatcher()
	give := func(ctx *Context) (int, error) {
		n, err := ArgumentAs[int](ctx, "n")
		if err != nil {
			return 0, err
		}
		count, err := OptionOr(ctx, "count", 1)
		if err != nil {
			return 0, err
		}
		return n * count, nil
	}
	d.Register(Literal("give").Then(Argument("n", intType{}).Executes(give).
		Then(Argument("count", intType{}).AsOption().Executes(give).
			Then(Argument("count", intType{}).AsOption().Executes(give)))))

	result, err := d.Execute("give 5", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 5, result)

	result, err = d.Execute("give 5 --count 3", player("steve"))
	require.NoError(t, err)
	require.Equal(t, 15, result)

	_, err = d.Execute("give 5 --count 3 --count 4", player("steve"))
	ue := requireUsageError(t, err, usage.AmbiguousOption, 17)
	require.Equal(t, "Option '--count' was specified more than once", ue.RawMessage())

	_, err = d.Execute("give 5 --count", player("steve"))
	require.Error(t, err)

	_, err = d.Execute("give 5 --size 3", player("steve"))
	requireUsageError(t, err, usage.DispatcherUnknownCommand, 7)
}

func TestParse_ErrNilWhenConsumed(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("foo").Then(Literal("bar").Executes(returns(1))))

	require.NoError(t, d.Parse("foo bar", player("steve")).Err())
	require.Error(t, d.Parse("foo baz", player("steve")).Err())
}

func TestParse_DoesNotExecute(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Register(Literal("foo").Executes(counter(&calls)))

	parse := d.Parse("foo", player("steve"))
	require.Equal(t, 0, calls)
	require.Len(t, parse.Context.Nodes(), 1)

	_, err := d.ExecuteParsed(parse)
	require.NoError(t, err)
	_, err = d.ExecuteParsed(parse)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestParse_RecordsBranchErrors(t *testing.T) {
	d := NewDispatcher()
	d.Register(Argument("a", intType{}).Executes(returns(1)))
	d.Register(Argument("b", intType{}).Executes(returns(2)))

	parse := d.Parse("x", player("steve"))
	require.Len(t, parse.Errors, 2)
	require.Equal(t, "a", parse.Errors[0].Node.Name())
	require.Equal(t, "b", parse.Errors[1].Node.Name())
}

func TestParse_ContextRangeAndChild(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("ping").Executes(returns(1)))
	d.Register(Literal("run").Redirect(d.Root()))

	parse := d.Parse("run ping", player("steve"))
	require.Equal(t, "run", parse.Context.Range().Get("run ping"))
	child := parse.Context.Child()
	require.NotNil(t, child)
	require.Equal(t, "ping", child.Range().Get("run ping"))
	require.Same(t, child, parse.Context.LastChild())
}

func TestRegister_PanicsOnMisuse(t *testing.T) {
	require.Panics(t, func() {
		Literal("a").Redirect(NewRootNode()).Then(Literal("b"))
	})
	require.Panics(t, func() {
		Literal("a").Then(Literal("b")).Redirect(NewRootNode())
	})
	require.Panics(t, func() {
		Literal("a").AsOption()
	})
}

func TestExecute_Concurrent(t *testing.T) {
	d := NewDispatcher()
	d.Register(Literal("add").Then(Argument("n", intType{}).Executes(func(ctx *Context) (int, error) {
		return ArgumentAs[int](ctx, "n")
	})))

	done := make(chan int, 20)
	for i := range 20 {
		go func() {
			result, err := d.Execute("add "+itoa(i), player("steve"))
			if err != nil {
				done <- -1
				return
			}
			done <- result
		}()
	}
	sum := 0
	for range 20 {
		sum += <-done
	}
	require.Equal(t, 190, sum)
}
