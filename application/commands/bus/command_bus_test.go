package bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCommand struct {
	Value   string
	invalid bool
}

func (c testCommand) Validate() error {
	if c.invalid {
		return errors.New("invalid test command")
	}
	return nil
}

type otherCommand struct{}

func (otherCommand) Validate() error { return nil }

func TestCommandBus_SendDispatchesToHandler(t *testing.T) {
	b := NewCommandBus()

	var handled Command
	handler := CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		handled = cmd
		return nil
	})
	require.NoError(t, b.Register(testCommand{}, handler))

	err := b.Send(context.Background(), testCommand{Value: "x"})
	require.NoError(t, err)

	cmd, ok := handled.(testCommand)
	require.True(t, ok)
	assert.Equal(t, "x", cmd.Value)
}

func TestCommandBus_SendUnregisteredCommand(t *testing.T) {
	b := NewCommandBus()

	err := b.Send(context.Background(), otherCommand{})

	assert.Error(t, err)
}

func TestCommandBus_DuplicateRegistration(t *testing.T) {
	b := NewCommandBus()
	handler := CommandHandlerFunc(func(ctx context.Context, cmd Command) error { return nil })

	require.NoError(t, b.Register(testCommand{}, handler))
	err := b.Register(testCommand{}, handler)

	assert.Error(t, err)
}

func TestCommandBus_ValidatesBeforeDispatch(t *testing.T) {
	b := NewCommandBus()

	called := false
	handler := CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		called = true
		return nil
	})
	require.NoError(t, b.Register(testCommand{}, handler))

	err := b.Send(context.Background(), testCommand{invalid: true})

	require.Error(t, err)
	assert.False(t, called, "invalid command must not reach the handler")
}

func TestCommandBus_HandlerErrorPropagates(t *testing.T) {
	b := NewCommandBus()

	handlerErr := errors.New("handler failed")
	handler := CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		return handlerErr
	})
	require.NoError(t, b.Register(testCommand{}, handler))

	err := b.Send(context.Background(), testCommand{})

	assert.ErrorIs(t, err, handlerErr)
}

func TestPipeline_AppliesMiddlewareInOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next CommandHandler) CommandHandler {
			return CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
				order = append(order, name)
				return next.Handle(ctx, cmd)
			})
		}
	}

	pipeline := NewPipeline(mw("outer"), mw("inner"))
	handler := pipeline.Execute(CommandHandlerFunc(func(ctx context.Context, cmd Command) error {
		order = append(order, "handler")
		return nil
	}))

	require.NoError(t, handler.Handle(context.Background(), testCommand{}))
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}
