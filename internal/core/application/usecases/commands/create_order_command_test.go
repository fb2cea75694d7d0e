package commands_test

import (
	"testing"

	"fabrication/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand("ORD-2024-001", 7, 3)
	require.NoError(t, err)
	assert.Equal(t, "ORD-2024-001", cmd.OrderNumber())
	assert.Equal(t, int64(7), cmd.CustomerID())
	assert.Equal(t, int64(3), cmd.TeamID())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateOrderCommand_Invalid(t *testing.T) {
	_, err := commands.NewCreateOrderCommand("", 7, 3)
	assert.ErrorIs(t, err, commands.ErrOrderNumberIsRequired)

	_, err = commands.NewCreateOrderCommand("ORD-2024-001", 0, 3)
	assert.ErrorIs(t, err, commands.ErrCustomerIDIsInvalid)

	_, err = commands.NewCreateOrderCommand("ORD-2024-001", 7, -1)
	assert.ErrorIs(t, err, commands.ErrTeamIDIsInvalid)
}

func TestCreateOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.CreateOrderCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
}
