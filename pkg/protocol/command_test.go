package protocol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommandSerialization(t *testing.T) {
	tests := []struct {
		name string
		args []any
		want string
	}{
		{
			name: "strings",
			args: []any{"chassis", "speed", "?"},
			want: "chassis speed ?;",
		},
		{
			name: "floats use shortest form",
			args: []any{"chassis", "speed", "x", 0.5, "y", 0.0, "z", 90.0},
			want: "chassis speed x 0.5 y 0 z 90;",
		},
		{
			name: "bools are on and off, never 1 and 0",
			args: []any{"chassis", "push", "position", true, "other", false},
			want: "chassis push position on other off;",
		},
		{
			name: "ints",
			args: []any{"robotic_gripper", "open", 1},
			want: "robotic_gripper open 1;",
		},
		{
			name: "enums serialize via their wire token",
			args: []any{"chassis", "push", "status", true, "sfreq", Frequency10Hz},
			want: "chassis push status on sfreq 10;",
		},
		{
			name: "string enums",
			args: []any{"AI", "attribute", "line_color", LineColourRed},
			want: "AI attribute line_color red;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := NewCommand(tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd.String())
			assert.Equal(t, []byte(tt.want), cmd.Bytes())
		})
	}
}

func TestNewCommandRejectsUnsupportedType(t *testing.T) {
	type odd struct{ A int }

	_, err := NewCommand("chassis", odd{A: 1})
	require.Error(t, err)

	var invalid *InvalidArgumentError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, 1, invalid.Index)
}
