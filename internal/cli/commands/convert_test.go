package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantOut string
		wantErr bool
		errMsg  string
	}{
		{
			name:    "string literal to int",
			args:    []string{"int", "'42'"},
			wantOut: "42\n",
		},
		{
			name:    "bare digits detect as int",
			args:    []string{"int", "42"},
			wantOut: "42\n",
		},
		{
			name:    "float truncates toward zero",
			args:    []string{"int", "2.9"},
			wantOut: "2\n",
		},
		{
			name:    "negative float truncates toward zero",
			args:    []string{"int", "--", "-2.9"},
			wantOut: "-2\n",
		},
		{
			name:    "int to float grows a decimal point",
			args:    []string{"float", "7"},
			wantOut: "7.0\n",
		},
		{
			name:    "float to string",
			args:    []string{"string", "2.5"},
			wantOut: "2.5\n",
		},
		{
			name:    "zero is false",
			args:    []string{"bool", "0"},
			wantOut: "false\n",
		},
		{
			name:    "only the word true is true",
			args:    []string{"bool", "yes"},
			wantOut: "false\n",
		},
		{
			name:    "word true is case insensitive",
			args:    []string{"bool", "TRUE"},
			wantOut: "true\n",
		},
		{
			name:    "as pins the source kind",
			args:    []string{"float", "1", "--as", "bool"},
			wantOut: "1.0\n",
		},
		{
			name:    "as string keeps the literal raw",
			args:    []string{"int", "3.14", "--as", "string"},
			wantErr: true,
			errMsg:  "invalid integer literal",
		},
		{
			name:    "unknown target kind",
			args:    []string{"decimal", "1"},
			wantErr: true,
			errMsg:  "unknown kind",
		},
		{
			name:    "unconvertible string",
			args:    []string{"int", "abc"},
			wantErr: true,
			errMsg:  "invalid integer literal",
		},
		{
			name:    "huge float overflows int",
			args:    []string{"int", "1e300"},
			wantErr: true,
			errMsg:  "overflows int64",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewConvertCommand()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(new(bytes.Buffer))
			cmd.SetArgs(tt.args)

			err := cmd.Execute()

			if tt.wantErr {
				require.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, buf.String())
		})
	}
}

func TestSourceValue(t *testing.T) {
	v, err := sourceValue("'7'", "")
	require.NoError(t, err)
	assert.Equal(t, "7", v.Str())

	v, err = sourceValue("7", "float")
	require.NoError(t, err)
	assert.Equal(t, 7.0, v.Float())

	_, err = sourceValue("7", "decimal")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}
