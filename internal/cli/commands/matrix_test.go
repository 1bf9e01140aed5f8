package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/scalarlab/typecast/pkg/coerce"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixCommand_Table(t *testing.T) {
	cmd := NewMatrixCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"42"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "42.0")
	assert.Contains(t, output, "true")
	assert.Contains(t, output, "(source: int 42)")
}

func TestMatrixCommand_JSON(t *testing.T) {
	cmd := NewMatrixCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"2.5", "--format", "json"})

	err := cmd.Execute()
	require.NoError(t, err)

	var result MatrixOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))

	assert.Equal(t, "2.5", result.Input)
	assert.Equal(t, "float", result.Kind)
	require.Len(t, result.Rows, 4)

	values := make(map[string]string, 4)
	for _, row := range result.Rows {
		values[row.Kind] = row.Value
	}
	assert.Equal(t, "2.5", values["string"])
	assert.Equal(t, "2", values["int"])
	assert.Equal(t, "2.5", values["float"])
	assert.Equal(t, "true", values["bool"])
}

func TestMatrixCommand_CSV(t *testing.T) {
	cmd := NewMatrixCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"'x'", "--format", "csv"})

	err := cmd.Execute()
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "kind,value,error", lines[0])
	assert.Equal(t, "string,x,", lines[1])
	assert.Contains(t, lines[2], "invalid integer literal")
	assert.Contains(t, lines[3], "invalid float literal")
	assert.Equal(t, "bool,false,", lines[4])
}

func TestMatrixCommand_Markdown(t *testing.T) {
	cmd := NewMatrixCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"7", "--format", "md"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "| Kind | Value |")
	assert.Contains(t, output, "| --- | --- |")
	assert.Contains(t, output, "| float | 7.0 |")
	assert.Contains(t, output, "| bool | true |")
}

func TestMatrixCommand_ForcedSourceKind(t *testing.T) {
	cmd := NewMatrixCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"true", "--as", "string", "--format", "json"})

	err := cmd.Execute()
	require.NoError(t, err)

	var result MatrixOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, "string", result.Kind)
}

func TestMatrixCommand_UnknownSourceKind(t *testing.T) {
	cmd := NewMatrixCommand()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"1", "--as", "decimal"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

func TestBuildMatrix(t *testing.T) {
	out := buildMatrix("7", coerce.Detect("7"))

	assert.Equal(t, "7", out.Input)
	assert.Equal(t, "int", out.Kind)
	require.Len(t, out.Rows, 4)
	assert.Equal(t, MatrixRow{Kind: "string", Value: "7"}, out.Rows[0])
	assert.Equal(t, MatrixRow{Kind: "int", Value: "7"}, out.Rows[1])
	assert.Equal(t, MatrixRow{Kind: "float", Value: "7.0"}, out.Rows[2])
	assert.Equal(t, MatrixRow{Kind: "bool", Value: "true"}, out.Rows[3])
}

func TestBuildMatrixCollectsErrors(t *testing.T) {
	out := buildMatrix("'abc'", coerce.Detect("'abc'"))

	require.Len(t, out.Rows, 4)
	assert.Empty(t, out.Rows[0].Error)
	assert.Contains(t, out.Rows[1].Error, "invalid integer literal")
	assert.Contains(t, out.Rows[2].Error, "invalid float literal")
	assert.Equal(t, "false", out.Rows[3].Value)
}

func TestEscapeCSV(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"a,b", `"a,b"`},
		{`say "hi"`, `"say ""hi"""`},
		{"line\nbreak", "\"line\nbreak\""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, escapeCSV(tt.in), "escapeCSV(%q)", tt.in)
	}
}
