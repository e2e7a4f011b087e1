package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRunDefaultSequence(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(nil, &stdout, &stderr)

	require.Equal(t, 0, code)
	assert.Equal(t, "this is 1.4\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunWithValues(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"single integer", []string{"5"}, "this is 5\n"},
		{"single float", []string{"5.0"}, "this is 5\n"},
		{"negative after separator", []string{"--", "-2.5", "7"}, "this is 2.5\n"},
		{"negative zero", []string{"--", "-0", "1"}, "this is 0\n"},
		{"infinity", []string{"--", "-Inf"}, "this is +Inf\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(tt.args, &stdout, &stderr)

			require.Equal(t, 0, code, "stderr: %s", stderr.String())
			assert.Equal(t, tt.want, stdout.String())
		})
	}
}

func TestRunInvalidValue(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"1", "abc"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), `invalid value "abc" at position 2`)
	assert.Contains(t, stderr.String(), "hint:")
}

func TestRunVerboseLogsToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run([]string{"-v"}, &stdout, &stderr)

	require.Equal(t, 0, code)
	assert.Equal(t, "this is 1.4\n", stdout.String())
	assert.Contains(t, stderr.String(), "magnitudes computed")
	assert.Contains(t, stderr.String(), "kernel")
}

func TestParseSequence(t *testing.T) {
	seq, err := parseSequence([]string{"-1.4", "2.6", "-3.2"})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1.4, 2.6, -3.2}, seq)

	_, err = parseSequence([]string{"1e400x"})
	require.Error(t, err)
}

func TestPrintFirstEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := printFirst(&buf, zap.NewNop().Sugar(), nil)
	require.Error(t, err)
	assert.Empty(t, buf.String())
}

func TestDefaultSequenceUnchanged(t *testing.T) {
	var stdout bytes.Buffer
	require.Equal(t, 0, run(nil, &stdout, &bytes.Buffer{}))
	assert.Equal(t, []float64{-1.4, 2.6, -3.2}, defaultSequence)
}
