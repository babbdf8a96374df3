package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runCLI(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunSuccess(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "phone",
			args: []string{"--type", "phone", "--input", "(555) 123-4567"},
			want: "5551234567\n",
		},
		{
			name: "phone e164",
			args: []string{"--type=phone", "--input=123-456-7890", "--output_format=e164"},
			want: "+11234567890\n",
		},
		{
			name: "date strftime",
			args: []string{"--type", "date", "--input", "01/01/2023", "--input_format", "%m/%d/%Y", "--output_format", "%Y-%m-%d"},
			want: "2023-01-01\n",
		},
		{
			name: "date tokens",
			args: []string{"--type", "date", "--input", "14-03-2024", "--input_format", "DD-MM-YYYY"},
			want: "2024-03-14\n",
		},
		{
			name: "string",
			args: []string{"--type", "string", "--input", "  Hello World  "},
			want: "hello world\n",
		},
		{
			name: "region",
			args: []string{"--type", "phone", "--input", "020 7946 0958", "--region", "GB", "--output_format", "e164"},
			want: "+442079460958\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(tc.args...)
			assert.Equal(t, exitOK, code, "stderr: %s", stderr)
			assert.Equal(t, tc.want, stdout)
		})
	}
}

func TestRunNormalizationFailures(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name:    "unsupported type",
			args:    []string{"--type=email", "--input=someone@example.com"},
			message: `unsupported data type "email"`,
		},
		{
			name:    "malformed date",
			args:    []string{"--type=date", "--input=not-a-date"},
			message: `cannot parse date "not-a-date"`,
		},
		{
			name:    "short phone",
			args:    []string{"--type=phone", "--input=555-1234"},
			message: `cannot parse phone "555-1234"`,
		},
		{
			name:    "bad output format",
			args:    []string{"--type=string", "--input=abc", "--output_format=shout"},
			message: `invalid string format "shout"`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(append(tc.args, "--log_level=CRITICAL")...)
			assert.Equal(t, exitFailure, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tc.message)
		})
	}
}

func TestRunUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing type", []string{"--input", "x"}},
		{"missing input", []string{"--type", "phone"}},
		{"unknown flag", []string{"--type", "phone", "--input", "x", "--colour"}},
		{"bad log level", []string{"--type", "phone", "--input", "x", "--log_level", "LOUD"}},
		{"bad region", []string{"--type", "phone", "--input", "x", "--region", "XX"}},
		{"positional argument", []string{"--type", "phone", "--input", "x", "extra"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(tc.args...)
			assert.Equal(t, exitUsage, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "Error:")
		})
	}
}

func TestRunHelp(t *testing.T) {
	code, stdout, _ := runCLI("-h")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "--input_format")
	assert.Contains(t, stdout, "--log_level")
}

func TestRunDebugLogsToStderr(t *testing.T) {
	code, stdout, stderr := runCLI("--type", "phone", "--input", "555.123.4567", "--log_level", "DEBUG")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "5551234567\n", stdout)
	assert.Contains(t, stderr, "Parsed phone number")
}
