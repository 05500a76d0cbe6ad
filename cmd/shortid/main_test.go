package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/shortid/internal/idgen"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	root.SetContext(context.Background())
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestGenerateCommand(t *testing.T) {
	var testCases = []struct {
		description string
		args        []string
		expect      string
		expectErr   bool
	}{
		{
			description: "century default",
			args:        []string{"generate", "--at", "2122-01-01T00:00:00"},
			expect:      "3RYsrI001\n",
		},
		{
			description: "prefix and count",
			args:        []string{"generate", "--at", "2022-05-15T10:45:00", "--prefix", "P10POD", "-n", "2"},
			expect:      "P10PODmjvg001\nP10PODmjvg002\n",
		},
		{
			description: "low rate wraparound",
			args:        []string{"gen", "--at", "2022-01-01T00:00:00", "--rate", "low", "--start", "3842", "-n", "2"},
			expect:      "0zz\n000\n",
		},
		{
			description: "before offset",
			args:        []string{"generate", "--at", "2021-12-31T23:59:59"},
			expectErr:   true,
		},
		{
			description: "bad radix",
			args:        []string{"generate", "--radix", "16"},
			expectErr:   true,
		},
		{
			description: "bad count",
			args:        []string{"generate", "-n", "0"},
			expectErr:   true,
		},
	}
	for _, testCase := range testCases {
		actual, err := execute(t, testCase.args...)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			continue
		}
		if !assert.NoError(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestGenerateCommand_Config(t *testing.T) {
	location := filepath.Join(t.TempDir(), "shortid.toml")
	content := "offset = \"2023-01-01T00:00:00\"\nrate = \"low\"\nradix = 36\nprefix = \"E\"\n"
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))

	actual, err := execute(t, "--config", location, "generate", "--at", "2023-01-01T00:00:36")
	require.NoError(t, err)
	assert.Equal(t, "E1001\n", actual)

	// flags override the file
	actual, err = execute(t, "--config", location, "generate", "--at", "2023-01-01T00:00:36", "--prefix", "F", "--radix", "62")
	require.NoError(t, err)
	assert.Equal(t, "Fa01\n", actual)
}

func TestCapacityCommand(t *testing.T) {
	actual, err := execute(t, "capacity")
	require.NoError(t, err)
	assert.Equal(t, "238328\n", actual)

	actual, err = execute(t, "capacity", "--rate", "low", "--radix", "36")
	require.NoError(t, err)
	assert.Equal(t, "1296\n", actual)
}

func TestParseCommand(t *testing.T) {
	actual, err := execute(t, "parse", "P10PODmjvg001", "--prefix", "P10POD")
	require.NoError(t, err)
	assert.Equal(t, "prefix\tP10POD\ntime\t2022-05-15T10:45:00\nsequence\t1\n", actual)

	_, err = execute(t, "parse", "X001", "--prefix", "P")
	assert.Error(t, err)
}

func TestNumeralCommands(t *testing.T) {
	actual, err := execute(t, "encode", "3155673600")
	require.NoError(t, err)
	assert.Equal(t, "3RYsrI\n", actual)

	actual, err = execute(t, "encode", "--radix", "36", "1295")
	require.NoError(t, err)
	assert.Equal(t, "ZZ\n", actual)

	_, err = execute(t, "encode", "-5")
	assert.Error(t, err)

	actual, err = execute(t, "decode", "--radix", "36", "zz")
	require.NoError(t, err)
	assert.Equal(t, "1295\n", actual)

	actual, err = execute(t, "pad", "x", "2")
	require.NoError(t, err)
	assert.Equal(t, "0x\n", actual)
}

func TestCompareCommand(t *testing.T) {
	original := idgen.NewFunc
	idgen.NewFunc = func() string { return "be810fec-5060-43f1-864a-8a87376c03ef" }
	defer func() { idgen.NewFunc = original }()

	actual, err := execute(t, "compare", "--prefix", "C")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(actual), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "shortid\tC"))
	assert.Equal(t, "uuid\tbe810fec-5060-43f1-864a-8a87376c03ef\t36", lines[1])
}

func TestVersionCommand(t *testing.T) {
	actual, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(actual, "shortid dev"))
}

func TestTraceFlag(t *testing.T) {
	location := filepath.Join(t.TempDir(), "spans.json")
	_, err := execute(t, "--trace", location, "generate", "--at", "2122-01-01T00:00:00")
	require.NoError(t, err)
	data, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Contains(t, string(data), "shortid.generate")
}
