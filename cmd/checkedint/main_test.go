package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eigerco/checkedint/internal/boundary"
	"github.com/eigerco/checkedint/pkg/checked"
)

func TestParseConfig(t *testing.T) {
	var stderr bytes.Buffer

	cfg, err := parseConfig(nil, &stderr)
	require.NoError(t, err)
	assert.Equal(t, []string{"int32", "uint32"}, cfg.types)
	assert.Equal(t, boundary.DefaultOps, cfg.ops)

	cfg, err = parseConfig([]string{"-types", "all", "-ops", "rem, neg", "-extended"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, boundary.Types, cfg.types)
	assert.Equal(t, []checked.Op{checked.OpRem, checked.OpNeg}, cfg.ops)
	assert.True(t, cfg.extended)

	for _, args := range [][]string{
		{"-types", "int128"},
		{"-ops", "pow"},
		{"-ops", ""},
		{"-record", "a", "-verify", "b"},
		{"-log-level", "loud"},
		{"-log-type", "xml"},
		{"-no-such-flag"},
	} {
		_, err := parseConfig(args, &stderr)
		assert.ErrorIs(t, err, errUsage, strings.Join(args, " "))
	}
}

func TestRealMain_Print(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := realMain([]string{"-types", "int32,uint32", "-log-level", "error"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	out := stdout.String()
	assert.Contains(t, out, "1 + 1: 2\n")
	assert.Contains(t, out, "-2147483648 / -1: overflow\n")
	assert.Contains(t, out, "4294967295 + 1: overflow\n")
	assert.Contains(t, out, strings.Repeat("-", 70)+"\n")
}

func TestRealMain_RecordVerify(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "golden")
	var stdout, stderr bytes.Buffer

	code := realMain([]string{"-types", "int8,uint8", "-record", dir, "-log-level", "error"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	stdout.Reset()
	code = realMain([]string{"-types", "int8,uint8", "-verify", dir, "-log-level", "error"}, &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())

	stderr.Reset()
	code = realMain([]string{"-types", "int8", "-extended", "-verify", dir, "-log-level", "error"}, &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr.String(), "golden: matrix differs from record for int8")
	assert.Contains(t, stderr.String(), "+++ current/int8")

	stderr.Reset()
	code = realMain([]string{"-types", "int16", "-verify", dir, "-log-level", "error"}, &stdout, &stderr)
	assert.Equal(t, exitFailure, code)
	assert.Contains(t, stderr.String(), "golden: no recorded matrix for int16")
}

func TestRealMain_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, exitBadUsage, realMain([]string{"-types", "float64"}, &stdout, &stderr))
	assert.Equal(t, exitOK, realMain([]string{"-h"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}
