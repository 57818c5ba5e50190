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
)

func writeConfig(t *testing.T, extra string) (dir, path string) {
	t.Helper()

	schemaDir, err := filepath.Abs("../../testdata/schema")
	require.NoError(t, err)

	dir = t.TempDir()
	path = filepath.Join(dir, "vrmgen.yaml")
	body := "schemaDir: " + schemaDir + "\noutput: include/VRM.h\n" + extra
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return dir, path
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()

	var out, errOut bytes.Buffer
	code = runWithArgs(context.Background(), args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestGen(t *testing.T) {
	dir, path := writeConfig(t, "")

	code, _, stderr := runCLI(t, "-config", path)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "header written")
	assert.Contains(t, stderr, `msg="config loaded" path=`+path)

	data, err := os.ReadFile(filepath.Join(dir, "include", "VRM.h"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "namespace VRMC_VRM_1_0 {")
}

func TestGen_FailureLeavesNoOutput(t *testing.T) {
	dir, path := writeConfig(t, "versions: [\"0.0\", \"2.0\"]\n")

	code, _, stderr := runCLI(t, "-config", path, "gen")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "gen failed")

	_, err := os.Stat(filepath.Join(dir, "include", "VRM.h"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestCheck(t *testing.T) {
	dir, path := writeConfig(t, "")

	doc := filepath.Join(dir, "avatar.gltf.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{
		"asset": {"version": "2.0"},
		"extensions": {"VRMC_vrm": {"specVersion": "1.0", "meta": {"name": "A", "authors": ["me"], "avatarPermission": "everyone"}}}
	}`), 0o644))

	code, stdout, stderr := runCLI(t, "-config", path, "check", "-extension", "VRMC_vrm", "-rewrite", doc)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "document ok")
	assert.Contains(t, stdout, `"avatarPermission":"everyone"`)

	code, stdout, stderr = runCLI(t, "-config", path, "check", "-version", "1.0", "-type", "Meta", "-dump", doc)
	assert.Equal(t, 1, code, stdout)
	assert.Contains(t, stderr, "required field not found")
}

func TestCheck_UnknownLiteral(t *testing.T) {
	dir, path := writeConfig(t, "")

	doc := filepath.Join(dir, "meta.json")
	require.NoError(t, os.WriteFile(doc, []byte(`{"name":"A","authors":[],"avatarPermission":"nobody"}`), 0o644))

	code, _, stderr := runCLI(t, "-config", path, "check", "-type", "Meta", doc)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown AvatarPermission value: nobody")

	_, lenient := writeConfig(t, "strictEnums: false\n")
	code, _, stderr = runCLI(t, "-config", lenient, "check", "-type", "Meta", doc)
	assert.Equal(t, 0, code, stderr)
}

func TestUsageErrors(t *testing.T) {
	_, path := writeConfig(t, "")

	code, _, stderr := runCLI(t, "-config", path, "frobnicate")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, `unknown command "frobnicate"`)

	code, _, stderr = runCLI(t, "-config", path, "check")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "exactly one JSON document")

	code, _, _ = runCLI(t, "-config", path, "check", "-version", "9.9", "x.json")
	assert.Equal(t, 2, code)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vrmgen.yaml")

	code, stdout, _ := runCLI(t, "-config", path, "init")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "wrote "))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "namespacePrefix: VRMC_VRM_")

	code, _, stderr := runCLI(t, "-config", path, "init")
	assert.Equal(t, 2, code)
	assert.Contains(t, stderr, "already exists")

	code, _, _ = runCLI(t, "-config", path, "init", "-force")
	assert.Equal(t, 0, code)
}

func TestVersion(t *testing.T) {
	code, stdout, _ := runCLI(t, "version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(stdout, "vrm-type-generator "))
}
