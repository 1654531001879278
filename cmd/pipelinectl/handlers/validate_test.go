package handlers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAWSCallerIdentity(t *testing.T) {
	orig := runCommand
	defer func() { runCommand = orig }()

	t.Run("parses account", func(t *testing.T) {
		runCommand = func(_ context.Context, _ string, _ ...string) (string, error) {
			return `{"UserId": "AIDEXAMPLE", "Account": "123456789012", "Arn": "arn:aws:iam::123456789012:user/tutorial"}`, nil
		}
		id, err := awsCallerIdentity(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "123456789012", id.Account)
	})

	t.Run("command failure", func(t *testing.T) {
		runCommand = func(_ context.Context, _ string, _ ...string) (string, error) {
			return "Unable to locate credentials", errors.New("exit status 255")
		}
		_, err := awsCallerIdentity(context.Background())
		require.Error(t, err)
	})

	t.Run("garbage output", func(t *testing.T) {
		runCommand = func(_ context.Context, _ string, _ ...string) (string, error) {
			return "not json", nil
		}
		_, err := awsCallerIdentity(context.Background())
		require.Error(t, err)
	})
}

func TestCheckInfrastructure(t *testing.T) {
	t.Run("deployed", func(t *testing.T) {
		restore := swapFactories(&mockRunner{available: true, outputs: goodOutputs()}, &mockStorage{}, &mockHosting{}, &mockIdentity{})
		defer restore()
		assert.True(t, checkInfrastructure(context.Background(), "terraform"))
	})

	t.Run("no state", func(t *testing.T) {
		restore := swapFactories(&mockRunner{available: true, outputsErr: assert.AnError}, &mockStorage{}, &mockHosting{}, &mockIdentity{})
		defer restore()
		assert.False(t, checkInfrastructure(context.Background(), "terraform"))
	})

	t.Run("empty outputs", func(t *testing.T) {
		restore := swapFactories(&mockRunner{available: true, outputs: map[string]any{}}, &mockStorage{}, &mockHosting{}, &mockIdentity{})
		defer restore()
		assert.False(t, checkInfrastructure(context.Background(), "terraform"))
	})
}

func TestCheckFiles(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.MkdirAll("terraform", 0o755))
	require.NoError(t, os.MkdirAll("data", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("terraform", "main.tf"), []byte("# tf"), 0o644))
	require.NoError(t, os.WriteFile("requirements.txt", []byte("pandas\n"), 0o644))

	results := checkFiles("terraform")
	require.Len(t, results, 3)
	assert.True(t, results[0], "terraform/main.tf exists")
	assert.True(t, results[1], "requirements.txt exists")
	assert.False(t, results[2], "dataset is missing")
}

func TestPythonInterpreterPrefersVenv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	assert.Equal(t, "python3", pythonInterpreter())

	require.NoError(t, os.MkdirAll(venvBin(), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(venvBin(), "python"), []byte("#!/bin/sh\n"), 0o755))
	assert.Equal(t, filepath.Join(venvBin(), "python"), pythonInterpreter())
}
