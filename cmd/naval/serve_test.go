package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "naval.env")
	content := "NAVAL_SSH_ADDR=:2299\nNAVAL_HOST_KEY=/tmp/naval_key\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	t.Setenv("NAVAL_DB", "/tmp/from-env.db")

	saved := []string{flagEnvFile, flagSSHAddr, flagHostKey, flagDBPath}
	t.Cleanup(func() {
		flagEnvFile, flagSSHAddr, flagHostKey, flagDBPath = saved[0], saved[1], saved[2], saved[3]
		os.Unsetenv("NAVAL_SSH_ADDR")
		os.Unsetenv("NAVAL_HOST_KEY")
		serveCmd.Flag("host-key").Changed = false
	})

	// An explicit flag wins over the environment.
	if err := serveCmd.Flags().Set("host-key", "/keys/explicit"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	flagEnvFile = envFile

	if err := applyEnv(serveCmd); err != nil {
		t.Fatalf("applyEnv failed: %v", err)
	}

	if flagSSHAddr != ":2299" {
		t.Errorf("flagSSHAddr = %q, expected :2299 from env file", flagSSHAddr)
	}
	if flagDBPath != "/tmp/from-env.db" {
		t.Errorf("flagDBPath = %q, expected value from environment", flagDBPath)
	}
	if flagHostKey != "/keys/explicit" {
		t.Errorf("flagHostKey = %q, expected explicit flag to win", flagHostKey)
	}
}

func TestApplyEnvMissingFile(t *testing.T) {
	saved := flagEnvFile
	t.Cleanup(func() { flagEnvFile = saved })

	flagEnvFile = filepath.Join(t.TempDir(), "absent.env")
	if err := applyEnv(serveCmd); err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}
