package main

import (
	"bytes"
	"testing"
)

func TestVersionMatchesFlag(t *testing.T) {
	var cmdOut bytes.Buffer
	printVersion(&cmdOut, rootCmd)

	var flagOut bytes.Buffer
	rootCmd.SetOut(&flagOut)
	rootCmd.SetArgs([]string{"--version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	assertContains(t, flagOut.String(), []string{version})
	assertContains(t, cmdOut.String(), []string{"confctl " + rootCmd.Version + "\n", "commit: " + commit})
	if rootCmd.Version != version {
		t.Errorf("rootCmd.Version = %q, want %q", rootCmd.Version, version)
	}
}
