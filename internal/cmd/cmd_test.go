package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err = root.Execute()
	return buf.String(), err
}

func TestRootCommand(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("rootCmd is nil")
	}

	if rootCmd.Use != "toyhaven" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "toyhaven")
	}

	expectedCmds := []string{"shop", "admin", "login", "logout", "whoami", "version"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}

	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	output, err := executeCommand(rootCmd, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(output, "toyhaven") {
		t.Errorf("version output = %q, want it to mention toyhaven", output)
	}
	if !strings.Contains(output, version) {
		t.Errorf("version output = %q, want it to contain %q", output, version)
	}
}

func TestLoginFlags(t *testing.T) {
	if loginCmd.Flags().Lookup("email") == nil {
		t.Error("login command is missing the --email flag")
	}
	if loginCmd.Flags().Lookup("admin") == nil {
		t.Error("login command is missing the --admin flag")
	}
	if logoutCmd.Flags().Lookup("admin") == nil {
		t.Error("logout command is missing the --admin flag")
	}
}
