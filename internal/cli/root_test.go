package cli

import (
	"bytes"
	"testing"
)

func TestRootCommand(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	want := []string{"analyze", "render", "explore", "publish", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestAnalysisFlagsRegistered(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	for _, name := range []string{"analyze", "render", "explore", "publish"} {
		cmd, _, _ := root.Find([]string{name})
		for _, flag := range []string{"config", "exclude", "include-tests", "no-gitignore", "disable", "self-edges", "strict", "workers"} {
			if cmd.Flags().Lookup(flag) == nil {
				t.Errorf("%s: missing --%s", name, flag)
			}
		}
	}
}

func TestCompletion(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatalf("completion bash: %v", err)
	}
	if !bytes.Contains(out.Bytes(), []byte("injectgraph")) {
		t.Error("completion script should mention the command name")
	}
}
