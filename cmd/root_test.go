package cmd

import (
	"testing"

	"github.com/inovacc/jotr/internal/application"
)

func TestGetRootCmd(t *testing.T) {
	root := GetRootCmd()

	if root.Use != application.AppName {
		t.Errorf("root command Use = %q, want %q", root.Use, application.AppName)
	}

	expected := []string{"new", "list", "show", "edit", "rm", "export", "configure"}

	for _, name := range expected {
		found := false

		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true

				break
			}
		}

		if !found {
			t.Errorf("subcommand %q is not registered", name)
		}
	}

	if flag := root.PersistentFlags().Lookup("verbose"); flag == nil {
		t.Error("persistent flag --verbose is not registered")
	}
}
