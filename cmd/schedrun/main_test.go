package main

import (
	"log/slog"
	"testing"

	"github.com/omeyang/schedkit/pkg/config/xjobconf"
)

func TestBuildActions(t *testing.T) {
	file := &xjobconf.File{
		Jobs: []xjobconf.JobConfig{
			{Name: "plain", Every: "1s", Command: []string{"true"}},
			{Name: "cancelable", Every: "1s", WithCancel: true, Command: []string{"sleep", "10"}},
			{Name: "off", Disabled: true},
		},
	}

	actions, err := buildActions(slog.Default(), file)
	if err != nil {
		t.Fatalf("buildActions: %v", err)
	}

	if _, ok := actions.Run["plain"]; !ok {
		t.Error("plain job missing from Run actions")
	}
	if _, ok := actions.RunCancel["cancelable"]; !ok {
		t.Error("cancelable job missing from RunCancel actions")
	}
	if _, ok := actions.Run["off"]; ok {
		t.Error("disabled job should not produce an action")
	}
}

func TestBuildActionsMissingCommand(t *testing.T) {
	file := &xjobconf.File{
		Jobs: []xjobconf.JobConfig{{Name: "nocmd", Every: "1s"}},
	}
	if _, err := buildActions(slog.Default(), file); err == nil {
		t.Error("job without command should fail")
	}
}

func TestCreateApp(t *testing.T) {
	app := createApp()
	if app.Name != "schedrun" {
		t.Errorf("app name = %q", app.Name)
	}
	if app.DefaultCommand != "run" {
		t.Errorf("default command = %q", app.DefaultCommand)
	}
}
