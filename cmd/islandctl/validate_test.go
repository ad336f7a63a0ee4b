package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/milk9111/hexfolio/levels"
	"github.com/milk9111/hexfolio/prefabs"
)

func embeddedData(t *testing.T) *islandData {
	t.Helper()
	isl, err := levels.LoadIsland(levels.DefaultIsland)
	if err != nil {
		t.Fatalf("island: %v", err)
	}
	themes, err := prefabs.LoadThemesSpec()
	if err != nil {
		t.Fatalf("themes: %v", err)
	}
	objects, err := prefabs.LoadObjectsSpec()
	if err != nil {
		t.Fatalf("objects: %v", err)
	}
	return &islandData{island: isl, themes: themes, objects: objects}
}

func TestShippedDataIsClean(t *testing.T) {
	issues := checkIsland(embeddedData(t))
	if len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}

func TestCheckIslandFindsProblems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *islandData)
		want   string
		sev    severity
	}{
		{
			name: "duplicate coordinates",
			mutate: func(d *islandData) {
				d.island.Tiles = append(d.island.Tiles, levels.TileInfo{Q: 0, R: 0, Type: "dup"})
			},
			want: "shares coordinates",
			sev:  severityError,
		},
		{
			name: "detached tile",
			mutate: func(d *islandData) {
				d.island.Tiles = append(d.island.Tiles, levels.TileInfo{Q: 5, R: 5, Type: "grass"})
			},
			want: "touches no other tile",
			sev:  severityWarn,
		},
		{
			name: "unknown anchor",
			mutate: func(d *islandData) {
				d.objects.Objects[0].Anchor = "moon"
			},
			want: "anchor tile moon",
			sev:  severityError,
		},
		{
			name: "unthemed object",
			mutate: func(d *islandData) {
				delete(d.themes.Objects, "forge")
			},
			want: "no theme",
			sev:  severityError,
		},
		{
			name: "stale hover exemption",
			mutate: func(d *islandData) {
				d.objects.HoverExempt = append(d.objects.HoverExempt, "ghost")
			},
			want: "hover-exempt",
			sev:  severityWarn,
		},
		{
			name: "bad sidebar zone",
			mutate: func(d *islandData) {
				d.themes.Sidebar = append(d.themes.Sidebar, prefabs.SidebarSpec{Label: "Moon", Zone: "moon"})
			},
			want: "sidebar zone moon",
			sev:  severityError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := embeddedData(t)
			tt.mutate(d)
			issues := checkIsland(d)
			for _, is := range issues {
				if strings.Contains(is.Message, tt.want) {
					if is.Severity != tt.sev {
						t.Fatalf("expected severity %d, got %d", tt.sev, is.Severity)
					}
					return
				}
			}
			t.Fatalf("expected an issue containing %q, got %+v", tt.want, issues)
		})
	}
}

func TestReportFailsOnErrors(t *testing.T) {
	var buf bytes.Buffer
	err := report(&buf, []issue{
		{Severity: severityError, Subject: "a", Message: "broken"},
		{Severity: severityWarn, Subject: "b", Message: "odd"},
	})
	if err == nil {
		t.Fatalf("expected an error")
	}
	if !strings.Contains(buf.String(), "a: broken (error)") {
		t.Fatalf("unexpected output %q", buf.String())
	}
	buf.Reset()
	if err := report(&buf, nil); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}
