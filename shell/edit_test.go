package shell

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	yaml "gopkg.in/yaml.v2"

	"github.com/8cH9azbsFifZ/gaiagpsclient/apiclient"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func campDoc() apiclient.Document {
	return apiclient.Document{
		"id": "w1",
		"properties": map[string]interface{}{
			"title":    "Camp",
			"icon":     "blue-pin-down.png",
			"notes":    "",
			"public":   false,
			"revision": 5,
		},
	}
}

func TestEditDump(t *testing.T) {
	mockCtrl, client := newMock(t)
	defer mockCtrl.Finish()
	chdir(t, t.TempDir())

	client.EXPECT().ListObjects(apiclient.Waypoint).Return([]apiclient.Object{
		{ID: "w1", Title: "Camp"},
	}, nil)
	client.EXPECT().GetObject(apiclient.Waypoint, "w1").Return(campDoc(), nil)

	out, err := runCLI(t, client, "waypoint", "edit", "Camp")
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if !strings.Contains(out, `Wrote 1 waypoints to "waypoints.yml"`) {
		t.Errorf("output = %q", out)
	}

	data, err := os.ReadFile("waypoints.yml")
	if err != nil {
		t.Fatalf("edit file was not written: %v", err)
	}
	var entries []editEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		t.Fatalf("edit file is not valid YAML: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "w1" {
		t.Errorf("entries = %v", entries)
	}
	if entries[0].Properties["title"] != "Camp" {
		t.Errorf("dumped properties = %v", entries[0].Properties)
	}
	if _, ok := entries[0].Properties["revision"]; !ok {
		t.Error("dump is missing the revision guard")
	}
}

func TestEditApplyFile(t *testing.T) {
	mockCtrl, client := newMock(t)
	defer mockCtrl.Finish()

	file := filepath.Join(t.TempDir(), "edits.yml")
	edits := []editEntry{{
		ID: "w1",
		Properties: map[string]interface{}{
			"title":    "Camp",
			"icon":     "red-pin-down.png",
			"notes":    "updated",
			"public":   false,
			"revision": 5,
		},
	}}
	data, err := yaml.Marshal(edits)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatal(err)
	}

	client.EXPECT().ListObjects(apiclient.Waypoint).Return([]apiclient.Object{
		{ID: "w1", Title: "Camp"},
	}, nil)
	client.EXPECT().GetObject(apiclient.Waypoint, "w1").Return(campDoc(), nil)
	client.EXPECT().PutObject(apiclient.Waypoint, gomock.Any()).DoAndReturn(
		func(objtype string, doc apiclient.Document) (apiclient.Document, error) {
			if doc.Properties()["icon"] != "red-pin-down.png" {
				t.Errorf("icon = %v", doc.Properties()["icon"])
			}
			if doc.Properties()["notes"] != "updated" {
				t.Errorf("notes = %v", doc.Properties()["notes"])
			}
			return doc, nil
		})

	out, err := runCLI(t, client, "waypoint", "edit", "Camp", "-f", file, "--verbose")
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if !strings.Contains(out, "Updated object 1 (Camp)") {
		t.Errorf("output = %q", out)
	}
}

func TestEditApplyStaleRevision(t *testing.T) {
	mockCtrl, client := newMock(t)
	defer mockCtrl.Finish()

	file := filepath.Join(t.TempDir(), "edits.yml")
	edits := []editEntry{{
		ID:         "w1",
		Properties: map[string]interface{}{"title": "Camp", "revision": 4},
	}}
	data, err := yaml.Marshal(edits)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatal(err)
	}

	client.EXPECT().ListObjects(apiclient.Waypoint).Return([]apiclient.Object{
		{ID: "w1", Title: "Camp"},
	}, nil)
	client.EXPECT().GetObject(apiclient.Waypoint, "w1").Return(campDoc(), nil)
	// Revision mismatch: no PutObject.

	out, err := runCLI(t, client, "waypoint", "edit", "Camp", "-f", file)
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if !strings.Contains(out, "has changed on the server or lists are out of sync") {
		t.Errorf("output = %q", out)
	}
}

func TestEditApplyLengthMismatch(t *testing.T) {
	mockCtrl, client := newMock(t)
	defer mockCtrl.Finish()

	file := filepath.Join(t.TempDir(), "edits.yml")
	edits := []editEntry{
		{ID: "w1", Properties: map[string]interface{}{"revision": 5}},
		{ID: "w2", Properties: map[string]interface{}{"revision": 5}},
	}
	data, err := yaml.Marshal(edits)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatal(err)
	}

	client.EXPECT().ListObjects(apiclient.Waypoint).Return([]apiclient.Object{
		{ID: "w1", Title: "Camp"},
	}, nil)

	out, err := runCLI(t, client, "waypoint", "edit", "Camp", "-f", file)
	if err == nil {
		t.Error("expected a failure exit")
	}
	if !strings.Contains(out, "input file contains 2 items but matched 1") {
		t.Errorf("output = %q", out)
	}
}

func TestEditNoMatches(t *testing.T) {
	mockCtrl, client := newMock(t)
	defer mockCtrl.Finish()
	client.EXPECT().ListObjects(apiclient.Waypoint).Return([]apiclient.Object{
		{ID: "w1", Title: "Camp"},
	}, nil)

	out, err := runCLI(t, client, "waypoint", "edit")
	if err == nil {
		t.Error("expected a failure exit")
	}
	if !strings.Contains(out, "No objects matched criteria.") {
		t.Errorf("output = %q", out)
	}
}

func TestEditInFolder(t *testing.T) {
	mockCtrl, client := newMock(t)
	defer mockCtrl.Finish()
	chdir(t, t.TempDir())

	client.EXPECT().GetObjectByName(apiclient.Folder, "Trip").Return(apiclient.Document{
		"id":         "f1",
		"properties": map[string]interface{}{"name": "Trip"},
	}, nil)
	// Once for the safety-path fallback listing, once inside findObjects.
	client.EXPECT().ListObjects(apiclient.Waypoint).Return([]apiclient.Object{
		{ID: "w1", Title: "Camp", Folder: "f1"},
		{ID: "w2", Title: "Home"},
	}, nil).Times(2)
	client.EXPECT().GetObject(apiclient.Waypoint, "w1").Return(campDoc(), nil)

	out, err := runCLI(t, client, "waypoint", "edit", "--in-folder", "Trip")
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if !strings.Contains(out, `Wrote 1 waypoints to "waypoints.yml"`) {
		t.Errorf("output = %q", out)
	}
}
