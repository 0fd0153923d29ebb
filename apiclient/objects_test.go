package apiclient

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustCreate(t *testing.T, client *GaiaClient, objtype string, doc Document) Document {
	t.Helper()
	created, err := client.CreateObject(objtype, doc)
	if err != nil {
		t.Fatalf("CreateObject failed: %v", err)
	}
	if created.ID() == "" {
		t.Fatal("CreateObject returned a document without an id")
	}
	return created
}

func waypointDoc(title string) Document {
	return Document{
		"type":       "Feature",
		"properties": map[string]interface{}{"title": title},
	}
}

func TestObjectCRUD(t *testing.T) {
	f := newFakeGaia(t)
	client := f.newClient(t)

	created := mustCreate(t, client, Waypoint, waypointDoc("Camp"))

	fetched, err := client.GetObject(Waypoint, created.ID())
	if err != nil {
		t.Fatalf("GetObject failed: %v", err)
	}
	if fetched.Title() != "Camp" {
		t.Errorf("Title() = %q, want Camp", fetched.Title())
	}

	byName, err := client.GetObjectByName(Waypoint, "Camp")
	if err != nil {
		t.Fatalf("GetObjectByName failed: %v", err)
	}
	if byName.ID() != created.ID() {
		t.Errorf("GetObjectByName returned %q, want %q", byName.ID(), created.ID())
	}

	fetched.SetTitle("Camp2")
	if _, err := client.PutObject(Waypoint, fetched); err != nil {
		t.Fatalf("PutObject failed: %v", err)
	}
	renamed, err := client.GetObject(Waypoint, created.ID())
	if err != nil {
		t.Fatal(err)
	}
	if renamed.Title() != "Camp2" {
		t.Errorf("Title() after rename = %q", renamed.Title())
	}

	if err := client.DeleteObject(Waypoint, created.ID()); err != nil {
		t.Fatalf("DeleteObject failed: %v", err)
	}
	if _, err := client.GetObject(Waypoint, created.ID()); !IsNotFound(err) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListObjectsNormalizesTitle(t *testing.T) {
	f := newFakeGaia(t)
	client := f.newClient(t)

	// Folders carry their name only inside properties; listings must
	// still come back with Title filled.
	mustCreate(t, client, Folder, Document{"properties": map[string]interface{}{"name": "Trip"}})
	mustCreate(t, client, Waypoint, waypointDoc("Camp"))

	folders, err := client.ListObjects(Folder)
	if err != nil {
		t.Fatal(err)
	}
	if len(folders) != 1 || folders[0].Title != "Trip" {
		t.Errorf("folder listing = %v, want Title Trip", folders)
	}

	waypoints, err := client.ListObjects(Waypoint)
	if err != nil {
		t.Fatal(err)
	}
	if len(waypoints) != 1 || waypoints[0].Title != "Camp" {
		t.Errorf("waypoint listing = %v, want Title Camp", waypoints)
	}

	// Name resolution rides on the normalized titles.
	byName, err := client.GetObjectByName(Folder, "Trip")
	if err != nil {
		t.Fatalf("GetObjectByName failed: %v", err)
	}
	if byName.Title() != "Trip" {
		t.Errorf("resolved folder title = %q", byName.Title())
	}
}

func TestGetObjectByNameErrors(t *testing.T) {
	f := newFakeGaia(t)
	client := f.newClient(t)

	mustCreate(t, client, Waypoint, waypointDoc("Twin"))
	mustCreate(t, client, Waypoint, waypointDoc("Twin"))

	if _, err := client.GetObjectByName(Waypoint, "Nonesuch"); !IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := client.GetObjectByName(Waypoint, "Twin"); !IsDuplicate(err) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestPutObjectRequiresID(t *testing.T) {
	f := newFakeGaia(t)
	client := f.newClient(t)
	if _, err := client.PutObject(Waypoint, waypointDoc("Camp")); err == nil {
		t.Error("PutObject without an id should fail")
	}
}

func TestFolderMembership(t *testing.T) {
	f := newFakeGaia(t)
	client := f.newClient(t)

	folder := mustCreate(t, client, Folder, Document{"properties": map[string]interface{}{"name": "Trip"}})
	wpt := mustCreate(t, client, Waypoint, waypointDoc("Camp"))

	if _, err := client.AddObjectToFolder(folder.ID(), Waypoint, wpt.ID()); err != nil {
		t.Fatalf("AddObjectToFolder failed: %v", err)
	}
	// Adding again must not duplicate the membership.
	if _, err := client.AddObjectToFolder(folder.ID(), Waypoint, wpt.ID()); err != nil {
		t.Fatalf("second AddObjectToFolder failed: %v", err)
	}
	updated, err := client.GetObject(Folder, folder.ID())
	if err != nil {
		t.Fatal(err)
	}
	members, _ := updated.Properties()["waypoints"].([]interface{})
	if len(members) != 1 || members[0] != wpt.ID() {
		t.Errorf("folder waypoints = %v", members)
	}

	if _, err := client.RemoveObjectFromFolder(folder.ID(), Waypoint, wpt.ID()); err != nil {
		t.Fatalf("RemoveObjectFromFolder failed: %v", err)
	}
	if _, err := client.RemoveObjectFromFolder(folder.ID(), Waypoint, wpt.ID()); !IsNotFound(err) {
		t.Errorf("removing a non-member should be ErrNotFound, got %v", err)
	}
}

func TestSetObjectsArchive(t *testing.T) {
	f := newFakeGaia(t)
	client := f.newClient(t)

	a := mustCreate(t, client, Waypoint, waypointDoc("A"))
	mustCreate(t, client, Waypoint, waypointDoc("B"))

	if err := client.SetObjectsArchive(Waypoint, []string{a.ID()}, true); err != nil {
		t.Fatalf("SetObjectsArchive failed: %v", err)
	}

	active, err := client.ListObjectsArchived(Waypoint, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 1 || active[0].Title != "B" {
		t.Errorf("active list = %v, want only B", active)
	}
	all, err := client.ListObjects(Waypoint)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("full list has %d objects, want 2", len(all))
	}
}

func TestExportObject(t *testing.T) {
	f := newFakeGaia(t)
	client := f.newClient(t)
	wpt := mustCreate(t, client, Waypoint, waypointDoc("Camp"))

	data, err := client.ExportObject(Waypoint, wpt.ID(), "gpx")
	if err != nil {
		t.Fatalf("ExportObject failed: %v", err)
	}
	if !strings.Contains(string(data), "<gpx") {
		t.Errorf("export data = %q", data)
	}

	if _, err := client.ExportObject(Waypoint, wpt.ID(), "csv"); err == nil {
		t.Error("unsupported format should fail")
	}
}

func TestUploadFile(t *testing.T) {
	f := newFakeGaia(t)
	client := f.newClient(t)

	path := filepath.Join(t.TempDir(), "hike.gpx")
	if err := os.WriteFile(path, []byte("<gpx></gpx>"), 0644); err != nil {
		t.Fatal(err)
	}

	folder, err := client.UploadFile(path)
	if err != nil {
		t.Fatalf("UploadFile failed: %v", err)
	}
	if folder == nil {
		t.Fatal("UploadFile reported the upload as queued")
	}
	if folder.Title() != "hike.gpx" {
		t.Errorf("upload folder title = %q", folder.Title())
	}
}

func TestRaw(t *testing.T) {
	f := newFakeGaia(t)
	client := f.newClient(t)
	mustCreate(t, client, Waypoint, waypointDoc("Camp"))

	resp, err := client.Raw("GET", "/api/objects/waypoint", map[string]string{"count": "10"})
	if err != nil {
		t.Fatalf("Raw failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		t.Errorf("Raw status = %d", resp.StatusCode)
	}
}
