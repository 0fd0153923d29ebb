package shell

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/8cH9azbsFifZ/gaiagpsclient/apiclient"
)

func TestAddWaypointInvalidCoordinates(t *testing.T) {
	mockCtrl, client := newMock(t)
	defer mockCtrl.Finish()
	// Validation fails before any client call is made.

	cases := []struct {
		args []string
		want string
	}{
		{[]string{"Camp", "north", "-122.6"}, "Latitude must be in decimal degree format"},
		{[]string{"Camp", "95", "-122.6"}, "Latitude must be between -90 and 90"},
		{[]string{"Camp", "45.5", "-190"}, "Longitude must be between -180 and 180"},
		{[]string{"Camp", "45.5", "-122.6", "-5"}, "Altitude must be positive"},
	}
	for _, c := range cases {
		out, err := runCLI(t, client, append([]string{"waypoint", "add"}, c.args...)...)
		if err == nil {
			t.Errorf("add %v should fail", c.args)
		}
		if !strings.Contains(out, "Unable to add waypoint: "+c.want) {
			t.Errorf("add %v output = %q", c.args, out)
		}
	}
}

func TestAddWaypoint(t *testing.T) {
	mockCtrl, client := newMock(t)
	defer mockCtrl.Finish()
	client.EXPECT().CreateObject(apiclient.Waypoint, gomock.Any()).DoAndReturn(
		func(objtype string, doc apiclient.Document) (apiclient.Document, error) {
			if doc.Title() != "Camp" {
				t.Errorf("title = %q", doc.Title())
			}
			geometry, _ := doc["geometry"].(map[string]interface{})
			coords, _ := geometry["coordinates"].([]interface{})
			if len(coords) != 3 || coords[0] != -122.6 || coords[1] != 45.5 || coords[2] != 100 {
				t.Errorf("coordinates = %v", coords)
			}
			return apiclient.Document{"id": "w1"}, nil
		})

	if _, err := runCLI(t, client, "waypoint", "add", "Camp", "45.5", "-122.6", "100"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
}

func TestAddWaypointIconAlias(t *testing.T) {
	mockCtrl, client := newMock(t)
	defer mockCtrl.Finish()
	client.EXPECT().CreateObject(apiclient.Waypoint, gomock.Any()).DoAndReturn(
		func(objtype string, doc apiclient.Document) (apiclient.Document, error) {
			if icon := doc.Properties()["icon"]; icon != "campsite-24.png" {
				t.Errorf("icon = %v, want campsite-24.png", icon)
			}
			return apiclient.Document{"id": "w1"}, nil
		})

	if _, err := runCLI(t, client, "waypoint", "add", "--icon", "campsite", "Camp", "45.5", "-122.6"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
}

func TestAddWaypointNewFolder(t *testing.T) {
	mockCtrl, client := newMock(t)
	defer mockCtrl.Finish()
	client.EXPECT().CreateObject(apiclient.Waypoint, gomock.Any()).
		Return(apiclient.Document{"id": "w1"}, nil)
	client.EXPECT().CreateObject(apiclient.Folder, apiclient.Document{"title": "Trip"}).
		Return(apiclient.Document{"id": "f1", "title": "Trip"}, nil)
	client.EXPECT().AddObjectToFolder("f1", apiclient.Waypoint, "w1").
		Return(apiclient.Document{"id": "f1"}, nil)

	if _, err := runCLI(t, client, "waypoint", "add", "--new-folder", "Trip",
		"Camp", "45.5", "-122.6"); err != nil {
		t.Fatalf("add failed: %v", err)
	}
}

func TestAddWaypointDryRun(t *testing.T) {
	mockCtrl, client := newMock(t)
	defer mockCtrl.Finish()
	// No create calls at all.

	out, err := runCLI(t, client, "waypoint", "add", "--dry-run", "Camp", "45.5", "-122.6")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out, "Dry run; no action taken") {
		t.Errorf("output = %q", out)
	}
}

func TestCoords(t *testing.T) {
	mockCtrl, client := newMock(t)
	defer mockCtrl.Finish()
	client.EXPECT().GetObjectByName(apiclient.Waypoint, "Rainier").Return(apiclient.Document{
		"id": "w1",
		"geometry": map[string]interface{}{
			"coordinates": []interface{}{-121.72, 46.88},
		},
	}, nil)

	out, err := runCLI(t, client, "waypoint", "coords", "Rainier")
	if err != nil {
		t.Fatalf("coords failed: %v", err)
	}
	if out != "46.880000,-121.720000\n" {
		t.Errorf("output = %q", out)
	}
}

func TestCoordsMissingGeometry(t *testing.T) {
	mockCtrl, client := newMock(t)
	defer mockCtrl.Finish()
	client.EXPECT().GetObjectByName(apiclient.Waypoint, "Camp").Return(apiclient.Document{
		"id": "w1",
	}, nil)

	out, err := runCLI(t, client, "waypoint", "coords", "Camp")
	if err == nil {
		t.Error("expected a failure exit")
	}
	if !strings.Contains(out, "has no coordinates") {
		t.Errorf("output = %q", out)
	}
}

func TestListIcons(t *testing.T) {
	mockCtrl, client := newMock(t)
	defer mockCtrl.Finish()
	// Purely local, no client calls.

	out, err := runCLI(t, client, "waypoint", "list-icons")
	if err != nil {
		t.Fatalf("list-icons failed: %v", err)
	}
	if !strings.Contains(out, "campsite (campsite-24.png)") {
		t.Errorf("output missing campsite alias:\n%s", out)
	}
}
