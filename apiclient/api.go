package apiclient

//go:generate mockgen -source=api.go -package=apiclient -destination=api_mock.go

import (
	"net/http"
)

// Object types known to the API.
const (
	Waypoint = "waypoint"
	Track    = "track"
	Folder   = "folder"
)

// Object is one entry in an API listing. Folder entries additionally
// carry their membership lists and parent reference.
type Object struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Folder      string   `json:"folder"`
	Parent      string   `json:"parent,omitempty"`
	Deleted     bool     `json:"deleted"`
	TimeCreated string   `json:"time_created"`
	Waypoints   []string `json:"waypoints,omitempty"`
	Tracks      []string `json:"tracks,omitempty"`
	Children    []string `json:"children,omitempty"`
	Maps        []string `json:"maps,omitempty"`
}

// Empty reports whether a folder object has no members of any kind.
func (o Object) Empty() bool {
	return len(o.Waypoints) == 0 && len(o.Tracks) == 0 &&
		len(o.Children) == 0 && len(o.Maps) == 0
}

// Document is a full API object as returned by a direct GET. The server's
// representation is a GeoJSON-ish structure; it is kept schemaless here
// because round-tripping unknown keys matters more than static typing.
type Document map[string]interface{}

func (d Document) ID() string {
	id, _ := d["id"].(string)
	return id
}

// Properties returns the document's properties map, creating it if absent.
func (d Document) Properties() map[string]interface{} {
	if props, ok := d["properties"].(map[string]interface{}); ok {
		return props
	}
	props := map[string]interface{}{}
	d["properties"] = props
	return props
}

// Title returns the display name of a document. Waypoints and tracks
// carry properties.title, folders properties.name, bare documents title.
func (d Document) Title() string {
	props, _ := d["properties"].(map[string]interface{})
	if props != nil {
		if title, ok := props["title"].(string); ok && title != "" {
			return title
		}
		if name, ok := props["name"].(string); ok && name != "" {
			return name
		}
	}
	title, _ := d["title"].(string)
	return title
}

func (d Document) SetTitle(title string) {
	d.Properties()["title"] = title
}

// TimeCreated returns the document's creation stamp, or "".
func (d Document) TimeCreated() string {
	if ts, ok := d["time_created"].(string); ok {
		return ts
	}
	props, _ := d["properties"].(map[string]interface{})
	ts, _ := props["time_created"].(string)
	return ts
}

// Client is the gaiagps API surface the shell commands are written
// against.
type Client interface {
	// TestAuth reports whether the current session is logged in.
	TestAuth() (bool, error)

	// ListObjects returns all objects of a type, archived included.
	ListObjects(objtype string) ([]Object, error)

	// ListObjectsArchived is ListObjects with control over whether
	// archived objects are included.
	ListObjectsArchived(objtype string, includeArchived bool) ([]Object, error)

	// GetObject fetches a full object by ID.
	GetObject(objtype, id string) (Document, error)

	// GetObjectByName fetches a full object by unique title.
	GetObjectByName(objtype, name string) (Document, error)

	// ExportObject fetches an object rendered as "gpx" or "kml".
	ExportObject(objtype, id, format string) ([]byte, error)

	CreateObject(objtype string, doc Document) (Document, error)
	PutObject(objtype string, doc Document) (Document, error)
	DeleteObject(objtype, id string) error

	AddObjectToFolder(folderID, objtype, id string) (Document, error)
	RemoveObjectFromFolder(folderID, objtype, id string) (Document, error)

	// SetObjectsArchive flips the sync/archive flag on a batch of objects.
	SetObjectsArchive(objtype string, ids []string, archived bool) error

	// UploadFile pushes a track/waypoint file to the server. It returns
	// the new folder the server filed the contents under, or nil if the
	// server queued the upload for later processing.
	UploadFile(path string) (Document, error)

	// Raw issues an arbitrary request against the API, for the developer
	// query command.
	Raw(method, path string, params map[string]string) (*http.Response, error)

	// BaseURL returns the service base URL, for constructing browser links.
	BaseURL() string
}
