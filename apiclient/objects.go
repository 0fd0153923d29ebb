package apiclient

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func (g *GaiaClient) getJSON(uri string, out interface{}) error {
	req, err := http.NewRequest("GET", uri, nil)
	if err != nil {
		return err
	}
	resp, err := g.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return statusError(resp, uri)
	}
	return errors.Wrapf(json.NewDecoder(resp.Body).Decode(out), "unable to decode %s", uri)
}

func (g *GaiaClient) sendJSON(method, uri string, body interface{}) (Document, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "unable to encode request")
	}
	req, err := http.NewRequest(method, uri, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := g.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, statusError(resp, uri)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		// Some mutations return an empty body; that is still success.
		return nil, nil
	}
	return doc, nil
}

func (g *GaiaClient) ListObjects(objtype string) ([]Object, error) {
	return g.ListObjectsArchived(objtype, true)
}

// listEntry is one raw listing row. Some object types carry their title
// only inside properties, so the properties blob rides along for
// normalization.
type listEntry struct {
	Object
	Properties map[string]interface{} `json:"properties"`
}

func (g *GaiaClient) ListObjectsArchived(objtype string, includeArchived bool) ([]Object, error) {
	query := url.Values{}
	query.Set("count", "5000")
	query.Set("page", "1")
	query.Set("routepoints", "false")
	if includeArchived {
		query.Set("show_archived", "true")
	} else {
		query.Set("show_archived", "false")
	}

	var entries []listEntry
	uri := g.gurl("api", "objects", objtype) + "?" + query.Encode()
	if err := g.getJSON(uri, &entries); err != nil {
		return nil, err
	}
	objs := make([]Object, 0, len(entries))
	for _, e := range entries {
		if e.Title == "" && e.Properties != nil {
			e.Title = Document{"properties": e.Properties}.Title()
		}
		objs = append(objs, e.Object)
	}
	return objs, nil
}

func (g *GaiaClient) GetObject(objtype, id string) (Document, error) {
	var doc Document
	if err := g.getJSON(g.gurl("api", "objects", objtype, id), &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (g *GaiaClient) GetObjectByName(objtype, name string) (Document, error) {
	objs, err := g.ListObjects(objtype)
	if err != nil {
		return nil, err
	}
	obj, err := Find(objs, "title", name)
	if err != nil {
		return nil, err
	}
	return g.GetObject(objtype, obj.ID)
}

func (g *GaiaClient) ExportObject(objtype, id, format string) ([]byte, error) {
	if format != "gpx" && format != "kml" {
		return nil, errors.Errorf("unsupported export format %q", format)
	}
	uri := g.base + "/api/objects/" + objtype + "/" + id + "." + format
	req, err := http.NewRequest("GET", uri, nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, uri)
	}
	return io.ReadAll(resp.Body)
}

func (g *GaiaClient) CreateObject(objtype string, doc Document) (Document, error) {
	created, err := g.sendJSON("POST", g.gurl("api", "objects", objtype), doc)
	if err != nil {
		return nil, err
	}
	g.saveSession()
	return created, nil
}

func (g *GaiaClient) PutObject(objtype string, doc Document) (Document, error) {
	id := doc.ID()
	if id == "" {
		return nil, errors.New("object has no id")
	}
	updated, err := g.sendJSON("PUT", g.gurl("api", "objects", objtype, id), doc)
	if err != nil {
		return nil, err
	}
	g.saveSession()
	return updated, nil
}

func (g *GaiaClient) DeleteObject(objtype, id string) error {
	req, err := http.NewRequest("DELETE", g.gurl("api", "objects", objtype, id), nil)
	if err != nil {
		return err
	}
	resp, err := g.do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		g.saveSession()
		return nil
	}
	return statusError(resp, id)
}

// memberKey maps an object type to its membership list key in a folder
// document.
func memberKey(objtype string) (string, error) {
	switch objtype {
	case Waypoint:
		return "waypoints", nil
	case Track:
		return "tracks", nil
	case Folder:
		return "children", nil
	}
	return "", errors.Errorf("cannot place %s objects in folders", objtype)
}

func (g *GaiaClient) AddObjectToFolder(folderID, objtype, id string) (Document, error) {
	key, err := memberKey(objtype)
	if err != nil {
		return nil, err
	}
	folder, err := g.GetObject(Folder, folderID)
	if err != nil {
		return nil, err
	}
	members, _ := folder.Properties()[key].([]interface{})
	for _, m := range members {
		if m == id {
			return folder, nil
		}
	}
	folder.Properties()[key] = append(members, id)
	return g.PutObject(Folder, folder)
}

func (g *GaiaClient) RemoveObjectFromFolder(folderID, objtype, id string) (Document, error) {
	key, err := memberKey(objtype)
	if err != nil {
		return nil, err
	}
	folder, err := g.GetObject(Folder, folderID)
	if err != nil {
		return nil, err
	}
	members, _ := folder.Properties()[key].([]interface{})
	kept := make([]interface{}, 0, len(members))
	for _, m := range members {
		if m != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(members) {
		return nil, errors.Wrapf(ErrNotFound, "%s %s in folder %s", objtype, id, folderID)
	}
	folder.Properties()[key] = kept
	return g.PutObject(Folder, folder)
}

func (g *GaiaClient) SetObjectsArchive(objtype string, ids []string, archived bool) error {
	batch := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		batch = append(batch, map[string]interface{}{"id": id, "deleted": archived})
	}
	_, err := g.sendJSON("PUT", g.gurl("api", "objects", objtype), batch)
	if err != nil {
		return err
	}
	g.saveSession()
	return nil
}

func (g *GaiaClient) UploadFile(path string) (Document, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to open upload file")
	}
	defer fh.Close()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("name", filepath.Base(path)); err != nil {
		return nil, err
	}
	part, err := form.CreateFormFile("files", filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, fh); err != nil {
		return nil, errors.Wrap(err, "unable to read upload file")
	}
	if err := form.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", g.gurl("upload"), &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())
	resp, err := g.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
	default:
		return nil, statusError(resp, "upload")
	}
	g.saveSession()

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err == nil && doc.ID() != "" {
		return doc, nil
	}

	// The server queues large uploads and creates the folder when
	// processing finishes. Give it a short while before reporting it
	// as queued.
	return g.waitForUploadFolder(filepath.Base(path))
}

var errUploadPending = errors.New("upload folder not visible yet")

func (g *GaiaClient) waitForUploadFolder(name string) (Document, error) {
	names := []string{name, strings.TrimSuffix(name, filepath.Ext(name))}

	var found Document
	poll := func() error {
		folders, err := g.ListObjects(Folder)
		if err != nil {
			return backoff.Permanent(err)
		}
		for _, candidate := range names {
			if obj, err := Find(folders, "title", candidate); err == nil {
				found, err = g.GetObject(Folder, obj.ID)
				if err != nil {
					return backoff.Permanent(err)
				}
				return nil
			}
		}
		return errUploadPending
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = time.Second
	policy.MaxElapsedTime = 15 * time.Second
	err := backoff.Retry(poll, policy)
	switch errors.Cause(err) {
	case nil:
		return found, nil
	case errUploadPending:
		log.Debugf("Upload folder %q never appeared: %v", name, err)
		return nil, nil
	default:
		return nil, err
	}
}

func (g *GaiaClient) Raw(method, path string, params map[string]string) (*http.Response, error) {
	uri := g.gurl(strings.Split(strings.Trim(path, "/"), "/")...)
	if len(params) > 0 {
		query := url.Values{}
		for k, v := range params {
			query.Set(k, v)
		}
		uri += "?" + query.Encode()
	}
	req, err := http.NewRequest(method, uri, nil)
	if err != nil {
		return nil, err
	}
	return g.do(req)
}

// saveSession opportunistically persists any refreshed session cookies.
func (g *GaiaClient) saveSession() {
	if g.jar == nil {
		return
	}
	if err := g.jar.Save(); err != nil {
		log.Debugf("Unable to save session: %v", err)
	}
}
