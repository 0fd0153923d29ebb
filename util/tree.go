package util

import (
	"fmt"
	"io"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/8cH9azbsFifZ/gaiagpsclient/apiclient"
)

const (
	midChild  = "├──"
	lastChild = "└──"
)

// FolderNode is one folder in a hierarchical view of the account's data.
// The root node has a zero Folder and holds the items not in any folder.
type FolderNode struct {
	Folder     apiclient.Object
	Subfolders map[string]*FolderNode
	Waypoints  []apiclient.Object
	Tracks     []apiclient.Object
}

func (n *FolderNode) isRoot() bool {
	return n.Folder.ID == ""
}

// MakeTree nests a flat folder listing by parent. Folders with no parent
// hang off the synthetic root.
func MakeTree(folders []apiclient.Object) *FolderNode {
	nodes := make(map[string]*FolderNode, len(folders))
	for _, f := range folders {
		nodes[f.ID] = &FolderNode{Folder: f, Subfolders: map[string]*FolderNode{}}
	}
	root := &FolderNode{Subfolders: map[string]*FolderNode{}}
	for _, f := range folders {
		parent := root
		if f.Parent != "" {
			if p, ok := nodes[f.Parent]; ok {
				parent = p
			}
		}
		parent.Subfolders[f.ID] = nodes[f.ID]
	}
	return root
}

type objectLister interface {
	ListObjects(objtype string) ([]apiclient.Object, error)
}

// ResolveTree fills a tree from MakeTree with each folder's waypoints and
// tracks. Loose items (no folder) land on the root node.
func ResolveTree(client objectLister, root *FolderNode) error {
	byFolder := map[string]*FolderNode{"": root}
	var walk func(n *FolderNode)
	walk = func(n *FolderNode) {
		if !n.isRoot() {
			byFolder[n.Folder.ID] = n
		}
		for _, sub := range n.Subfolders {
			walk(sub)
		}
	}
	walk(root)

	waypoints, err := client.ListObjects(apiclient.Waypoint)
	if err != nil {
		return err
	}
	for _, w := range waypoints {
		if n, ok := byFolder[w.Folder]; ok {
			n.Waypoints = append(n.Waypoints, w)
		} else {
			log.Debugf("Waypoint %s references unknown folder %s", w.ID, w.Folder)
		}
	}

	tracks, err := client.ListObjects(apiclient.Track)
	if err != nil {
		return err
	}
	for _, t := range tracks {
		if n, ok := byFolder[t.Folder]; ok {
			n.Tracks = append(n.Tracks, t)
		} else {
			log.Debugf("Track %s references unknown folder %s", t.ID, t.Folder)
		}
	}
	return nil
}

// PrintFolder renders a resolved tree as a pseudo-filesystem listing.
func PrintFolder(w io.Writer, root *FolderNode, long bool) {
	fmt.Fprintln(w, "/")
	printFolder(w, root, 0, long)
}

func printFolder(w io.Writer, node *FolderNode, indent int, long bool) {
	formatThing := func(o apiclient.Object) string {
		if long {
			return DateFmt(o.TimeCreated) + " " + o.Title
		}
		return o.Title
	}

	pad := ""
	for i := 0; i < indent; i++ {
		pad += " "
	}

	subs := make([]*FolderNode, 0, len(node.Subfolders))
	for _, sub := range node.Subfolders {
		subs = append(subs, sub)
	}
	sort.Slice(subs, func(i, j int) bool {
		return subs[i].Folder.Title < subs[j].Folder.Title
	})
	for _, sub := range subs {
		fmt.Fprintf(w, "%s%s %s/\n", pad, midChild, formatThing(sub.Folder))
		printFolder(w, sub, indent+4, long)
	}

	type child struct {
		kind string
		obj  apiclient.Object
	}
	var children []child
	for _, wpt := range SortByTitle(node.Waypoints) {
		children = append(children, child{"W", wpt})
	}
	for _, trk := range SortByTitle(node.Tracks) {
		children = append(children, child{"T", trk})
	}
	for i, c := range children {
		pfx := pad + midChild
		if i == len(children)-1 {
			pfx = pad + lastChild
		}
		fmt.Fprintf(w, "%s [%s] %s\n", pfx, c.kind, formatThing(c.obj))
	}
}
