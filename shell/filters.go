package shell

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/8cH9azbsFifZ/gaiagpsclient/apiclient"
	"github.com/8cH9azbsFifZ/gaiagpsclient/util"
)

// errSafety means a mass operation matched the entire object list with
// no criteria given. Callers turn it into a helpful refusal.
var errSafety = errors.New("no criteria specified")

// dateRange is an inclusive local-time date interval.
type dateRange struct {
	start time.Time
	end   time.Time
}

// parseDateRange parses YYYY-MM-DD or YYYY-MM-DD:YYYY-MM-DD. The end
// date is inclusive, so it extends to 23:59:59.
func parseDateRange(spec string) (*dateRange, error) {
	const layout = "2006-01-02"
	dates := strings.SplitN(spec, ":", 2)
	start, err := time.ParseInLocation(layout, dates[0], time.Local)
	if err != nil {
		return nil, errors.New("Invalid date format")
	}
	end := start
	if len(dates) > 1 {
		end, err = time.ParseInLocation(layout, dates[1], time.Local)
		if err != nil {
			return nil, errors.New("Invalid date format")
		}
	}
	end = end.Add(24*time.Hour - time.Second)
	return &dateRange{start: start, end: end}, nil
}

func (r *dateRange) contains(stamp string) bool {
	t, ok := util.DateParse(stamp)
	if !ok {
		return false
	}
	return !t.Before(r.start) && !t.After(r.end)
}

// parseFuzzyBool accepts y/yes/t/true and n/no/f/false.
func parseFuzzyBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "y", "yes", "t", "true":
		return true, nil
	case "n", "no", "f", "false":
		return false, nil
	}
	return false, errors.Errorf("Invalid value for %s: must be \"yes\" or \"no\"", value)
}

// getObject fetches a full document by name or, if the argument has
// identifier shape, by ID.
func getObject(cl apiclient.Client, objtype, nameOrID string) (apiclient.Document, error) {
	if util.IsID(nameOrID) {
		return cl.GetObject(objtype, nameOrID)
	}
	return cl.GetObjectByName(objtype, nameOrID)
}

// resolveID resolves a name-or-ID argument to a bare object ID without
// fetching the full document.
func resolveID(cl apiclient.Client, objtype, nameOrID string) (string, error) {
	if util.IsID(nameOrID) {
		return nameOrID, nil
	}
	objs, err := cl.ListObjects(objtype)
	if err != nil {
		return "", err
	}
	obj, err := apiclient.Find(objs, "title", nameOrID)
	if err != nil {
		return "", err
	}
	return obj.ID, nil
}

// findObjects selects objects by names/IDs, optionally treating names
// as regular expressions and filtering by date. With no names at all,
// it refuses to return the whole account (errSafety) unless a filter
// actually narrowed the list.
func findObjects(cl apiclient.Client, objtype string, namesOrIDs []string, match bool, dr *dateRange) ([]apiclient.Object, error) {
	objs, err := cl.ListObjects(objtype)
	if err != nil {
		return nil, err
	}

	var matched []apiclient.Object
	if len(namesOrIDs) > 0 {
		for _, nameOrID := range namesOrIDs {
			switch {
			case util.IsID(nameOrID):
				obj, err := apiclient.Find(objs, "id", nameOrID)
				if err != nil {
					return nil, err
				}
				matched = append(matched, obj)
			case match:
				found, err := apiclient.Match(objs, "title", nameOrID)
				if err != nil {
					return nil, err
				}
				matched = append(matched, found...)
			default:
				obj, err := apiclient.Find(objs, "title", nameOrID)
				if err != nil {
					return nil, err
				}
				matched = append(matched, obj)
			}
		}
	} else {
		matched = objs
	}

	if dr != nil {
		var filtered []apiclient.Object
		for _, obj := range matched {
			if dr.contains(obj.TimeCreated) {
				filtered = append(filtered, obj)
			}
		}
		matched = filtered
	}

	if len(namesOrIDs) == 0 && len(matched) == len(objs) {
		return nil, errSafety
	}
	return matched, nil
}
