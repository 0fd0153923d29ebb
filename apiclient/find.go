package apiclient

import (
	"regexp"

	"github.com/pkg/errors"
)

func objField(o Object, key string) string {
	if key == "id" {
		return o.ID
	}
	return o.Title
}

// Find returns the single object whose key ("id" or "title") equals value.
// Zero matches is ErrNotFound, more than one is ErrDuplicate.
func Find(objs []Object, key, value string) (Object, error) {
	var found []Object
	for _, o := range objs {
		if objField(o, key) == value {
			found = append(found, o)
		}
	}
	switch len(found) {
	case 0:
		return Object{}, errors.Wrapf(ErrNotFound, "%q", value)
	case 1:
		return found[0], nil
	default:
		return Object{}, errors.Wrapf(ErrDuplicate, "%q (%d matches)", value, len(found))
	}
}

// Match returns every object whose key matches the regular expression.
func Match(objs []Object, key, pattern string) ([]Object, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid match expression %q", pattern)
	}
	var found []Object
	for _, o := range objs {
		if re.MatchString(objField(o, key)) {
			found = append(found, o)
		}
	}
	return found, nil
}
