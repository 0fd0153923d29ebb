package util

import (
	"encoding/xml"
	"io"
	"os"

	"github.com/pkg/errors"
)

// StripGPXExtensions copies a GPX file, dropping every <extensions>
// element. gaiagps rejects some files carrying schema extensions, so
// removing them improves upload compatibility.
func StripGPXExtensions(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "unable to open input file")
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "unable to create output file")
	}
	defer out.Close()

	decoder := xml.NewDecoder(in)
	encoder := xml.NewEncoder(out)
	depth := 0
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "unable to parse GPX")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if depth > 0 || t.Name.Local == "extensions" {
				depth++
				continue
			}
		case xml.EndElement:
			if depth > 0 {
				depth--
				continue
			}
		default:
			if depth > 0 {
				continue
			}
		}

		if err := encoder.EncodeToken(tok); err != nil {
			return errors.Wrap(err, "unable to write GPX")
		}
	}
	if err := encoder.Flush(); err != nil {
		return errors.Wrap(err, "unable to write GPX")
	}
	return nil
}
