// Package repository serves the hub's reference tables.
//
// The tables (legal terms, money types, sample statutes, constitutional
// obligations) are JSON documents embedded in the binary and decoded once at
// startup. After loading they are read-only, so every repository is safe for
// concurrent use without locking. Accessors hand out copies; callers may
// modify what they receive without affecting other requests.
package repository

import (
	"bytes"
	"embed"
	"encoding/json"

	"github.com/pkg/errors"
)

//go:embed data/*.json
var dataFS embed.FS

// decodeTable decodes one embedded JSON table into out. Unknown fields are
// rejected so a typo in a table fails at startup, not in a response.
func decodeTable(name string, out any) error {
	raw, err := dataFS.ReadFile("data/" + name)
	if err != nil {
		return errors.Wrapf(err, "read table %s", name)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return errors.Wrapf(err, "decode table %s", name)
	}
	return nil
}
