// Package comuni maps Italian cadastral codes (codici catastali) to
// municipality names and provinces, as used in the birth place field of the
// codice fiscale. Foreign countries carry Z-prefixed codes and the synthetic
// province "EE".
package comuni

import (
	"sort"
	"strings"

	"fisco/internal/sentinel"
)

// ErrNotFound is returned when a code or name is not in the directory.
var ErrNotFound = sentinel.ErrNotFound

// Municipality is a single directory entry.
type Municipality struct {
	Code     string
	Name     string
	Province string
}

// Directory provides lookups over the static cadastral table.
// It is read-only after construction and safe for concurrent use.
type Directory struct {
	byCode map[string]Municipality
	byName map[string]string
}

// New builds a Directory over the embedded table.
func New() *Directory {
	d := &Directory{
		byCode: catastali,
		byName: make(map[string]string, len(catastali)),
	}
	for code, m := range catastali {
		d.byName[m.Name] = code
	}
	return d
}

// Lookup resolves a cadastral code, case-insensitively.
func (d *Directory) Lookup(code string) (Municipality, error) {
	m, ok := d.byCode[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return Municipality{}, ErrNotFound
	}
	return m, nil
}

// LookupPlace adapts Lookup to the codec's birth place resolution.
func (d *Directory) LookupPlace(code string) (name, province string, ok bool) {
	m, err := d.Lookup(code)
	if err != nil {
		return "", "", false
	}
	return m.Name, m.Province, true
}

// ReverseLookup resolves an exact municipality name, case-insensitively.
func (d *Directory) ReverseLookup(name string) (string, error) {
	code, ok := d.byName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return "", ErrNotFound
	}
	return code, nil
}

// Search returns every entry whose name contains the query, sorted by name.
func (d *Directory) Search(partialName string) []Municipality {
	query := strings.ToUpper(strings.TrimSpace(partialName))
	if query == "" {
		return nil
	}
	var results []Municipality
	for _, m := range d.byCode {
		if strings.Contains(m.Name, query) {
			results = append(results, m)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })
	return results
}

// IsForeign reports whether a cadastral code denotes a foreign country,
// regardless of whether the code is in the directory.
func IsForeign(code string) bool {
	return strings.HasPrefix(strings.ToUpper(code), "Z")
}
