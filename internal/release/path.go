// Package release resolves IOC release directories and extracts PV
// record/alias associations from their startup scripts and alias
// database templates.
package release

import "strings"

// Resolver normalizes the raw dir strings found in iocmanager.cfg into
// absolute release paths.
type Resolver struct {
	// EPICSRoot prefixes short-form "ioc/..." paths. Must end with "/".
	EPICSRoot string
}

// Resolve repairs the two known path-naming irregularities in inventory
// dir entries and returns the release path, always slash-terminated.
func (r Resolver) Resolve(dir string) string {
	out := dir
	switch {
	// Short-form path relative to the EPICS release area.
	case strings.HasPrefix(dir, "ioc/"):
		out = r.EPICSRoot + dir
	// Old child IOCs that only exist inside their parent's release.
	case strings.Contains(dir, "common"):
		out = dir + "/children"
	}
	if !strings.HasSuffix(out, "/") {
		out += "/"
	}
	return out
}
