package inventory

import "fmt"

// Record is one child IOC entry from an iocmanager.cfg inventory.
// Ports are kept as strings: the normalizer quotes numeric literals so
// every record decodes with a single shape regardless of how the source
// file spelled its values.
type Record struct {
	ID      string `json:"id"`
	Dir     string `json:"dir"`
	Host    string `json:"host"`
	Port    string `json:"port"`
	Alias   string `json:"alias"`
	Disable bool   `json:"disable"`

	// Hutch is the configuration directory the record came from. It is
	// attached at match time, not parsed from the record itself.
	Hutch string `json:"hutch,omitempty"`

	// ParentIOC is filled in from the release's <id>.cfg after matching.
	ParentIOC string `json:"parent_ioc,omitempty"`
}

// NormalizeError reports an inventory line that could not be brought
// into valid JSON. One bad line fails the whole batch: a partial result
// set would silently hide entries the operator asked for.
type NormalizeError struct {
	Line string
	Err  error
}

func (e *NormalizeError) Error() string {
	return fmt.Sprintf("normalizing inventory line %q: %v", e.Line, e.Err)
}

func (e *NormalizeError) Unwrap() error { return e.Err }
