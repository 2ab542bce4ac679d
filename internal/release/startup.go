package release

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// NotFoundError reports a missing st.cmd or alias.db. Callers report it,
// skip the affected IOC, and keep going with the rest of the batch.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return e.Path + " does not exist"
}

// Pair associates a top-level EPICS record with its alias,
// e.g. LM1K2:MCS2:01:m1 <-> LM2K2:INJ_MP1_MR1.
type Pair struct {
	Record string `json:"record"`
	Alias  string `json:"alias"`
}

var (
	aliasClauseRe = regexp.MustCompile(`"RECORD=.*"`)
	pairStripper  = strings.NewReplacer(`"`, "", ")", "", "RECORD=", "", "ALIAS=", "")
)

// StartupAliases scans the child IOC's st.cmd for db/alias.db loads and
// returns the record/alias substitution pairs in file order. Duplicates
// are kept; order mirrors the script.
func (r Resolver) StartupAliases(dir, ioc string) ([]Pair, error) {
	path := filepath.Join(r.Resolve(dir), "build", "iocBoot", ioc, "st.cmd")
	f, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{Path: path}
	}
	defer f.Close()

	var pairs []Pair
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, "db/alias.db") {
			continue
		}
		clause := aliasClauseRe.FindString(line)
		if clause == "" {
			continue
		}
		// The clause may carry extra comma-separated fields between the
		// RECORD and ALIAS markers; only the first and last survive.
		fields := strings.Split(pairStripper.Replace(clause), ",")
		pairs = append(pairs, Pair{Record: fields[0], Alias: fields[len(fields)-1]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return pairs, nil
}
