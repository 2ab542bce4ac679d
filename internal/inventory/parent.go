package inventory

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/aberges/pvaliases/internal/release"
)

// ParentIOC reads the child IOC's <id>.cfg in its release directory and
// returns the parent release it builds against. The last RELEASE line
// wins, matching how the IOC build itself resolves overrides.
func ParentIOC(res release.Resolver, dir, id string) string {
	path := filepath.Join(res.Resolve(dir), id+".cfg")
	f, err := os.Open(path)
	if err != nil {
		return "Invalid. Child does not exist."
	}
	defer f.Close()

	parent := ""
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "RELEASE") {
			if i := strings.LastIndex(line, "="); i >= 0 {
				parent = strings.TrimSpace(line[i+1:])
			}
		}
	}
	return parent
}
