package sqlite

import (
	"fmt"
	"strings"

	_ "modernc.org/sqlite"
)

// driverName is the database/sql name modernc.org/sqlite registers.
const driverName = "sqlite"

// pragma is applied by the driver to every new connection.
type pragma struct{ name, value string }

var (
	filePragmas = []pragma{
		{"journal_mode", "WAL"},
		{"foreign_keys", "1"},
		{"busy_timeout", "5000"},
		{"synchronous", "NORMAL"},
	}
	// In memory only the job history cascade matters.
	memoryPragmas = []pragma{{"foreign_keys", "1"}}
)

// dsn renders path followed by ?_pragma=name(value)&... in the form
// modernc.org/sqlite parses.
func dsn(path string, pragmas []pragma) string {
	var b strings.Builder
	b.WriteString(path)
	for i, p := range pragmas {
		sep := "&"
		if i == 0 {
			sep = "?"
		}
		fmt.Fprintf(&b, "%s_pragma=%s(%s)", sep, p.name, p.value)
	}
	return b.String()
}
