package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/ohler55/ojg/sen"
)

// DebugDump returns the recorded entries for key in human-readable form, for
// developer inspection. The format is not part of any contract.
func (t *Tracker) DebugDump(key string) string {
	calls := t.reg.Snapshot(key)

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d call(s)\n", key, len(calls))
	for i, rec := range calls {
		fmt.Fprintf(&b, "  [%d] %s id=%s", i, rec.Timestamp.Format(time.RFC3339Nano), rec.ID)
		if rec.Args != nil {
			fmt.Fprintf(&b, " args=%s", sen.String(rec.Args.Value()))
		}
		if rec.Returned != nil {
			fmt.Fprintf(&b, " returned=%s", sen.String(rec.Returned.Value()))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
