/*
Package mocat reads GNU gettext binary message catalogs (.mo files) and
answers translation queries from memory.

A catalog is loaded once — the whole file is pulled into an owned buffer,
the header and both string-descriptor tables are validated, and an index
of (original, translation) pairs is materialized as views into that
buffer. Queries then run against one of three lookup strategies (linear
scan, length-then-lex binary search, or a djb2 open-addressing hash
table), fronted by a small direct-mapped result cache. Lookups never
allocate and never fail: a string without a translation is returned
unchanged, which is the standard gettext contract.

The MO file format is documented in the GNU gettext manual:

	https://www.gnu.org/software/gettext/manual/html_node/MO-Files.html

Only the simplified plural rule (n != 1 selects the plural form) is
implemented; evaluation of the Plural-Forms catalog metadata is not.

----------------------------------------------------------------------

# MIT License

License information is available in the LICENSE file.
*/
package mocat

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mocat'
func tracer() tracing.Trace {
	return tracing.Select("mocat")
}

// EnableLogging raises the package tracer to debug level, or lowers it
// back to errors-only. Diagnostics are a side channel: they never change
// what a query returns.
func EnableLogging(enable bool) {
	if enable {
		tracer().SetTraceLevel(tracing.LevelDebug)
	} else {
		tracer().SetTraceLevel(tracing.LevelError)
	}
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
