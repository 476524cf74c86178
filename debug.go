package prompter

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// debug trace logging, gated behind PROMPTER_DEBUG: a sync.Once-guarded
// lazy file open, silently disabled when unset. Call sites pass key/value
// pairs so trace lines read like structured log entries.
var dbg = struct {
	sync.Once
	w io.WriteCloser
}{}

func initDebug() {
	path := os.Getenv("PROMPTER_DEBUG")
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	dbg.w = f
}

// debugf writes a trace line of the form "op key=val key=val" when
// PROMPTER_DEBUG names a writable file, and is a no-op otherwise.
func debugf(op string, kv ...interface{}) {
	dbg.Do(initDebug)
	if dbg.w == nil {
		return
	}
	fmt.Fprintf(dbg.w, "%s", op)
	for i := 0; i+1 < len(kv); i += 2 {
		fmt.Fprintf(dbg.w, " %v=%v", kv[i], kv[i+1])
	}
	fmt.Fprintln(dbg.w)
}
