package leakcheck

import (
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"time"
)

// ReportLeakedGoroutines waits up to a second for the goroutine count to fall
// back to baseline, dumping all stacks if it never does.
func ReportLeakedGoroutines(baseline int) bool {
	var finalCount int
	start := time.Now()
	for time.Since(start) <= 1*time.Second {
		runtime.Gosched()

		finalCount = runtime.NumGoroutine()
		if finalCount <= baseline {
			break
		}

		time.Sleep(10 * time.Millisecond)
	}

	if finalCount > baseline {
		log.Printf("Detected a goroutine leak (%d before != %d after)", baseline, finalCount)
		_ = pprof.Lookup("goroutine").WriteTo(os.Stdout, 1)
		return false
	}

	log.Printf("No goroutines appear to have leaked (%d before, %d after)", baseline, finalCount)
	return true
}
