package leakcheck

func EnableAll() {
	EnableHttpResponseTracking()
}

func ReportAll(goroutineBaseline int) bool {
	passed := true
	if !ReportLeakedHttpResponses() {
		passed = false
	}
	if !ReportLeakedGoroutines(goroutineBaseline) {
		passed = false
	}
	return passed
}
