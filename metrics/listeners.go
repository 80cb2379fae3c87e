package metrics

import (
	"sync"
)

var beforeMetricsCalledFns = make(map[string]func())
var listenersLock = &sync.Mutex{}

// OnBeforeMetricsRequested registers fn under name, replacing any earlier
// listener with the same name.
func OnBeforeMetricsRequested(name string, fn func()) {
	listenersLock.Lock()
	beforeMetricsCalledFns[name] = fn
	listenersLock.Unlock()
}

func RemoveListener(name string) {
	listenersLock.Lock()
	delete(beforeMetricsCalledFns, name)
	listenersLock.Unlock()
}

func runListeners() {
	listenersLock.Lock()
	fns := make([]func(), 0, len(beforeMetricsCalledFns))
	for _, fn := range beforeMetricsCalledFns {
		fns = append(fns, fn)
	}
	listenersLock.Unlock()

	for _, fn := range fns {
		fn()
	}
}
