package ecs

import (
	"reflect"
	"time"
)

// system is the minimal contract every registered system must satisfy. Both
// IntervalSystem and IteratingSystem implement it directly; a concrete
// system type defined in another package satisfies it by embedding one of
// them, the same promoted-method pattern the teacher's BaseSystem embedding
// relies on (internal/core/systems/base_system.go), but narrowed from the
// teacher's sprawling System interface down to the two calls SystemService
// actually needs to drive execution.
type system interface {
	bind(w *World)
	update(dt float32)
}

// SystemService holds every registered system in registration order and
// drives them each World.Update, grounded on the teacher's SystemManagerImpl
// (internal/core/ecs/system_manager.go) execution loop, stripped of its
// priority queue, dependency graph, and parallel worker pool — spec.md §4.7
// runs systems in plain registration order, single-threaded. Its per-system
// profiling survives as SystemMetrics (see below), trimmed to the two fields
// SPEC_FULL.md's performance-counter supplement actually reads.
type SystemService struct {
	world   *World
	byType  map[reflect.Type]int
	ordered *Bag[system]
	metrics map[reflect.Type]*SystemMetrics
}

// SystemMetrics records how many World.Update passes have run a system and
// how long its most recent pass took (for a Fixed-interval system one pass
// may run zero or several steps). Grounded on the teacher's SystemMetrics
// (internal/core/ecs/world.go), trimmed from its execution-count/total-time/
// average/max/min/error-count/memory histogram down to a running tick count
// and the last tick's wall-clock duration — the fields a host actually wants
// to read for a simple per-frame perf readout.
type SystemMetrics struct {
	Ticks        int64
	LastDuration time.Duration
}

func newSystemService(w *World) *SystemService {
	return &SystemService{
		world:   w,
		byType:  make(map[reflect.Type]int),
		ordered: NewBag[system](8),
		metrics: make(map[reflect.Type]*SystemMetrics),
	}
}

// registerSystem appends sys to the execution order and binds it to the
// owning World. Fails with SystemAlreadyAdded if a system of this concrete
// type is already registered.
func registerSystem[T system](ss *SystemService, sys T) (T, error) {
	key := reflect.TypeOf(sys)
	if _, exists := ss.byType[key]; exists {
		var zero T
		return zero, SystemAlreadyAddedErr(key.String())
	}
	sys.bind(ss.world)
	idx := ss.ordered.Add(sys)
	ss.byType[key] = idx
	ss.metrics[key] = &SystemMetrics{}
	return sys, nil
}

// systemOfType returns the registered system matching T's concrete type.
func systemOfType[T system](ss *SystemService) (T, error) {
	var zero T
	key := reflect.TypeOf(zero)
	idx, ok := ss.byType[key]
	if !ok {
		return zero, NoSuchSystemErr(key.String())
	}
	return ss.ordered.Get(idx).(T), nil
}

// metricsOfType returns the tick count and last-tick duration recorded for
// T's concrete type, or ok=false if T was never registered.
func metricsOfType[T system](ss *SystemService) (metrics SystemMetrics, ok bool) {
	var zero T
	key := reflect.TypeOf(zero)
	m, ok := ss.metrics[key]
	if !ok {
		return SystemMetrics{}, false
	}
	return *m, true
}

// Update ticks every enabled system, in registration order, with dt,
// timing each one and recording the result in its SystemMetrics. Disabled
// systems are skipped and their metrics left unchanged.
func (ss *SystemService) Update(dt float32) {
	ss.ordered.Iter(func(_ int, s system) {
		if en, ok := s.(interface{ Enabled() bool }); ok && !en.Enabled() {
			return
		}
		start := time.Now()
		s.update(dt)
		m := ss.metrics[reflect.TypeOf(s)]
		m.Ticks++
		m.LastDuration = time.Since(start)
	})
}

// Dispose shuts systems down in reverse registration order, the same
// teardown direction as the teacher's ShutdownSystems
// (internal/core/ecs/system_manager.go).
func (ss *SystemService) Dispose() {
	n := ss.ordered.Size()
	for i := n - 1; i >= 0; i-- {
		if d, ok := ss.ordered.Get(i).(disposable); ok {
			d.dispose()
		}
	}
}

// Count returns the number of registered systems.
func (ss *SystemService) Count() int {
	return ss.ordered.Size()
}
