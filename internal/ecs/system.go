package ecs

// IntervalSystem is the base every system embeds, grounded on the teacher's
// BaseSystem (internal/core/systems/base_system.go) but trimmed to spec.md
// §4.7's scope: enabled flag, a World back-reference, and the tick interval.
// The teacher's priority/dependency-graph/parallel-execution machinery
// (ecs.SystemManager) does not survive here — systems run in strict
// registration order, single-threaded (see DESIGN.md); per-system timing
// lives in SystemService as SystemMetrics.
type IntervalSystem struct {
	World    *World
	interval Interval
	enabled  bool
	accum    float32

	onTick    func(dt float32)
	onAlpha   func(alpha float32)
	onDispose func(w *World)
}

// NewIntervalSystem constructs a system ticking at the given Interval.
// onTick fires per spec.md §4.7: once per Update for EachFrame, or once per
// accumulated step for Fixed. onAlpha, if non-nil, fires once per Update
// after any onTick calls with the leftover fraction of a fixed step — for
// systems that need to interpolate render state between fixed steps; it is
// never called for an EachFrame system.
func NewIntervalSystem(interval Interval, onTick func(dt float32), onAlpha func(alpha float32)) *IntervalSystem {
	return &IntervalSystem{
		interval: interval,
		enabled:  true,
		onTick:   onTick,
		onAlpha:  onAlpha,
	}
}

func (s *IntervalSystem) bind(w *World) {
	s.World = w
}

// Enabled reports whether this system currently runs.
func (s *IntervalSystem) Enabled() bool {
	return s.enabled
}

// SetEnabled toggles execution. A disabled system is skipped entirely by
// SystemService.Update, including fixed-step accumulation.
func (s *IntervalSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// update drives one World.Update(dt) worth of ticking for this system.
func (s *IntervalSystem) update(dt float32) {
	if !s.enabled {
		return
	}
	if !s.interval.fixed {
		if s.onTick != nil {
			s.onTick(dt)
		}
		return
	}
	s.accum += dt
	for s.accum >= s.interval.step {
		if s.onTick != nil {
			s.onTick(s.interval.step)
		}
		s.accum -= s.interval.step
	}
	if s.onAlpha != nil {
		s.onAlpha(s.accum / s.interval.step)
	}
}

// disposable is implemented by any system carrying an onDispose hook.
// SystemService.Dispose type-asserts against it so a system that never
// registered a hook is simply skipped.
type disposable interface {
	dispose()
}

// OnDispose registers a cleanup hook run once when the owning World is
// disposed, in reverse registration order (spec.md §4.7). Any system type
// that embeds *IntervalSystem — whether an IteratingSystem or a bare
// IntervalSystem such as RenderingSystem, which ticks nothing but still
// needs teardown — gets this for free through the embedding.
func (s *IntervalSystem) OnDispose(f func(w *World)) {
	s.onDispose = f
}

func (s *IntervalSystem) dispose() {
	if s.onDispose != nil {
		s.onDispose(s.World)
	}
}

// IteratingSystem couples an IntervalSystem to one Family: each tick it
// visits every current member of the family through onTickEntity, the way
// the teacher's systems walk a world.Query() result
// (internal/core/systems/movement_system.go) but against a cached Family
// instead of a fresh per-frame query.
type IteratingSystem struct {
	*IntervalSystem
	family       *Family
	onTickEntity func(w *World, e Entity, dt float32)
}

// NewIteratingSystem builds an IteratingSystem over family, calling
// onTickEntity for every current member on each tick computed by interval.
func NewIteratingSystem(interval Interval, family *Family, onTickEntity func(w *World, e Entity, dt float32)) *IteratingSystem {
	is := &IteratingSystem{family: family, onTickEntity: onTickEntity}
	is.IntervalSystem = NewIntervalSystem(interval, is.tickFamily, nil)
	return is
}

func (is *IteratingSystem) tickFamily(dt float32) {
	is.family.ForEach(func(e Entity) {
		if is.onTickEntity != nil {
			is.onTickEntity(is.World, e, dt)
		}
	})
}

// Family returns the entity set this system iterates.
func (is *IteratingSystem) Family() *Family {
	return is.family
}
