package ecs

// WorldConfig configures a new World. Trimmed from the teacher's WorldConfig
// (internal/core/ecs/world.go GetConfig/UpdateConfig) down to the knobs this
// runtime actually reads — an initial entity-capacity hint — since the
// teacher's other fields (storage backend selection, profiling, hot-reload)
// belong to features spec.md names as Non-goals for this core.
type WorldConfig struct {
	// InitialEntityCapacity sizes the entity service's backing arrays up
	// front, avoiding early growth churn for worlds that pre-size their
	// entity count. Zero means "start empty and grow on demand."
	InitialEntityCapacity int
}

// DefaultWorldConfig returns a WorldConfig with conservative defaults.
func DefaultWorldConfig() WorldConfig {
	return WorldConfig{InitialEntityCapacity: 64}
}

// World is the façade tying together component storage, entity bookkeeping,
// family caching, and system execution, grounded on the teacher's World
// interface (internal/core/ecs/world.go) but collapsed from a giant
// interface plus *WorldImpl down to one concrete struct — spec.md's core has
// no query builder, event bus, serialization, or render pass baked into the
// façade itself (those, where wanted, are modules built on top of it).
//
// Construction is two-phase: NewWorld allocates the World pointer first, then
// populates its services, so every ComponentMapper[T] and system can hold a
// non-owning *World back-reference from the moment it is created without the
// services needing to construct the World that owns them (spec.md §9).
type World struct {
	config      WorldConfig
	components  *ComponentService
	entities    *EntityService
	systems     *SystemService
	families    map[string]*Family
	injectables map[string]any
}

// NewWorld constructs a World ready for component and system registration.
func NewWorld(config WorldConfig) *World {
	w := &World{
		config:      config,
		families:    make(map[string]*Family),
		injectables: make(map[string]any),
	}
	w.components = newComponentService()
	w.entities = newEntityService(w, config.InitialEntityCapacity)
	w.systems = newSystemService(w)
	return w
}

// Mapper registers (on first call) or returns the ComponentMapper for T,
// created via factory. factory is ignored on subsequent calls for the same
// T — only the first registration's factory is used, matching the teacher's
// RegisterComponentType-once contract (storage/component_store.go). Mapper
// is a package-level function, not a method, because Go forbids a generic
// method from introducing its own type parameter on a non-generic receiver.
func Mapper[T any](w *World, factory func() T) *ComponentMapper[T] {
	m, err := mapperFor[T](w.components)
	if err == nil {
		return m
	}
	m, err = registerMapper(w.components, w, factory)
	if err != nil {
		panic(err)
	}
	return m
}

// MapperOf looks up an already-registered mapper for T without registering
// one, returning NoSuchComponent if T was never passed to Mapper.
func MapperOf[T any](w *World) (*ComponentMapper[T], error) {
	return mapperFor[T](w.components)
}

// AddSystem registers sys (its concrete type) in execution order and binds
// it to this World. Fails with SystemAlreadyAdded on a duplicate type.
func AddSystem[T system](w *World, sys T) (T, error) {
	return registerSystem(w.systems, sys)
}

// System returns the already-registered system matching T's concrete type.
func System[T system](w *World) (T, error) {
	return systemOfType[T](w.systems)
}

// Metrics returns the tick count and last-tick duration recorded for the
// registered system matching T's concrete type, or ok=false if T was never
// registered with AddSystem.
func Metrics[T system](w *World) (SystemMetrics, bool) {
	return metricsOfType[T](w.systems)
}

// CreateEntity allocates a new entity, running configure against it (the
// usual place to call Mapper(w, ...).Add for every starting component).
func (w *World) CreateEntity(configure func(ctx EntityCreateCtx)) Entity {
	return w.entities.Create(configure)
}

// Configure runs f against an already-live entity.
func (w *World) Configure(e Entity, f func(ctx EntityCreateCtx)) {
	w.entities.Configure(e, f)
}

// RemoveEntity destroys e, or queues its destruction if a family iteration
// is currently in progress.
func (w *World) RemoveEntity(e Entity) {
	w.entities.Remove(e)
}

// RemoveAllEntities destroys every active entity.
func (w *World) RemoveAllEntities() {
	w.entities.RemoveAll()
}

// IsActive reports whether e is currently a live entity.
func (w *World) IsActive(e Entity) bool {
	return w.entities.IsActive(e)
}

// NumEntities returns the number of currently active entities.
func (w *World) NumEntities() int {
	return w.entities.NumEntities()
}

// ForEachEntity visits every active entity in ascending id order.
func (w *World) ForEachEntity(f func(e Entity)) {
	w.entities.ForEach(f)
}

// Family returns the cached Family for this exact allOf/noneOf/anyOf
// predicate, creating and registering it on first use. Passing the same
// three BitArrays' bit patterns again returns the same cached Family rather
// than building a duplicate (spec.md §4.6).
func (w *World) Family(allOf, noneOf, anyOf *BitArray) (*Family, error) {
	if allOf.IsEmpty() && noneOf.IsEmpty() && anyOf.IsEmpty() {
		return nil, FamilyEmptyErr()
	}
	key := familyKey(allOf, noneOf, anyOf)
	if f, ok := w.families[key]; ok {
		return f, nil
	}
	f := newFamily(w, allOf.Clone(), noneOf.Clone(), anyOf.Clone())
	w.families[key] = f
	w.entities.registerFamily(f)
	return f, nil
}

func familyKey(allOf, noneOf, anyOf *BitArray) string {
	buf := make([]byte, 0, 64)
	buf = appendBits(buf, allOf)
	buf = append(buf, '|')
	buf = appendBits(buf, noneOf)
	buf = append(buf, '|')
	buf = appendBits(buf, anyOf)
	return string(buf)
}

func appendBits(buf []byte, b *BitArray) []byte {
	first := true
	b.ForEachSetBit(func(i int) {
		if !first {
			buf = append(buf, ',')
		}
		first = false
		buf = appendInt(buf, i)
	})
	return buf
}

func appendInt(buf []byte, n int) []byte {
	if n == 0 {
		return append(buf, '0')
	}
	start := len(buf)
	for n > 0 {
		buf = append(buf, byte('0'+n%10))
		n /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// Inject registers a named dependency systems can retrieve via Injected,
// the trimmed stand-in for the teacher's broader service-locator plumbing —
// here scoped to the handful of cross-cutting singletons (a Lua state, an
// audio context) spec.md's systems need without importing each other.
func (w *World) Inject(name string, value any) {
	w.injectables[name] = value
}

// Injected returns the named dependency registered via Inject.
func Injected[T any](w *World, name string) (T, error) {
	var zero T
	v, ok := w.injectables[name]
	if !ok {
		return zero, InjectableNotFoundErr(name)
	}
	t, ok := v.(T)
	if !ok {
		return zero, InjectableNotFoundErr(name)
	}
	return t, nil
}

// Update advances every registered system by dt seconds, in registration
// order (spec.md §4.7).
func (w *World) Update(dt float32) {
	w.systems.Update(dt)
}

// Dispose shuts every registered system down in reverse registration order,
// then removes every active entity — firing component OnRemove listeners —
// since spec.md §5 defines "no teardown beyond dispose()" as encompassing
// both system shutdown and entity removal.
func (w *World) Dispose() {
	w.systems.Dispose()
	w.entities.RemoveAll()
}

// SystemCount returns the number of registered systems.
func (w *World) SystemCount() int {
	return w.systems.Count()
}

// ComponentCount returns the number of registered component types.
func (w *World) ComponentCount() int {
	return w.components.Count()
}
