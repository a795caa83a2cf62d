package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPosition struct {
	X, Y float32
}

func Test_ComponentMapper_AddAndGet(t *testing.T) {
	// Arrange
	w := NewWorld(DefaultWorldConfig())
	mapper := Mapper(w, func() testPosition { return testPosition{} })
	e := w.CreateEntity(nil)

	// Act
	mapper.Add(e, func(c *testPosition) { c.X = 1; c.Y = 2 })

	// Assert
	assert.True(t, mapper.Contains(e))
	got := mapper.Get(e)
	assert.Equal(t, float32(1), got.X)
	assert.Equal(t, float32(2), got.Y)
}

func Test_ComponentMapper_ReAdd_OverwritesWithoutFiringListeners(t *testing.T) {
	// Arrange
	w := NewWorld(DefaultWorldConfig())
	mapper := Mapper(w, func() testPosition { return testPosition{} })
	e := w.CreateEntity(nil)
	mapper.Add(e, func(c *testPosition) { c.X = 1 })
	l := &recordingListener[testPosition]{}
	mapper.AddListener(l)

	// Act
	mapper.Add(e, func(c *testPosition) { c.X = 9 })

	// Assert
	assert.Equal(t, float32(9), mapper.Get(e).X)
	assert.Equal(t, 0, l.adds)
	assert.Equal(t, 0, l.removes)
}

func Test_ComponentMapper_AddListener_FiresOnAddOnce(t *testing.T) {
	// Arrange
	w := NewWorld(DefaultWorldConfig())
	mapper := Mapper(w, func() testPosition { return testPosition{} })
	l := &recordingListener[testPosition]{}
	mapper.AddListener(l)
	e := w.CreateEntity(nil)

	// Act
	mapper.Add(e, nil)

	// Assert
	assert.Equal(t, 1, l.adds)
}

func Test_ComponentMapper_Remove_FiresOnRemoveAndClears(t *testing.T) {
	// Arrange
	w := NewWorld(DefaultWorldConfig())
	mapper := Mapper(w, func() testPosition { return testPosition{} })
	l := &recordingListener[testPosition]{}
	mapper.AddListener(l)
	e := w.CreateEntity(nil)
	mapper.Add(e, nil)

	// Act
	err := mapper.Remove(e)

	// Assert
	require.NoError(t, err)
	assert.False(t, mapper.Contains(e))
	assert.Equal(t, 1, l.removes)
}

func Test_ComponentMapper_Remove_AbsentComponent_Errors(t *testing.T) {
	// Arrange
	w := NewWorld(DefaultWorldConfig())
	mapper := Mapper(w, func() testPosition { return testPosition{} })
	e := w.CreateEntity(nil)

	// Act
	err := mapper.Remove(e)

	// Assert
	require.Error(t, err)
	var ecsErr *ECSError
	require.ErrorAs(t, err, &ecsErr)
	assert.Equal(t, ErrNoSuchEntityComponent, ecsErr.Code)
}

func Test_ComponentMapper_GetOrNull(t *testing.T) {
	// Arrange
	w := NewWorld(DefaultWorldConfig())
	mapper := Mapper(w, func() testPosition { return testPosition{} })
	e := w.CreateEntity(nil)

	// Act & Assert
	assert.Nil(t, mapper.GetOrNull(e))

	mapper.Add(e, nil)
	assert.NotNil(t, mapper.GetOrNull(e))
}

func Test_ComponentMapper_RemoveListener(t *testing.T) {
	// Arrange
	w := NewWorld(DefaultWorldConfig())
	mapper := Mapper(w, func() testPosition { return testPosition{} })
	l := &recordingListener[testPosition]{}
	mapper.AddListener(l)
	mapper.RemoveListener(l)
	e := w.CreateEntity(nil)

	// Act
	mapper.Add(e, nil)

	// Assert
	assert.Equal(t, 0, l.adds)
}

func Test_Mapper_SecondCallIgnoresFactoryAndReturnsSameInstance(t *testing.T) {
	// Arrange
	w := NewWorld(DefaultWorldConfig())
	first := Mapper(w, func() testPosition { return testPosition{X: 1} })

	// Act
	second := Mapper(w, func() testPosition { return testPosition{X: 99} })

	// Assert
	assert.Same(t, first, second)
}

func Test_MapperOf_UnregisteredType_Errors(t *testing.T) {
	// Arrange
	w := NewWorld(DefaultWorldConfig())

	// Act
	_, err := MapperOf[testPosition](w)

	// Assert
	require.Error(t, err)
	var ecsErr *ECSError
	require.ErrorAs(t, err, &ecsErr)
	assert.Equal(t, ErrNoSuchComponent, ecsErr.Code)
}

func Test_ComponentMapper_AddListener_FiresInRegistrationOrder(t *testing.T) {
	// Arrange: L1 registered before L2 (spec.md §8 S6).
	w := NewWorld(DefaultWorldConfig())
	mapper := Mapper(w, func() testPosition { return testPosition{} })
	var order []string
	var seen []*testPosition
	l1 := &orderRecordingListener{name: "L1", order: &order, seen: &seen}
	l2 := &orderRecordingListener{name: "L2", order: &order, seen: &seen}
	mapper.AddListener(l1)
	mapper.AddListener(l2)
	e := w.CreateEntity(nil)

	// Act
	mapper.Add(e, func(c *testPosition) { c.X = 7 })

	// Assert
	assert.Equal(t, []string{"L1", "L2"}, order)
	require.Len(t, seen, 2)
	assert.Equal(t, float32(7), seen[0].X)
	assert.Equal(t, float32(7), seen[1].X)
}

func Test_ComponentMapper_RemoveInternal_OutOfRange_Errors(t *testing.T) {
	// Arrange: register the component but never create an entity, so the
	// mapper's backing array stays at length zero (spec.md §8 S5).
	w := NewWorld(DefaultWorldConfig())
	mapper := Mapper(w, func() testPosition { return testPosition{} })

	// Act
	err := mapper.removeInternal(Entity(10_000))

	// Assert
	require.Error(t, err)
	var ecsErr *ECSError
	require.ErrorAs(t, err, &ecsErr)
	assert.Equal(t, ErrIndexOutOfBounds, ecsErr.Code)
}

type recordingListener[T any] struct {
	adds    int
	removes int
}

func (l *recordingListener[T]) OnAdd(w *World, e Entity, c *T)    { l.adds++ }
func (l *recordingListener[T]) OnRemove(w *World, e Entity, c *T) { l.removes++ }

type orderRecordingListener struct {
	name  string
	order *[]string
	seen  *[]*testPosition
}

func (l *orderRecordingListener) OnAdd(w *World, e Entity, c *testPosition) {
	*l.order = append(*l.order, l.name)
	*l.seen = append(*l.seen, c)
}
func (l *orderRecordingListener) OnRemove(w *World, e Entity, c *testPosition) {}
