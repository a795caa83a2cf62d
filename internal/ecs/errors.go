package ecs

import "fmt"

// ErrorCode identifies the kind of failure an ECSError carries, mirroring
// the teacher's string-code error taxonomy (errors.go) but scoped to the
// kinds spec.md §7 actually names.
type ErrorCode string

const (
	ErrComponentAlreadyAdded  ErrorCode = "COMPONENT_ALREADY_ADDED"
	ErrNoSuchComponent        ErrorCode = "NO_SUCH_COMPONENT"
	ErrNoSuchEntityComponent  ErrorCode = "NO_SUCH_ENTITY_COMPONENT"
	ErrSystemAlreadyAdded     ErrorCode = "SYSTEM_ALREADY_ADDED"
	ErrNoSuchSystem           ErrorCode = "NO_SUCH_SYSTEM"
	ErrFamilyEmpty            ErrorCode = "FAMILY_EMPTY"
	ErrIndexOutOfBounds       ErrorCode = "INDEX_OUT_OF_BOUNDS"
	ErrInjectableNotFound     ErrorCode = "INJECTABLE_NOT_FOUND"
)

// ECSError is the single structured error type returned by this package.
// It always carries a Code for programmatic handling plus whichever
// identifier (component type name, entity, system type name) triggered it.
type ECSError struct {
	Code      ErrorCode
	Message   string
	Type      string // component or system type name, when applicable
	Entity    Entity
	HasEntity bool
}

func (e *ECSError) Error() string {
	switch {
	case e.HasEntity && e.Type != "":
		return fmt.Sprintf("[%s] %s (entity=%d, type=%s)", e.Code, e.Message, e.Entity, e.Type)
	case e.HasEntity:
		return fmt.Sprintf("[%s] %s (entity=%d)", e.Code, e.Message, e.Entity)
	case e.Type != "":
		return fmt.Sprintf("[%s] %s (type=%s)", e.Code, e.Message, e.Type)
	default:
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
}

// Is lets errors.Is match on Code alone, so callers can write
// errors.Is(err, &ECSError{Code: ErrNoSuchComponent}) without matching Message.
func (e *ECSError) Is(target error) bool {
	other, ok := target.(*ECSError)
	if !ok {
		return false
	}
	return e.Code == other.Code
}

func newTypeError(code ErrorCode, message, typeName string) *ECSError {
	return &ECSError{Code: code, Message: message, Type: typeName}
}

func newEntityError(code ErrorCode, message string, entity Entity) *ECSError {
	return &ECSError{Code: code, Message: message, Entity: entity, HasEntity: true}
}

func newEntityTypeError(code ErrorCode, message string, entity Entity, typeName string) *ECSError {
	return &ECSError{Code: code, Message: message, Entity: entity, HasEntity: true, Type: typeName}
}

// ComponentAlreadyAddedErr reports a duplicate component registration.
func ComponentAlreadyAddedErr(typeName string) *ECSError {
	return newTypeError(ErrComponentAlreadyAdded, fmt.Sprintf("component %s already registered", typeName), typeName)
}

// NoSuchComponentErr reports a mapper lookup for an unregistered type.
func NoSuchComponentErr(typeName string) *ECSError {
	return newTypeError(ErrNoSuchComponent, fmt.Sprintf("no mapper registered for component %s", typeName), typeName)
}

// NoSuchEntityComponentErr reports removal of a component an entity does not carry.
func NoSuchEntityComponentErr(entity Entity, typeName string) *ECSError {
	return newEntityTypeError(ErrNoSuchEntityComponent, fmt.Sprintf("entity %d has no component %s", entity, typeName), entity, typeName)
}

// SystemAlreadyAddedErr reports a duplicate system registration.
func SystemAlreadyAddedErr(typeName string) *ECSError {
	return newTypeError(ErrSystemAlreadyAdded, fmt.Sprintf("system %s already registered", typeName), typeName)
}

// NoSuchSystemErr reports World.System[T] lookup for an unregistered type.
func NoSuchSystemErr(typeName string) *ECSError {
	return newTypeError(ErrNoSuchSystem, fmt.Sprintf("no system registered of type %s", typeName), typeName)
}

// FamilyEmptyErr reports a family predicate with allOf, noneOf, and anyOf all empty.
func FamilyEmptyErr() *ECSError {
	return &ECSError{Code: ErrFamilyEmpty, Message: "family predicate must set at least one of allOf, noneOf, anyOf"}
}

// IndexOutOfBoundsErr reports ComponentMapper.removeInternal past the backing array length.
func IndexOutOfBoundsErr(entity Entity) *ECSError {
	return newEntityError(ErrIndexOutOfBounds, fmt.Sprintf("entity %d exceeds mapper capacity", entity), entity)
}

// InjectableNotFoundErr reports an Injected lookup for an unregistered name
// or for a value of a different type.
func InjectableNotFoundErr(name string) *ECSError {
	return newTypeError(ErrInjectableNotFound, fmt.Sprintf("no injectable registered under name %q", name), name)
}
