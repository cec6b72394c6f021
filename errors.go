package depot

import (
	"fmt"

	"github.com/TheBitDrifter/bark"
)

type LockedStorageError struct{}

func (e LockedStorageError) Error() string {
	return "world is currently locked"
}

type InvalidEntityError struct {
	Entity EntityHandle
}

func (e InvalidEntityError) Error() string {
	return fmt.Sprintf("entity %d does not exist", e.Entity)
}

type ComponentExistsError struct {
	Entity    EntityHandle
	Component ComponentType
}

func (e ComponentExistsError) Error() string {
	return fmt.Sprintf("component %s already exists on entity %d", componentName(e.Component), e.Entity)
}

type ComponentNotFoundError struct {
	Entity    EntityHandle
	Component ComponentType
}

func (e ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component %s does not exist on entity %d", componentName(e.Component), e.Entity)
}

// UnregisteredTypeError reports use of a component or system type that was
// never registered with the registry in question.
type UnregisteredTypeError struct {
	Name string
}

func (e UnregisteredTypeError) Error() string {
	return fmt.Sprintf("type %s is not registered", e.Name)
}

type DuplicateRegistrationError struct {
	Name string
}

func (e DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("type %s is already registered", e.Name)
}

// MembershipError reports an unchecked membership change that contradicts the
// system's current list.
type MembershipError struct {
	Entity  EntityHandle
	Present bool
}

func (e MembershipError) Error() string {
	if e.Present {
		return fmt.Sprintf("entity %d is already a member", e.Entity)
	}
	return fmt.Sprintf("entity %d is not a member", e.Entity)
}

// fail aborts an unchecked operation whose precondition does not hold.
func fail(err error) {
	panic(bark.AddTrace(err))
}
