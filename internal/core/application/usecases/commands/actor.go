package commands

import (
	"errors"
	"fmt"

	"distribution/internal/core/domain/model/kernel"
	"distribution/internal/pkg/errs"
	"distribution/internal/pkg/guard"
)

// ErrActorIsNotConstructed is returned when an Actor was not created via
// the NewActor constructor.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Role is the caller's position in the distribution hierarchy.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdmin is the back-office administrator with full access.
	RoleAdmin

	// RoleAgent is a sales representative placing orders for retailers.
	RoleAgent

	// RoleDeliveryStaff is a delivery sales representative carrying stock.
	RoleDeliveryStaff

	// RolePacker is a warehouse packer handing out daily stock.
	RolePacker

	// RoleCustomerCare is the care desk handling follow-up calls.
	RoleCustomerCare
)

// Validate checks that the role is one of the defined values.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleAgent, RoleDeliveryStaff, RolePacker, RoleCustomerCare:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "Admin"
	case RoleAgent:
		return "Agent"
	case RoleDeliveryStaff:
		return "DeliveryStaff"
	case RolePacker:
		return "Packer"
	case RoleCustomerCare:
		return "CustomerCare"
	default:
		return "Unknown"
	}
}

// RoleFromString parses a role from its string form.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "Admin":
		return RoleAdmin, nil
	case "Agent":
		return RoleAgent, nil
	case "DeliveryStaff":
		return RoleDeliveryStaff, nil
	case "Packer":
		return RolePacker, nil
	case "CustomerCare":
		return RoleCustomerCare, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", s))
	}
}

// Actor identifies who invokes a command. Every handler checks the actor
// against the capability table before touching any aggregate.
type Actor struct {
	id   kernel.UUID
	role Role

	guard guard.ConstructorGuard
}

// NewActor creates an actor from a validated identity and role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}

	return Actor{
		id:    id,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the actor was created through the constructor.
func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

// ID returns the actor's identity reference.
func (a Actor) ID() kernel.UUID {
	return a.id
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// capabilities is the single authorization table mapping each operation to
// the roles allowed to invoke it. Handlers consult it once per command;
// scattering role checks across layers is deliberately avoided.
var capabilities = map[string][]Role{
	"createOrder":        {RoleAdmin, RoleAgent},
	"createReadyOrder":   {RoleAdmin, RoleDeliveryStaff},
	"dispatchOrders":     {RoleAdmin, RolePacker},
	"updateOrderLine":    {RoleAdmin, RoleAgent, RoleDeliveryStaff, RolePacker},
	"cancelOrder":        {RoleAdmin, RoleDeliveryStaff, RoleCustomerCare},
	"deliverOrder":       {RoleAdmin, RoleDeliveryStaff},
	"continueBakiOrder":  {RoleAdmin, RoleDeliveryStaff},
	"recordPickup":       {RoleAdmin, RoleDeliveryStaff},
	"recordPackOut":      {RoleAdmin, RolePacker},
	"markReturned":       {RoleAdmin, RolePacker},
	"fileCareRequest":    {RoleAdmin, RoleDeliveryStaff, RoleCustomerCare},
	"resolveCareRequest": {RoleAdmin, RoleCustomerCare},
}

// authorize checks the actor against the capability table for an operation.
// Returns Forbidden when the actor's role is not allowed.
func authorize(operation string, actor Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	allowed, ok := capabilities[operation]
	if !ok {
		return errs.NewForbiddenError(operation, actor.ID().String())
	}

	for _, role := range allowed {
		if actor.Role() == role {
			return nil
		}
	}

	return errs.NewForbiddenErrorWithCause(operation, actor.ID().String(),
		fmt.Errorf("role %s is not allowed", actor.Role()))
}
