package order

import (
	"fmt"
	"strings"

	"ruboard/internal/pkg/errs"
)

// Actor is the role on whose behalf a change is made.
type Actor int

const (
	UnknownActor Actor = iota
	ActorBuyer
	ActorManager
	ActorSupplier
	ActorSystem
)

func getValidActorStrings() map[Actor]string {
	return map[Actor]string{
		ActorBuyer:    "buyer",
		ActorManager:  "manager",
		ActorSupplier: "supplier",
		ActorSystem:   "system",
	}
}

func ParseActor(s string) (Actor, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for actor, str := range getValidActorStrings() {
		if str == name {
			return actor, nil
		}
	}
	return UnknownActor, errs.NewValueIsInvalidErrorWithCause("actor is invalid", fmt.Errorf("%q is not a valid actor", s))
}

func (a Actor) Validate() error {
	if _, ok := getValidActorStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("actor is invalid", fmt.Errorf("%d is not a valid actor", a))
	}
	return nil
}

func (a Actor) String() string {
	if str, ok := getValidActorStrings()[a]; ok {
		return str
	}
	return "unknown"
}
