package mucow

import (
	"context"
	"reflect"

	"github.com/zoobzio/capitan"
)

// Signals for pointer events. Each fires at a clone-materialization point,
// so an observer sees every copy this package makes.
var (
	SignalConsume   = capitan.NewSignal("mucow.consume", "Ownership extracted from a pointer")
	SignalDuplicate = capitan.NewSignal("mucow.duplicate", "Pointer duplicated into an owned copy")
	SignalPromote   = capitan.NewSignal("mucow.promote", "Borrowed cow promoted to owned on mutable access")
)

// Keys for typed event data.
var (
	KeyTypeName = capitan.NewStringKey("type_name")
	KeyVariant  = capitan.NewStringKey("variant")
	KeyClones   = capitan.NewIntKey("clones")
)

const (
	variantBorrowed = "borrowed"
	variantOwned    = "owned"
)

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// emitConsume emits an event when IntoOwned extracts ownership.
func emitConsume[T any](variant string, cloned bool) {
	clones := 0
	if cloned {
		clones = 1
	}
	capitan.Emit(context.Background(), SignalConsume,
		KeyTypeName.Field(typeName[T]()),
		KeyVariant.Field(variant),
		KeyClones.Field(clones),
	)
}

// emitDuplicate emits an event when Clone materializes an owned copy.
func emitDuplicate[T any](variant string) {
	capitan.Emit(context.Background(), SignalDuplicate,
		KeyTypeName.Field(typeName[T]()),
		KeyVariant.Field(variant),
		KeyClones.Field(1),
	)
}

// emitPromote emits an event when a borrowed Cow clones on mutable access.
func emitPromote[T any]() {
	capitan.Emit(context.Background(), SignalPromote,
		KeyTypeName.Field(typeName[T]()),
		KeyVariant.Field(variantBorrowed),
		KeyClones.Field(1),
	)
}
