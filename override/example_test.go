package override_test

import (
	"errors"
	"fmt"
	"os"

	"github.com/erraggy/oasmeta/oas"
	"github.com/erraggy/oasmeta/oaserrors"
	"github.com/erraggy/oasmeta/override"
)

func ExampleRegistry_Register() {
	users := override.NewDispatcher("UserView", map[string]*override.Handler{
		"get": nil, "post": nil,
	})
	userView := &override.Handler{Name: "user_view", Dispatcher: users}

	reg := override.NewRegistry()
	_, err := reg.Register(userView,
		override.WithMethod("post"),
		override.WithOperationID("users_create"),
		override.WithResponse("201", "user created"),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	spec, _ := reg.Lookup(userView, "post")
	fmt.Println(spec.OperationID().Or("<generated>"))

	_, found := reg.Lookup(userView, "get")
	fmt.Println(found)
	// Output:
	// users_create
	// false
}

func ExampleRegistry_Register_ambiguous() {
	avatar := &override.Handler{Name: "avatar", BoundMethods: []string{"get", "put"}}

	reg := override.NewRegistry()
	_, err := reg.Register(avatar, override.WithSummary("Avatar"))
	fmt.Println(errors.Is(err, oaserrors.ErrConfig))
	// Output:
	// true
}

func ExampleRegistry_WriteYAML() {
	reg := override.NewRegistry()
	reg.MustRegister(&override.Handler{Name: "search"},
		override.WithOperationID("search"),
		override.WithManualParameters(&oas.Parameter{Name: "q", In: oas.InQuery, Type: "string", Required: true}),
	)
	if err := reg.WriteYAML(os.Stdout); err != nil {
		fmt.Println(err)
	}
}
