// Package override attaches declarative operation overrides to API handlers.
//
// A document generator discovers most of an operation automatically. Overrides let
// the author of a handler correct or extend that discovery: replace the request
// body, add manual parameters, change the operation ID, document responses, and so
// on. Overrides are registered once at setup time and read later by the generator.
//
// # Handlers and bindings
//
// A [Handler] is a stable descriptor for one handler callable. How it is reachable
// decides which HTTP methods an override can target:
//
//   - plain handlers serve one method and receive a single whole-handler record
//   - action handlers are bound to methods through BoundMethods or Mapping
//   - dispatched handlers are served by a [Dispatcher] that declares its methods
//
// [Resolve] computes the [Binding] of a handler.
//
// # Registration
//
//	users := override.NewDispatcher("UserView", map[string]*override.Handler{
//	    "get": nil, "post": nil,
//	})
//	userView := &override.Handler{Name: "user_view", Dispatcher: users}
//
//	reg := override.NewRegistry()
//	_, err := reg.Register(userView,
//	    override.WithMethod("post"),
//	    override.WithOperationID("users_create"),
//	    override.WithResponse("201", "user created"),
//	    override.WithResponse("200", nil),
//	)
//
// A handler serving several methods requires WithMethod or WithMethods. Each
// (handler, method) pair accepts exactly one record; a second registration fails
// with an error matching [oaserrors.ErrDuplicate]. Conflicting options fail with
// an error matching [oaserrors.ErrConfig].
//
// # Unset versus nil
//
// An option that is not passed leaves its key absent from the [Spec]. Passing nil
// to a recognized option is the same as not passing it, with one exception:
// WithAutoSchema(nil) is kept and tells the generator to skip the operation.
// [NoBody] is a real request-body value meaning "no body", distinct from nil.
// Typed getters on [Spec] return an [Opt] so callers can tell the cases apart.
package override
