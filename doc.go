// Package oasmeta provides declarative operation overrides and field introspection
// helpers for OpenAPI document generators.
//
// A document generator discovers operations from API handlers. oasmeta is the part
// that lets handler authors correct that discovery, and that answers the small
// questions a generator asks about serializer fields and views along the way.
//
// # Overview
//
// The library consists of these packages:
//
//   - override: attach override records to handlers and read them back per HTTP method
//   - introspect: list-view detection, response status guesses, JSON-safe field
//     defaults, reference names, consumes/produces lists and parameter uniqueness
//   - oas: the small OpenAPI object model exchanged with the generator
//   - oaserrors: structured error types usable with errors.Is and errors.As
//   - oaslog: the logging interface, with log/slog and zap adapters
//   - config: settings loaded from a YAML file and OASMETA_ environment variables
//
// # Installation
//
//	go get github.com/erraggy/oasmeta
//
// # Quick Start
//
// Register overrides while wiring handlers:
//
//	import "github.com/erraggy/oasmeta/override"
//
//	var createUser = override.MustRegister(&override.Handler{Name: "create_user"},
//		override.WithOperationID("users_create"),
//		override.WithRequestBody(UserSerializer{}),
//		override.WithResponse("201", "user created"),
//	)
//
// Read them back while generating:
//
//	if spec, ok := override.Lookup(createUser, "post"); ok {
//		if id, set := spec.OperationID().Get(); set {
//			op.OperationID = id
//		}
//	}
//
// Derive field facts with an Inspector configured from settings:
//
//	settings, err := config.Load("")
//	if err != nil {
//		log.Fatal(err)
//	}
//	in := introspect.NewInspector(settings.InspectorOptions()...)
//	if v, ok := in.FieldDefault(field); ok {
//		schema.Default = v
//	}
//
// # Error Handling
//
// Registration fails fast. Configuration conflicts match oaserrors.ErrConfig and
// repeated registrations match oaserrors.ErrDuplicate. Introspection never fails;
// degraded results are logged through oaslog.Logger at warn level.
package oasmeta
