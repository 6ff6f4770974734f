// Package introspect derives operation facts from serializer fields and views.
//
// The helpers are called by a document generator while it builds operations. Pure
// helpers are package functions:
//
//   - [IsListView] and [GuessResponseStatus] guess the shape of an operation
//   - [Consumes] and [Produces] derive media type lists
//   - [ParamListToMap] checks (name, in) uniqueness of parameters
//   - [FilterNone] strips nil entries from collections
//
// Helpers that depend on policy settings hang off an [Inspector]:
//
//	in := introspect.NewInspector(
//	    introspect.WithCoerceDecimalToString(false),
//	    introspect.WithRefNameCase(introspect.RefNameCaseSnake),
//	    introspect.WithLogger(logger),
//	)
//	if v, ok := in.FieldDefault(field); ok {
//	    schema.Default = v
//	}
//
// Introspection never fails. When a default cannot be computed, the Inspector logs
// a warning and reports no default.
package introspect
