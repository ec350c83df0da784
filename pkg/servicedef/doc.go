// Package servicedef provides a typed in-memory model of a service-interface
// definition: methods, data-transfer objects, enumerated types, and error
// sets, together with the validation that checks the definition for internal
// consistency.
//
// The model is constructed from already-parsed data by an external front end
// and consumed by downstream code generators. It performs no I/O of its own.
//
// # Construction
//
//	svc := servicedef.NewService(servicedef.ServiceDef{
//	    Name:    "WidgetApi",
//	    Members: members,
//	})
//	for _, err := range svc.ValidationErrors() {
//	    fmt.Println(err)
//	}
//
// NewService never fails; it returns a possibly-invalid graph and defers all
// error reporting to ValidationErrors. NewValidService is the strict form:
// it drains the full error list and fails construction on the first error.
//
// # Immutability
//
// Entities are built once from parsed data and treated as read-only for the
// remainder of their existence; a changed definition is a new object graph.
// Once constructed, a service is safe to share across goroutines without
// locking.
package servicedef
