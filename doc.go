// Package toolbelt is a set of small, independent helpers.
//
// The root package holds the function helpers: Serial composes callables,
// Delay waits, Clone and OmitShallowProps copy values and TryCatch runs a
// function without letting its failure escape. Sibling packages cover
// byte sizes (kbytes), loose value detection (kvalue), null stripping of
// decoded documents (knull) and generic type helpers (ktype).
//
//	defer toolbelt.Serial(
//		toolbelt.Func(flush),
//		toolbelt.Call(log.Println, "closed", name),
//	)()
package toolbelt
