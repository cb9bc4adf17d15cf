// Package shoplist holds the shopping-list domain: input sanitizers, the
// submission policy, derived statistics and the in-memory list store.
//
// The sanitizers are total functions meant to run on every keystroke:
//
//	shoplist.SanitizeName("Arroz 5kg!")  // "Arroz kg"
//	shoplist.SanitizeQuantity("10 Kg ")  // "10kg"
//	shoplist.SanitizeQuantity("10k")     // "10k" (waypoint toward "kg")
//	shoplist.FinalizeQuantity("10k")     // "10" (field lost focus)
//
// ParseSubmission applies the two validation rules used when an item is
// added: the sanitized name must not be empty and a non-empty quantity must
// match digits[(g|kg)]. Failures are validator.ValidationErrors keyed by
// FieldName and FieldQuantity so views can refocus the offending input.
//
// ComputeStats derives {total, bought, remaining} from completion flags;
// Stats also renders the progress percentage and the summary subtitle.
//
// List is a mutex-guarded ordered collection of items and Store maps visitor
// ids to lists, evicting the least recently used list when full. Nothing is
// persisted.
package shoplist
