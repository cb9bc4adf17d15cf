// Package binder fills request structs from the parts of an HTTP request.
//
// Each binder reads one source and only the fields tagged for it:
//
//	type addItemRequest struct {
//		ID   string `path:"id"`
//		Name string `form:"name" json:"name"`
//		Qty  string `form:"qty" json:"qty"`
//	}
//
// Form reads url-encoded and multipart bodies, Path reads router
// parameters through an extractor such as chi.URLParam, and Signals reads
// the JSON signal payload DataStar sends with backend actions. A binder that
// has nothing to read returns ErrBinderNotApplicable, which handler.Wrap
// skips, so one route can accept a plain form post and a DataStar request.
package binder
