package values

import "github.com/svgdsl/svgdsl/pathlang/pathctx"

// LayerRef is a first-class handle to a named layer, exposing its name
// and its PathContext (as `.ctx`, read-only from the language's
// perspective: `ctx.position.x` etc).
type LayerRef struct {
	Name string
	IsText bool
	Ctx  *pathctx.PathContext
}
