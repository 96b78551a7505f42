package frame

import (
	"fmt"

	"github.com/npillmayer/flexui/core/dimen"
)

// Intrinsic is a content size hint, provided by whoever knows about a node's
// content (text measurement, images). The size is a content-box size.
//
// If PreserveAspectRatio is set, the solver derives a missing axis from the
// ratio of Size.X to Size.Y.
type Intrinsic struct {
	Size                dimen.Vec2
	PreserveAspectRatio bool
}

// AspectRatio returns width / height of the hint, and false if the hint does
// not ask for a preserved ratio or has no height.
func (in Intrinsic) AspectRatio() (float32, bool) {
	if !in.PreserveAspectRatio || in.Size.Y <= 0 || in.Size.X <= 0 {
		return 0, false
	}
	return in.Size.X / in.Size.Y, true
}

func (in Intrinsic) String() string {
	if in.PreserveAspectRatio {
		return fmt.Sprintf("intrinsic%v (keep ratio)", in.Size)
	}
	return fmt.Sprintf("intrinsic%v", in.Size)
}
