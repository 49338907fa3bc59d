package sbvh

import "math"

// maxCost seeds a split search so the first candidate evaluated always
// looks strictly cheaper.
const maxCost float32 = math.MaxFloat32
