package DG

// Expand rewrites f in place so that every node of each block holds the
// block's single representative value. On entry f packs one value per
// entity at the low addresses (entity e at f[e]); on exit f is the full
// node-indexed layout (entity e spanning f[e*block : (e+1)*block]).
//
// Aliasing invariant: every destination index for entity e is >= the source
// index e, so walking from the highest linear index downward never
// overwrites a representative value before it is read. This is what lets a
// low-order initial condition or restart seed a high-order field without a
// scratch copy.
func Expand[T any](f []T, block int) {
	if block <= 1 {
		return
	}
	if len(f)%block != 0 {
		panic("Expand: field length is not a multiple of the block size")
	}
	for i := len(f) - 1; i >= 0; i -= block {
		c := f[i/block]
		for j := 0; j < block; j++ {
			f[i-j] = c
		}
	}
}

// ExpandCell expands a per-element field to NP nodes per element. No-op
// when the order triple implies a single node per element.
func ExpandCell[T any](el *Discretization, f []T) {
	Expand(f, el.NP)
}

// ExpandFace expands a per-face field to NPF nodes per face.
func ExpandFace[T any](el *Discretization, f []T) {
	Expand(f, el.NPF)
}
