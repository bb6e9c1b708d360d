package DG

// Legendre evaluates the degree p Legendre polynomial together with its
// first and second derivatives at x, carrying the derivative recurrences
// alongside the standard three-term recurrence
//
//	k L_k = (2k-1) x L_{k-1} - (k-1) L_{k-2}
//
// which stays well conditioned at the double-digit orders typical of DG
// runs, unlike summing high powers of x directly.
func Legendre(p int, x float64) (L0, L0_1, L0_2 float64) {
	var (
		L1, L1_1, L1_2 float64
		L2, L2_1, L2_2 float64
	)
	L0 = 1
	for k := 1; k <= p; k++ {
		L2, L2_1, L2_2 = L1, L1_1, L1_2
		L1, L1_1, L1_2 = L0, L0_1, L0_2
		a := (2*float64(k) - 1) / float64(k)
		b := (float64(k) - 1) / float64(k)
		L0 = a*x*L1 - b*L2
		L0_1 = a*(L1+x*L1_1) - b*L2_1
		L0_2 = a*(2*L1_1+x*L1_2) - b*L2_2
	}
	return
}
