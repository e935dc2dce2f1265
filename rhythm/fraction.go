package rhythm

// gcd by Euclid; arguments are assumed non-negative.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// reduce brings num/den to lowest terms.
func reduce(num, den int) (int, int) {
	if num == 0 {
		return 0, 1
	}
	g := gcd(num, den)
	return num / g, den / g
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// nextLowerPowerOfTwo returns the largest power of two strictly below
// n, never less than 2. It defines the tuplet denominator: 3 -> 2,
// 5 -> 4, 6 -> 4, 7 -> 4, 9 -> 8.
func nextLowerPowerOfTwo(n int) int {
	p := 2
	for p*2 < n {
		p *= 2
	}
	return p
}
