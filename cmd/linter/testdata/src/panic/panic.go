package panic

func mustPositive(n int) int {
	if n < 0 {
		panic("negative") // want `panic\(\) should not be used, return an error instead`
	}
	return n
}
