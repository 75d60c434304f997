package generator

import "math"

// SeededRandom returns a value in [0,1) that depends only on seed. The
// sin(seed)*10000 formula is kept so existing demo data stays identical.
func SeededRandom(seed int) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

// SeededInt returns an integer in [min,max].
func SeededInt(min, max, seed int) int {
	return int(math.Floor(SeededRandom(seed)*float64(max-min+1) + float64(min)))
}

func SeededItem[T any](items []T, seed int) T {
	return items[int(math.Floor(SeededRandom(seed)*float64(len(items))))]
}

// DateSeed sums the byte codes of an ISO date string.
func DateSeed(date string) int {
	sum := 0
	for i := 0; i < len(date); i++ {
		sum += int(date[i])
	}
	return sum
}
