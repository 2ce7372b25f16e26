package utils

// Linspace returns num evenly spaced values over the closed interval
// [start, stop]. A single requested value is placed at start.
func Linspace(start, stop float64, num int) []float64 {
	if num <= 0 {
		return nil
	}
	if num == 1 {
		return []float64{start}
	}

	step := (stop - start) / float64(num-1)
	values := make([]float64, num)
	for i := range values {
		values[i] = start + float64(i)*step
	}
	// Pin the endpoint to avoid accumulated rounding error.
	values[num-1] = stop

	return values
}

// Clamp restricts value to the range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
