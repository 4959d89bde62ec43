package transform

import "fmt"

func ExampleSplit() {
	x := []float64{0, 0, 0, 1, 2, 1, 0, 0, 0}
	y := make([]float64, 9)

	xs, ys, _ := Split(x, y, 0, 2)
	fmt.Println(len(xs), len(ys))
	// Output:
	// 7 7
}

func ExampleLag() {
	x := []float64{0, 1, 2, 3, 4, 5, 6}
	y := []float64{0, 1, 2, 3, 4, 5, 6}

	xl, yl, _ := Lag(x, y, 2)
	fmt.Println(xl)
	fmt.Println(yl)
	// Output:
	// [2 3 4 5 6]
	// [0 1 2 3 4]
}
