package window

import "fmt"

func ExampleNew() {
	w, _ := New(5, 0, WithTaper(1))
	c := w.Coefficients()
	fmt.Printf("%.2f %.2f %.2f %.2f %.2f\n", c[0], c[1], c[2], c[3], c[4])
	// Output:
	// 0.00 0.50 1.00 0.50 0.00
}

func ExampleWindow_Start() {
	w, _ := New(5, 2)
	fmt.Println(w.Start(11), w.End(11))
	// Output:
	// 5 10
}
