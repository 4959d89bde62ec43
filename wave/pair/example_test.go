package pair

import "fmt"

func ExampleNewSynthetic() {
	p, _ := NewSynthetic(WithNoise(0), WithFast(30), WithLag(10))
	fmt.Println(p.NSamps(), p.Centre(), p.Angle())
	// Output:
	// 491 245 0
}

func ExamplePair_RotateTo() {
	p, _ := NewSynthetic(WithNoise(0))
	r, _ := p.RotateTo(30)
	fmt.Println(p.Angle(), r.Angle())
	// Output:
	// 0 30
}

func ExamplePair_Window() {
	p, _ := NewSynthetic(WithNoise(0), WithDelta(0.1), WithNSamps(101))
	w, _ := p.Window(5.0, 1.0)
	fmt.Println(w.Width(), w.Offset())
	// Output:
	// 11 0
}
