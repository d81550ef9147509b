package signal_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-signal/dsp/signal"
)

func ExampleSample() {
	x, err := signal.Sample(signal.Sinusoid{Frequency: 250, Amplitude: 1}, 1000, 0.005)
	if err != nil {
		panic(err)
	}
	v := x.Real()
	for i := range v {
		if math.Abs(v[i]) < 1e-12 {
			v[i] = 0
		}
	}

	fmt.Printf("%.0f %.0f %.0f %.0f %.0f\n", v[0], v[1], v[2], v[3], v[4])

	// Output:
	// 0 1 0 -1 0
}

func ExampleAdd() {
	s := signal.Add(signal.Impulse{}, signal.Step{})
	fmt.Println(s.At(-1), s.At(0), s.At(1))

	// Output:
	// (0+0i) (2+0i) (1+0i)
}
