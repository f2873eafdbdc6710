package flott

import (
	"context"
	"fmt"
)

func Example() {
	inst, err := New(DefaultConfig())
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := inst.AddSource(BytesSource([]byte("AAAA"))); err != nil {
		fmt.Println(err)
		return
	}
	result, err := inst.Run(context.Background())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("levels=%d complexity=%.1f\n", result.Levels, result.Complexity)
	// Output:
	// levels=1 complexity=2.0
}

func Example_distance() {
	a := []byte("AAAA")
	b := []byte("BBBB")
	fmt.Printf("NTCD=%.1f\n", NTCD(a, b))
	// Output:
	// NTCD=1.0
}
