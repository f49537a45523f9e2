package xtrack_test

import (
	"fmt"
	"sync/atomic"

	"github.com/omeyang/schedkit/pkg/lifecycle/xtrack"
)

func ExampleTracker() {
	tr := xtrack.New()

	var count atomic.Int32
	for range 3 {
		tr.Go(func() {
			count.Add(1)
		})
	}

	tr.Close()
	tr.Wait()

	fmt.Println("tasks completed:", count.Load())
	fmt.Println("accepting new tasks:", tr.Go(func() {}))

	// Output:
	// tasks completed: 3
	// accepting new tasks: false
}
