package bitregion_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/bitregion"
)

func Example() {
	r, err := bitregion.New(16) // 128 bits, anonymous
	if err != nil {
		log.Fatal(err)
	}
	defer r.Close()

	if err := r.Set(42, true); err != nil {
		log.Fatal(err)
	}

	on, _ := r.Get(42)
	off, _ := r.Get(43)
	fmt.Println(r.Len(), on, off)
	// Output: 128 true false
}

func ExampleRegion_Union() {
	a, _ := bitregion.New(1)
	defer a.Close()
	b, _ := bitregion.New(1)
	defer b.Close()

	_ = a.SetBits(0, 2)
	_ = b.SetBits(0, 1)

	u, err := a.Union(b)
	if err != nil {
		log.Fatal(err)
	}
	defer u.Close()

	fmt.Printf("%08b\n", u.Bytes()[0])
	// Output: 11100000
}
