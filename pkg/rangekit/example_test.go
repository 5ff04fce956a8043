package rangekit_test

import (
	"fmt"

	"go.llib.dev/sugar/pkg/rangekit"
)

func ExampleInt() {
	r, err := rangekit.Int(5, rangekit.Finite(1))
	if err != nil {
		panic(err)
	}
	for n := range r.Seq() {
		fmt.Print(n, " ")
	}
	// Output: 5 4 3 2 1
}

func ExampleInt_unbounded() {
	r, err := rangekit.Int(0, rangekit.PosInf, rangekit.WithStep(10))
	if err != nil {
		panic(err)
	}
	for n := range r.Seq() {
		if 30 < n {
			break
		}
		fmt.Print(n, " ")
	}
	// Output: 0 10 20 30
}

func ExampleChar() {
	r, err := rangekit.Char('a', 'e')
	if err != nil {
		panic(err)
	}
	fmt.Println(r.String())
	// Output: abcde
}

func ExampleNew() {
	r, err := rangekit.New("a", "e", 2)
	if err != nil {
		panic(err)
	}
	switch r := r.(type) {
	case *rangekit.CharRange:
		fmt.Println("chars:", r.String())
	case *rangekit.IntRange:
		fmt.Println("ints:", r.String())
	}
	// Output: chars: ace
}

func ExampleProduct() {
	ints, _ := rangekit.Int(1, rangekit.Finite(2))
	chars, _ := rangekit.Char('a', 'b')
	for n, c := range rangekit.Product(ints.Seq(), chars.Seq()) {
		fmt.Printf("(%d,%c) ", n, c)
	}
	// Output: (1,a) (1,b) (2,a) (2,b)
}
