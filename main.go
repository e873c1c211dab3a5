package main

import (
	"fmt"
	"log"
	"os"

	"github.com/samuelfneumann/goslice/slice"
	"github.com/samuelfneumann/goslice/spec"
	"github.com/samuelfneumann/goslice/view"
)

func main() {
	// Default chain: reverse the window [2:8] of a dimension of length 10
	chain := spec.NewChain(10,
		spec.ContiguousConfig{Lower: intPtr(2), Upper: intPtr(8)},
		spec.ExprConfig{Expr: "::-1"},
	)

	if len(os.Args) > 1 {
		file, err := os.Open(os.Args[1])
		if err != nil {
			log.Fatalf("could not open chain file: %v", err)
		}
		defer file.Close()

		chain, err = spec.Load(file)
		if err != nil {
			log.Fatalf("could not load chain: %v", err)
		}
	}

	ds, err := chain.Descriptors()
	if err != nil {
		log.Fatalf("could not create descriptors: %v", err)
	}

	d, err := slice.Fold(ds...)
	if err != nil {
		fmt.Printf("fold: %v\n", err)
	} else {
		size, ok := d.Size()
		fmt.Printf("fold: [%v] (size known: %v, size: %v)\n", d, ok, size)
	}

	idx, err := chain.Create()
	if err != nil {
		log.Fatalf("could not create chain: %v", err)
	}
	fmt.Printf("normalized: %v\n", idx)

	data := make([]float64, chain.Length)
	for i := range data {
		data[i] = float64(i)
	}
	v := view.New(data)
	for _, d := range ds {
		v = v.Slice(d)
	}
	fmt.Printf("view: [%v] %v\n", v.Descriptor(), v.Values())
}

func intPtr(i int) *int {
	return &i
}
