// Command matrix-demo runs a short tour of the arithmetic matrix helper.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/kvist-ml/kvist/matrix"
)

func main() {
	a, err := matrix.NewFilled(2, 3, 1)
	if err != nil {
		log.Fatal(err)
	}
	b, err := matrix.NewFilled(2, 3, 2)
	if err != nil {
		log.Fatal(err)
	}

	sum, err := a.Add(b)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("a + b:")
	sum.Print(os.Stdout, 1)

	c, err := matrix.NewFilled(3, 2, 0.5)
	if err != nil {
		log.Fatal(err)
	}
	prod, err := a.Mul(c)
	if err != nil {
		log.Fatal(err)
	}
	prod.Scale(10)
	fmt.Println("10 * (a * c):")
	prod.Print(os.Stdout, 1)
	fmt.Printf("sum=%.1f max=%.1f\n", prod.Sum(), prod.Max())
}
