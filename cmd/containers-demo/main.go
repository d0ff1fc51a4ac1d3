// Command containers-demo walks through the array, vector and list
// containers.
package main

import (
	"fmt"
	"log"

	"github.com/kvist-ml/kvist/containers"
)

func main() {
	arr, err := containers.NewArray[int](5)
	if err != nil {
		log.Fatal(err)
	}
	arr.Fill(3)
	if err := arr.Set(2, 9); err != nil {
		log.Fatal(err)
	}
	fmt.Println("array: ", arr.Values())

	vec := containers.NewVector(1, 2, 3)
	vec.PushBack(4)
	if err := vec.Insert(0, 0); err != nil {
		log.Fatal(err)
	}
	fmt.Println("vector:", vec.Values())
	if last, err := vec.PopBack(); err == nil {
		fmt.Println("popped:", last)
	}

	list := containers.NewList("b", "c")
	list.PushFront("a")
	list.PushBack("d")
	fmt.Print("list:   ")
	list.Do(func(v string) { fmt.Print(v, " ") })
	fmt.Println()
	fmt.Print("rev:    ")
	list.DoReverse(func(v string) { fmt.Print(v, " ") })
	fmt.Println()
}
