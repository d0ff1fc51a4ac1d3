// Command timer-demo polls two interval timers for a couple of seconds and
// reports each elapse.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/kvist-ml/kvist/timer"
)

func main() {
	fast, err := timer.New(200*time.Millisecond, true)
	if err != nil {
		log.Fatal(err)
	}
	slow, err := timer.New(500*time.Millisecond, true)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("fast timer: %d ms, slow timer: %d ms\n",
		fast.Milliseconds(), slow.Milliseconds())

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if fast.Elapsed() {
			fmt.Println("fast timer elapsed")
		}
		if slow.Elapsed() {
			fmt.Println("slow timer elapsed")
		}
		time.Sleep(10 * time.Millisecond)
	}
}
