// Command devices-demo attaches a few sensors to a loop unit and polls it
// on an interval for a couple of seconds.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/kvist-ml/kvist/devices"
)

func main() {
	unit, err := devices.NewLoopUnit(4, 250*time.Millisecond)
	if err != nil {
		log.Fatal(err)
	}

	for _, bounds := range [][2]uint32{{0, 100}, {20, 30}, {500, 1000}} {
		sensor, err := devices.NewSensor(bounds[0], bounds[1], true)
		if err != nil {
			log.Fatal(err)
		}
		if err := unit.AddSensor(sensor); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("sensor %d (%s) range [%d, %d]\n",
			sensor.ID(), sensor.Serial(), bounds[0], bounds[1])
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, r := range unit.Poll() {
			fmt.Printf("loop unit %d: sensor %d -> %d\n", unit.ID(), r.SensorID, r.Value)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
