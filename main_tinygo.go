//go:build tinygo

package main

import (
	"dodgebit/app"
	"dodgebit/hal"
)

func main() {
	app.Run(hal.New())
}
