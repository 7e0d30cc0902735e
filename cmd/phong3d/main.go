package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strconv"

	"github.com/lukaszgryglicki/phong3d/internal/phong3d"
)

func main() {
	phong3d.Debug = os.Getenv("DEBUG") != ""
	phong3d.Progress = os.Getenv("QUIET") == ""
	phong3d.ForceFormat = os.Getenv("FORMAT")
	if w, err := strconv.Atoi(os.Getenv("WORKERS")); err == nil {
		phong3d.Workers = w
	}
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := "scenes/sphere.json"
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := phong3d.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
