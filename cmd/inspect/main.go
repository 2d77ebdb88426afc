// Command inspect loads an 8051 binary image into code ROM and drives it
// interactively through cpu.CPU.Debug, optionally recording a trace of
// every executed instruction.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"emu8051/cpu"
	"emu8051/trace"
)

func main() {
	var (
		offset    = flag.Uint("offset", 0, "code ROM offset to load the image at")
		romSize   = flag.Int("rom", 64*1024, "code ROM size in bytes")
		xdataSize = flag.Int("xdata", 64*1024, "external data memory size in bytes")
		tracePath = flag.String("trace", "", "if set, record a trace container to this path")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: inspect [flags] <image-file>")
		os.Exit(2)
	}

	program, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		slog.Error("read image", "error", err)
		os.Exit(1)
	}

	c := cpu.NewCPU(*romSize, *xdataSize)
	c.State.EnableUpperRAM()

	if *tracePath != "" {
		w := &trace.ContainerWriter{}
		if err := c.TraceOpen(w, *tracePath, trace.Meta{TracerName: "emu8051"}); err != nil {
			slog.Error("open trace", "error", err)
			os.Exit(1)
		}
		defer c.TraceClose()
	}

	if err := c.Debug(program, uint16(*offset)); err != nil {
		slog.Error("debug session", "error", err)
		os.Exit(1)
	}
}
