// Command helix encodes files into sequence files and back, and simulates
// noisy retrieval runs.
//
// Usage:
//
//	helix encode [-addr N] [-payload N] [-compress zstd] <input> <output.helix>
//	helix decode [-parallel N] <input.helix> <output>
//	helix sim [-seed N] [-drop R] [-dup R] [-sub R] <input>
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/arloliu/helix/codec"
	"github.com/arloliu/helix/format"
	"github.com/arloliu/helix/seqio"
	"github.com/arloliu/helix/sim"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "encode":
		runEncode(os.Args[2:])
	case "decode":
		runDecode(os.Args[2:])
	case "sim":
		runSim(os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: helix <encode|decode|sim> [flags] <args>")
	os.Exit(2)
}

func runEncode(args []string) {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	addrWidth := fs.Int("addr", codec.DefaultAddressWidth, "address width in symbols")
	payloadWidth := fs.Int("payload", codec.DefaultPayloadWidth, "payload width in symbols")
	compName := fs.String("compress", "zstd", "sequence file compression: none, zstd, s2, lz4")
	_ = fs.Parse(args)

	if fs.NArg() != 2 {
		log.Fatal("encode: want <input> <output.helix>")
	}

	comp, err := format.ParseCompressionType(*compName)
	if err != nil {
		log.Fatal(err)
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	encoder, err := codec.NewEncoder(
		codec.WithAddressWidth(*addrWidth),
		codec.WithPayloadWidth(*payloadWidth),
	)
	if err != nil {
		log.Fatal(err)
	}

	sequences, state, err := encoder.Encode(data)
	if err != nil {
		log.Fatal(err)
	}

	if err := seqio.WriteFile(fs.Arg(1), sequences, state, comp); err != nil {
		log.Fatal(err)
	}

	log.Printf("encoded %d bytes into %d sequences of %d symbols (supplement %d bits)",
		len(data), len(sequences), state.SequenceLength(), state.SupplementBits)
}

func runDecode(args []string) {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	parallel := fs.Int("parallel", 1, "decode parallelism, 0 = all CPUs")
	_ = fs.Parse(args)

	if fs.NArg() != 2 {
		log.Fatal("decode: want <input.helix> <output>")
	}

	sequences, state, err := seqio.ReadFile(fs.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	decoder, err := codec.NewDecoder(codec.WithParallelism(*parallel))
	if err != nil {
		log.Fatal(err)
	}

	data, stats, err := decoder.DecodeWithStats(sequences, state)
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile(fs.Arg(1), data, 0o644); err != nil {
		log.Fatal(err)
	}

	lost := state.FrameCount - stats.Placed
	log.Printf("decoded %d sequences into %d bytes (placed %d, lost %d, dropped %d, collisions %d)",
		len(sequences), len(data), stats.Placed, lost, stats.Dropped, stats.Collisions)
}

func runSim(args []string) {
	fs := flag.NewFlagSet("sim", flag.ExitOnError)
	seed := fs.Int64("seed", 2023, "channel random seed")
	drop := fs.Float64("drop", 0.0, "per-sequence drop probability")
	dup := fs.Float64("dup", 0.0, "per-sequence duplicate probability")
	sub := fs.Float64("sub", 0.0, "per-symbol substitution probability")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		log.Fatal("sim: want <input>")
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	// Error-free pass first, then the configured noisy pass.
	report, err := sim.Run(data, sim.RunConfig{Channel: sim.ErrorFree(*seed)})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("error-free: %s", report)

	report, err = sim.Run(data, sim.RunConfig{
		Channel: sim.ChannelConfig{
			Seed:             *seed,
			DropRate:         *drop,
			DuplicateRate:    *dup,
			SubstitutionRate: *sub,
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("noisy:      %s", report)
}
