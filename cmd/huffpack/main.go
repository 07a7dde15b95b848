package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"huffpack/internal/codec"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: huffpack [-c | -d] input_file output_file")
	flag.PrintDefaults()
}

func main() {
	var compressFlag bool
	var decompressFlag bool
	flag.BoolVar(&compressFlag, "c", false, "compress")
	flag.BoolVar(&decompressFlag, "d", false, "decompress")
	flag.Usage = usage
	flag.Parse()

	if compressFlag && decompressFlag {
		usage()
		os.Exit(1)
	}
	if !compressFlag && !decompressFlag {
		compressFlag = true
	}

	args := flag.Args()
	if len(args) != 2 {
		usage()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	input, err := os.ReadFile(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "huffpack: %v\n", err)
		os.Exit(1)
	}

	start := time.Now()

	var output []byte
	if compressFlag {
		output, err = codec.Encode(input)
	} else {
		output, err = codec.Decode(input)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "huffpack: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, output, 0o664); err != nil {
		fmt.Fprintf(os.Stderr, "huffpack: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d bytes in, %d bytes out, finished in %.4f seconds\n",
		len(input), len(output), time.Since(start).Seconds())
}
