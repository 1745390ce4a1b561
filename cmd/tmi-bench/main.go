// Command tmi-bench replays the wire-format corpus through Parse and Decode
// repeatedly and prints throughput and latency statistics.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/tmigo/tmi"
	"github.com/tmigo/tmi/internal/fixtures"
	"github.com/tmigo/tmi/internal/stats"
)

func main() {
	corpus := flag.String("corpus", "testdata/corpus.yaml", "path to the wire-format corpus")
	iterations := flag.Int("n", 100_000, "iterations per case")
	flag.Parse()

	if err := run(*corpus, *iterations); err != nil {
		log.Fatal(err)
	}
}

func run(corpusPath string, iterations int) error {
	cases, err := fixtures.Load(corpusPath)
	if err != nil {
		return err
	}

	latency := stats.NewMedian(1024)
	var throughput stats.Mean

	for _, tc := range cases {
		if tc.ParseFails {
			continue
		}
		line := tmi.Source(tc.Line)

		start := time.Now()
		var bytesProcessed int64
		for i := 0; i < iterations; i++ {
			frame, ok := tmi.Parse(line)
			if !ok {
				continue
			}
			if _, err := tmi.Decode(frame); err != nil {
				continue
			}
			bytesProcessed += int64(len(line))
		}
		elapsed := time.Since(start)

		perOp := elapsed.Seconds() / float64(iterations)
		latency.Record(perOp)
		throughput.Record(float64(bytesProcessed) / elapsed.Seconds())

		fmt.Fprintf(os.Stdout, "%-40s %10.0f ns/op  %12.0f B/s\n", tc.Name, perOp*1e9, throughput.Get())
	}

	fmt.Fprintf(os.Stdout, "\nmedian latency: %.0f ns/op\n", latency.Get()*1e9)
	return nil
}
