// Command meminfo prints the CPU features detected on this machine and the
// bulk-memory kernel sets registered for it, marking the one the mem package
// selects.
//
// Usage:
//
//	meminfo [flags]
//
// Examples:
//
//	meminfo
//	meminfo -features
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	mem "github.com/cwbudde/algo-mem"
	"github.com/cwbudde/algo-mem/internal/cpu"
	"github.com/cwbudde/algo-mem/internal/registry"
)

func main() {
	featuresOnly := flag.Bool("features", false, "print detected CPU features only")
	flag.Parse()

	features := cpu.DetectFeatures()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "architecture\t%s\n", features.Architecture)
	fmt.Fprintf(w, "sse2\t%v\n", features.HasSSE2)
	fmt.Fprintf(w, "avx2\t%v\n", features.HasAVX2)
	fmt.Fprintf(w, "neon\t%v\n", features.HasNEON)

	if *featuresOnly {
		return
	}

	selected := mem.Implementation()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "kernel set\tlevel\tpriority\teligible\t")
	for _, e := range registry.Global.ListEntries() {
		marker := ""
		if e.Name == selected {
			marker = "(selected)"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%v\t%s\n",
			e.Name, e.SIMDLevel, e.Priority, cpu.Supports(features, e.SIMDLevel), marker)
	}
}
