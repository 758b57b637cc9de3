package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/plan-systems/klog"

	"github.com/acset-systems/goacset/goacset"
	"github.com/acset-systems/goacset/libacset"
)

func main() {

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	showAutos := flag.Bool("autos", false, "print each automorphism, not just the count")
	noPrune := flag.Bool("no-prune", false, "disable all pruning tactics")

	flag.Parse()

	pathname := flag.Arg(0)
	if pathname == "" {
		klog.Fatalf("usage: goacset [-autos] [-no-prune] <acset-expr-file>")
	}

	src, err := os.ReadFile(pathname)
	if err != nil {
		klog.Fatalf("failed to read %q: %v", pathname, err)
	}

	_, acsets, err := libacset.ParseDocument(string(src))
	if err != nil {
		klog.Fatalf("failed to parse %q: %v", pathname, err)
	}

	names := make([]string, 0, len(acsets))
	for name := range acsets {
		names = append(names, name)
	}
	sort.Strings(names)

	opts := goacset.DefaultSearchOpts
	if *noPrune {
		opts = goacset.SearchOpts{}
	}

	for _, name := range names {
		g := acsets[name]

		autos, tree, err := libacset.Autos(g, opts)
		if err != nil {
			klog.Fatalf("%s: automorphism search failed: %v", name, err)
		}
		hash, err := libacset.CanonicalHash(g)
		if err != nil {
			klog.Fatalf("%s: canonicalization failed: %v", name, err)
		}

		fmt.Printf("%s: hash=%016x autos=%d leaves=%d nodes=%d\n",
			name, hash, len(autos), len(tree.Leaves()), tree.NumNodes())

		if *showAutos {
			for _, P := range autos {
				fmt.Printf("    %v\n", P)
			}
		}
	}

	klog.Flush()
}
