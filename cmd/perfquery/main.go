// Command perfquery inspects the local performance counter catalog: it can
// list counter objects, the counters and instances of one object, every
// concrete counter path, the expansion of a wildcard path, or sample a
// counter a few times.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/zaphar/win-utils/internal/pdh"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "perfquery: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		machine = flag.String("machine", "", "remote machine to enumerate")
		objects = flag.Bool("objects", false, "list performance counter objects")
		object  = flag.String("object", "", "list the counters and instances of one object")
		expand  = flag.String("expand", "", "expand a wildcard counter path")
		path    = flag.String("path", "", "sample a counter path")
		samples = flag.Int("n", 5, "number of samples to read with -path")
		delay   = flag.Duration("delay", time.Second, "delay between samples with -path")
	)
	flag.Parse()

	catalog := pdh.NewCatalog().WithMachine(*machine)

	switch {
	case *objects:
		return printObjects(catalog)
	case *object != "":
		return printItems(catalog, *object)
	case *expand != "":
		return printExpansion(catalog, *expand)
	case *path != "":
		return samplePath(*machine, *path, *samples, *delay)
	default:
		return printAllPaths(catalog)
	}
}

func printObjects(catalog *pdh.Catalog) error {
	objects, err := catalog.ListObjects()
	if err != nil {
		return err
	}
	sort.Strings(objects)
	fmt.Println("Performance counter objects:")
	for _, obj := range objects {
		fmt.Printf("\t%s\n", obj)
	}
	return nil
}

func printItems(catalog *pdh.Catalog, object string) error {
	counters, instances, err := catalog.ListItems(object)
	if err != nil {
		return err
	}
	fmt.Printf("Counters for %s:\n", object)
	for _, instance := range instances {
		for _, counter := range counters {
			path := pdh.CounterPath{Object: object, Instance: instance, Counter: counter}
			fmt.Printf("\t%s\n", path)
		}
	}
	return nil
}

func printExpansion(catalog *pdh.Catalog, wildcard string) error {
	paths, err := catalog.ExpandWildcardPath(wildcard)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

func printAllPaths(catalog *pdh.Catalog) error {
	paths, err := catalog.ListAllCounterPaths()
	if err != nil {
		return err
	}
	rendered := make([]string, 0, len(paths))
	for _, p := range paths {
		rendered = append(rendered, p.String())
	}
	sort.Strings(rendered)
	for _, p := range rendered {
		fmt.Println(p)
	}
	return nil
}

func samplePath(machine, path string, samples int, delay time.Duration) error {
	query, err := pdh.OpenQuery(machine)
	if err != nil {
		return err
	}
	defer query.Close()

	stream, err := pdh.StreamFromPath[float64](query, path)
	if err != nil {
		return err
	}
	stream = stream.WithDelay(delay)

	// The first reading of a rate counter has no interval behind it yet.
	if _, err := stream.Next(); err != nil {
		return err
	}

	for i := 0; i < samples; i++ {
		value, err := stream.Next()
		if err != nil {
			fmt.Fprintf(os.Stderr, "err: %v\n", err)
			continue
		}
		fmt.Printf("%s: %v\n", path, value)
	}
	return nil
}
