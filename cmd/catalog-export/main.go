package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cognisync/go-engine/internal/catalog"
)

// #region main

func main() {
	outPath := flag.String("out", "", "dump the built-in catalog to a YAML file")
	checkPath := flag.String("check", "", "validate an external catalog YAML file")
	flag.Parse()

	if (*outPath == "" && *checkPath == "") || (*outPath != "" && *checkPath != "") {
		fmt.Fprintln(os.Stderr, "usage: catalog-export --out catalog.yaml")
		fmt.Fprintln(os.Stderr, "       catalog-export --check path/to/catalog.yaml")
		os.Exit(2)
	}

	var err error
	if *outPath != "" {
		err = runExport(*outPath)
	} else {
		err = runCheck(*checkPath)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region modes

func runExport(outPath string) error {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	cat := catalog.Builtin()
	if err := cat.WriteYAML(f); err != nil {
		return err
	}
	fmt.Printf("wrote %d tactic keys and %d defaults to %s\n",
		cat.Len(), len(cat.Defaults()), outPath)
	return nil
}

func runCheck(path string) error {
	cat, err := catalog.Load(path)
	if err != nil {
		return err
	}
	fmt.Printf("%s: valid (%d tactic keys, %d defaults)\n", path, cat.Len(), len(cat.Defaults()))
	return nil
}

// #endregion modes
