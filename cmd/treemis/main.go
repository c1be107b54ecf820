// Treemis prints the size of a maximum independent set of a tree.
//
// Input on stdin: n, then n-1 pairs of 1-indexed edge endpoints.
// Output: the size, and with -nodes one optimal set on a second line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/struct2env"
	"github.com/katalvlaran/editorials/internal/tokens"
	"github.com/katalvlaran/editorials/treemis"
)

func main() {
	os.Exit(Main())
}

type Config struct {
	// MaxNodes caps the node count accepted from the input.
	MaxNodes int
}

var config = Config{MaxNodes: 1_000_000}

func EnvHelp(w io.Writer) {
	res, _ := struct2env.StructToEnvVars(config)
	str := struct2env.ToShellWithPrefix("TREEMIS_", res, true)
	fmt.Fprintln(w, "# Treemis environment variables:")
	fmt.Fprint(w, str)
}

func Main() int {
	root := flag.Int("root", 1, "root `node` of the traversal")
	showNodes := flag.Bool("nodes", false, "also print one maximum independent set, ascending")
	cli.EnvHelpFuncs = append(cli.EnvHelpFuncs, EnvHelp)
	errs := struct2env.SetFromEnv("TREEMIS_", &config)
	if len(errs) > 0 {
		log.Errf("Error setting config from env: %v", errs)
	}
	cli.ArgsHelp = "\nreads n then n-1 edges (pairs of node ids in 1..n) from stdin"
	cli.Main()

	t, err := readTree(tokens.NewReader(os.Stdin), config.MaxNodes)
	if err != nil {
		return log.FErrf("Error reading tree: %v", err)
	}
	log.LogVf("Read tree with %d nodes, rooting at %d", t.Len(), *root)

	res, err := treemis.MaxIndependentSet(t, treemis.WithRoot(*root))
	if err != nil {
		return log.FErrf("Error solving: %v", err)
	}

	fmt.Println(res.Size)
	if *showNodes {
		fmt.Println(tokens.JoinInts(res.Nodes))
	}

	return 0
}

func readTree(in *tokens.Reader, maxNodes int) (*treemis.Tree, error) {
	n, err := in.Int("node count")
	if err != nil {
		return nil, err
	}
	if maxNodes > 0 && n > maxNodes {
		return nil, fmt.Errorf("node count %d exceeds TREEMIS_MAX_NODES=%d", n, maxNodes)
	}
	t, err := treemis.NewTree(n)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		u, err := in.Int(fmt.Sprintf("edge %d start", i))
		if err != nil {
			return nil, err
		}
		v, err := in.Int(fmt.Sprintf("edge %d end", i))
		if err != nil {
			return nil, err
		}
		if err = t.AddEdge(u, v); err != nil {
			return nil, err
		}
	}

	return t, nil
}
