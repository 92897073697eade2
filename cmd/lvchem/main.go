package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/katalvlaran/lvchem/chem"
	"github.com/katalvlaran/lvchem/periodic"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the program logic so tests can drive it with a buffer.
func run(out io.Writer, args []string) error {
	cfg, shouldExit, err := parse(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	stdr.SetVerbosity(cfg.Verbosity)
	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("lvchem")

	table, err := loadTable(logger, cfg.Tables)
	if err != nil {
		return err
	}

	switch cfg.Command {
	case "element":
		return printElements(out, table, cfg.Args)
	case "atom":
		return printAtoms(out, logger, table, cfg.Charge, cfg.Args)
	case "validate":
		t, err := periodic.NewLoader(periodic.WithLogger(logger)).Load(cfg.Args...)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "ok: %d elements\n", t.Len())
	}
	return nil
}

// loadTable returns the default table with the given files merged over it.
func loadTable(logger logr.Logger, paths []string) (*periodic.MapTable, error) {
	if len(paths) == 0 {
		return periodic.Default(), nil
	}
	t, err := periodic.NewLoader(periodic.WithLogger(logger)).Load(paths...)
	if err != nil {
		return nil, err
	}
	merged := periodic.NewMapTable()
	merged.Merge(periodic.Default())
	merged.Merge(t)
	return merged, nil
}

func printElements(out io.Writer, t *periodic.MapTable, symbols []string) error {
	for _, s := range symbols {
		el, err := t.Find(s)
		if err != nil {
			return err
		}
		en := "-"
		if el.HasElectronegativity() {
			en = fmt.Sprintf("%.2f", el.Electronegativity)
		}
		fmt.Fprintf(out, "%-3s ordinal=%d valences=%s en=%s weight=%g\n",
			el.Symbol, el.Ordinal, joinInts(el.Valences), en, el.Weight)
	}
	return nil
}

func printAtoms(out io.Writer, logger logr.Logger, t *periodic.MapTable, charge int, symbols []string) error {
	for _, s := range symbols {
		a, err := chem.NewAtom(s, chem.WithTable(t), chem.WithLogger(logger), chem.WithCharge(charge))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-3s charge=%d valency=%d free=%d hydrogens=%d oxidation=%d pairs=%g\n",
			a.Symbol(), a.Charge(), a.Valency(), a.FreeValency(), a.HydrogenCount(),
			a.OxidationNumber(), a.ElectronPairs())
	}
	return nil
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}
	return strings.Join(parts, ",")
}
