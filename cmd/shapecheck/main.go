// shapecheck infers the output type of an operator from the types of its inputs.
//
// Usage:
//
//	shapecheck [flags] <operator> <input>...
//
// Example:
//
//	$ shapecheck add 'tensor<2x3xf32>' 'tensor<3xf32>'
//	tensor<2x3xf32>
//	$ shapecheck concatenate 'tensor<2x5xf32>' 'tensor<3x5xf32>'
//	tensor<5x5xf32>
//
// Inputs can also be given as JSON literals, whose numbers have the dtype set by -literal_dtype:
//
//	$ shapecheck multiply '[[1, 2, 3], [4, 5, 6]]' 'tensor<3xf32>'
//	tensor<2x3xf32>
//
// Use -v=1 to log each relation call.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/gomlx/typerel"
	"github.com/gomlx/typerel/registry"
	"github.com/gomlx/typerel/solver"
	"github.com/gomlx/typerel/types/optypes"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagStrictCompare    = flag.Bool("strict_compare", false, "Comparisons require operands of the same dtype.")
	flagConcatDTypeCheck = flag.Bool("concat_dtype_check", false, "Concatenation requires all inputs to have the same dtype.")
	flagList             = flag.Bool("list", false, "List the known operators and exit.")
	flagLiteralDType     = flag.String("literal_dtype", "f32", "DType of the numbers in JSON literal inputs, e.g. f32, i64.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	cfg := config{
		strictCompare:    *flagStrictCompare,
		concatDTypeCheck: *flagConcatDTypeCheck,
		literalDType:     *flagLiteralDType,
		logger:           klog.NewKlogr(),
	}
	if *flagList {
		listOperators(os.Stdout, cfg)
		return
	}
	if err := run(os.Stdout, cfg, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "shapecheck: %v\n", err)
		klog.Flush()
		os.Exit(1)
	}
}

type config struct {
	strictCompare, concatDTypeCheck bool
	literalDType                    string
	logger                          logr.Logger
}

func (cfg config) registry() *registry.Registry {
	set := typerel.New(
		typerel.WithLogger(cfg.logger),
		typerel.WithStrictCompareDTypes(cfg.strictCompare),
		typerel.WithConcatDTypeCheck(cfg.concatDTypeCheck))
	return registry.New(set)
}

func listOperators(w io.Writer, cfg config) {
	r := cfg.registry()
	for _, op := range r.OpTypes() {
		entry, _ := r.Lookup(op)
		_, _ = fmt.Fprintf(w, "%s\t%d\n", op.SnakeCase(), entry.NumArgs)
	}
}

// run infers the output type of args[0] applied to the inputs in args[1:] and prints it to w.
func run(w io.Writer, cfg config, args []string) error {
	if len(args) < 1 {
		return errors.New("missing operator, usage: shapecheck [flags] <operator> <input>...")
	}
	r := cfg.registry()
	entry, err := r.LookupName(args[0])
	if err != nil {
		return err
	}

	g := solver.New(solver.WithLogger(cfg.logger))
	inputs := make([]solver.SlotID, 0, len(args)-1)
	for _, text := range args[1:] {
		t, err := parseInput(text, cfg.literalDType)
		if err != nil {
			return err
		}
		inputs = append(inputs, g.NewSlot(t))
	}

	// Concatenation takes a tuple: it can be given directly, or as a list of tensors.
	if entry.OpType == optypes.Concatenate && len(inputs) > 1 {
		tuple := g.NewIncomplete()
		if err := g.AddConstraint("tuple", solver.TupleRelation, len(inputs), append(inputs, tuple)...); err != nil {
			return err
		}
		inputs = []solver.SlotID{tuple}
	}
	if len(inputs) != entry.NumArgs {
		return errors.Errorf("operator %s takes %d inputs, got %d", entry.OpType.SnakeCase(), entry.NumArgs, len(inputs))
	}

	output := g.NewIncomplete()
	if err := g.AddConstraint(entry.OpType.SnakeCase(), entry.Relation, entry.NumArgs, append(inputs, output)...); err != nil {
		return err
	}
	if err := g.Solve(); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, g.Type(output))
	return err
}
