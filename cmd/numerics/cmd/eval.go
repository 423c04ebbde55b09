package cmd

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/numerics/internal/config"
	"github.com/born-ml/numerics/internal/cplx"
)

// operation describes an eval operation.
type operation struct {
	arity int
	help  string
}

var operations = map[string]operation{
	"add":          {2, "z + w"},
	"sub":          {2, "z - w"},
	"mul":          {2, "z * w"},
	"div":          {2, "z / w with rescaling"},
	"muladd":       {3, "z*w + c"},
	"equal":        {2, "equality on the Riemann sphere"},
	"neg":          {1, "-z"},
	"conj":         {1, "complex conjugate"},
	"canonicalize": {1, "canonical representative"},
	"length":       {1, "Euclidean norm"},
	"lengthsq":     {1, "re*re + im*im"},
	"magnitude":    {1, "max(|re|, |im|)"},
	"phase":        {1, "argument in radians"},
	"polar":        {1, "length and phase"},
	"frompolar":    {2, "value from the real parts of length and phase"},
	"normalize":    {1, "unit vector, if one exists"},
	"reciprocal":   {1, "1/z, if it is normal"},
	"classify":     {1, "finite, zero, normal, subnormal"},
}

func operationList() string {
	names := make([]string, 0, len(operations))
	for name, op := range operations {
		names = append(names, fmt.Sprintf("  %-13s %s", name, op.help))
	}
	sort.Strings(names)
	return strings.Join(names, "\n")
}

var evalCmd = &cobra.Command{
	Use:   "eval <op> <z> [w] [c]",
	Short: "Evaluate one complex operation",
	Long: `Evaluate one complex operation at the configured precision.

Operands use Go complex syntax, e.g. 3+4i, -1e300i, (1+2i), Inf, NaN.

Operations:
` + operationList(),
	Args: cobra.RangeArgs(2, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEval(cmd.OutOrStdout(), cfg.Precision, args[0], args[1:])
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

// runEval parses the operands and evaluates op at the given precision.
func runEval(w io.Writer, precision, op string, args []string) error {
	desc, ok := operations[op]
	if !ok {
		return fmt.Errorf("unknown operation %q", op)
	}
	if len(args) != desc.arity {
		return fmt.Errorf("%s takes %d operand(s), got %d", op, desc.arity, len(args))
	}
	operands := make([]complex128, len(args))
	for i, arg := range args {
		v, err := strconv.ParseComplex(arg, 128)
		if err != nil {
			return fmt.Errorf("operand %d: %w", i+1, err)
		}
		operands[i] = v
	}

	switch precision {
	case config.PrecisionFloat32:
		return evaluate[float32](w, op, operands)
	case config.PrecisionFloat64:
		return evaluate[float64](w, op, operands)
	default:
		return fmt.Errorf("unknown precision %q", precision)
	}
}

func evaluate[R cplx.Real](w io.Writer, op string, operands []complex128) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: %v", op, r)
		}
	}()

	args := make([]cplx.Complex[R], len(operands))
	for i, v := range operands {
		args[i] = cplx.FromNative[R](v)
	}
	z := args[0]

	switch op {
	case "add":
		printValue(w, z.Add(args[1]))
	case "sub":
		printValue(w, z.Sub(args[1]))
	case "mul":
		printValue(w, z.Mul(args[1]))
	case "div":
		printValue(w, z.Div(args[1]))
	case "muladd":
		printValue(w, z.MulAdd(args[1], args[2]))
	case "equal":
		fmt.Fprintf(w, "equal: %t\n", z.Equal(args[1]))
	case "neg":
		printValue(w, z.Neg())
	case "conj":
		printValue(w, z.Conj())
	case "canonicalize":
		printValue(w, z.Canonicalized())
	case "length":
		fmt.Fprintf(w, "length: %v\n", z.Length())
	case "lengthsq":
		fmt.Fprintf(w, "length squared: %v\n", z.LengthSquared())
	case "magnitude":
		fmt.Fprintf(w, "magnitude: %v\n", z.Magnitude())
	case "phase":
		fmt.Fprintf(w, "phase: %v\n", z.Phase())
	case "polar":
		p := z.Polar()
		fmt.Fprintf(w, "length: %v\nphase: %v\n", p.Length, p.Phase)
	case "frompolar":
		length, _ := z.Components()
		phase, _ := args[1].Components()
		printValue(w, cplx.FromPolar(length, phase))
	case "normalize":
		unit, ok := z.Normalized()
		printOptional(w, unit, ok)
	case "reciprocal":
		recip, ok := z.Reciprocal()
		printOptional(w, recip, ok)
	case "classify":
		printValue(w, z)
	}
	return nil
}

func printValue[R cplx.Real](w io.Writer, v cplx.Complex[R]) {
	fmt.Fprintf(w, "result: %v\n", v)
	fmt.Fprintf(w, "finite: %t zero: %t normal: %t subnormal: %t\n",
		v.IsFinite(), v.IsZero(), v.IsNormal(), v.IsSubnormal())
}

func printOptional[R cplx.Real](w io.Writer, v cplx.Complex[R], ok bool) {
	if !ok {
		fmt.Fprintln(w, "result: none")
		return
	}
	printValue(w, v)
}
