package seq

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// describer is implemented by sequences which are able to report a label and the
// sequences they are composed of.
type describer interface {
	describe() (string, []any)
}

func describeImpl(impl any) (string, []any) {
	if d, ok := impl.(describer); ok {
		return d.describe()
	}
	return fmt.Sprintf("%T", impl), nil
}

// Dump renders the operator tree of a composed sequence, e.g.
//
//     minus
//     ├── union
//     │   ├── indexed[0…3)
//     │   └── indexed[0…2)
//     └── indexed[0…1)
//
func Dump[T any](s Sequence[T]) string {
	printer := tp.New()
	label, children := describeImpl(s)
	printer.SetValue(label)
	for _, ch := range children {
		dumpNode(printer, ch)
	}
	return printer.String()
}

func dumpNode(printer tp.Tree, s any) {
	label, children := describeImpl(s)
	if len(children) == 0 {
		printer.AddNode(label)
		return
	}
	branch := printer.AddBranch(label)
	for _, ch := range children {
		dumpNode(branch, ch)
	}
}
