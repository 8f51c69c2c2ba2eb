// Package kata defines the convention shared by every exercise package in this
// module: the two error kinds an exercise may report, and a small catalog that
// runs each exercise's demo and classifies the outcome.
//
// Error kinds
//
//   - ErrInvalidInput:   a precondition was violated (empty name, negative age,
//     negative edge weight, ...). Package-level sentinels wrap it, so callers
//     may test for the specific error or for the whole kind with errors.Is.
//   - ErrNotImplemented: a path that is intentionally left open as an exercise.
//     It is never swallowed and never mixed up with ErrInvalidInput.
//
// Exercises and catalogs
//
//	c := kata.NewCatalog()
//	_ = c.Register(kata.Exercise{
//	    Name:    "two-sum",
//	    Summary: "indices of the first pair adding up to target",
//	    Status:  kata.Solved,
//	    Demo:    func() (string, error) { return fmt.Sprint(twosum.TwoSum(nums, 9)), nil },
//	})
//	for _, o := range kata.RunAll(c) {
//	    fmt.Println(o)
//	}
//
// Exercise packages never print on import; their sample invocations live in
// Example functions and in the demos registered by the katas command.
package kata
