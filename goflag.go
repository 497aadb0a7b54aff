package optparse

import "flag"

// boolFlag is implemented by flag.Value implementations that represent
// booleans. The standard library uses it to decide whether a flag consumes an
// argument, and the bridge makes the same decision with it.
type boolFlag interface {
	flag.Value
	IsBoolFlag() bool
}

// AddGoFlagSet imports every flag defined on fs into the registry as a
// long-only flag and returns the receiver. Boolean flags become switches that
// set their value to "true"; every other flag takes an argument whose metavar
// and help text come from [flag.UnquoteUsage]. Matched values are written back
// through fs.Set, so code holding pointers from fs.String, fs.Int and friends
// observes the parse as usual.
//
// The flag set itself is never parsed; it only supplies definitions and
// storage. Flags are imported in the order fs.VisitAll yields them, which is
// lexicographical. AddGoFlagSet panics if a name collides with a flag already
// in the registry.
func (s *Flags) AddGoFlagSet(fs *flag.FlagSet) *Flags {
	fs.VisitAll(func(fl *flag.Flag) {
		name := fl.Name
		if bv, ok := fl.Value.(boolFlag); ok && bv.IsBoolFlag() {
			_, usage := flag.UnquoteUsage(fl)
			s.AddSwitch(name, LongOnly, usage, func() error {
				return fs.Set(name, "true")
			})
			return
		}
		metavar, usage := flag.UnquoteUsage(fl)
		s.Add(name, LongOnly, metavar, usage, func(value string) error {
			return fs.Set(name, value)
		})
	})
	return s
}
