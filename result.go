package optree

import (
	"github.com/tbriard/optree/types/orderedmap"
)

// Result holds the outcome of a successful resolution: the terminal command
// and the argument values bound along the way, retrievable by argument name.
type Result struct {
	// Command is the deepest matched command
	Command *Command
	// Path is the space-joined chain of command names from the root down
	Path string

	values *orderedmap.OrderedMap[string, []string]
}

func newResult() *Result {
	return &Result{values: orderedmap.NewOrderedMap[string, []string]()}
}

func (r *Result) bind(name string, values ...string) {
	existing, _ := r.values.Get(name)
	r.values.Set(name, append(existing, values...))
}

// Get returns the last value bound to the named argument and true when the
// argument was seen or defaulted
func (r *Result) Get(name string) (string, bool) {
	values, found := r.values.Get(name)
	if !found || len(values) == 0 {
		return "", found
	}

	return values[len(values)-1], true
}

// GetOrDefault returns the value of the named argument or defaultValue when
// it was never bound
func (r *Result) GetOrDefault(name string, defaultValue string) string {
	if value, found := r.Get(name); found {
		return value
	}

	return defaultValue
}

// GetAll returns every value bound to the named argument in binding order
func (r *Result) GetAll(name string) []string {
	values, _ := r.values.Get(name)

	return values
}

// Count returns the number of values bound to the named argument
func (r *Result) Count(name string) int {
	return len(r.GetAll(name))
}

// Has returns true when the named argument was bound at least once
func (r *Result) Has(name string) bool {
	_, found := r.values.Get(name)

	return found
}

// Options returns the bound name/value pairs in binding order. Arguments
// holding several values contribute one pair per value.
func (r *Result) Options() []KeyValue {
	pairs := make([]KeyValue, 0, r.values.Count())
	for kv := r.values.Front(); kv != nil; kv = kv.Next() {
		for _, value := range kv.Value {
			pairs = append(pairs, KeyValue{Key: *kv.Key, Value: value})
		}
	}

	return pairs
}
