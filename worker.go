package primesearch

// maxPrealloc bounds the capacity Evaluate reserves up front.
const maxPrealloc = 1 << 16

// Evaluate applies pred to every value of p in ascending order and returns
// the results in that order.
func Evaluate(p Partition, pred Predicate) []CheckedValue {
	values := make([]CheckedValue, 0, min(p.Len(), maxPrealloc))
	for v := range p.Values() {
		values = append(values, CheckedValue{Value: v, Prime: pred(v)})
	}
	return values
}

// Emit applies pred to every value of p in ascending order and sends each
// result to out as soon as it is computed. Emit does not close out.
func Emit(p Partition, pred Predicate, out chan<- CheckedValue) {
	for v := range p.Values() {
		out <- CheckedValue{Value: v, Prime: pred(v)}
	}
}
