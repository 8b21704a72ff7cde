package domain

// Entry is a single label/count pair of an OrderedCounts.
type Entry struct {
	Key   string `json:"key"`
	Value int    `json:"value"`
}

// OrderedCounts maps labels to integers and remembers the order in which labels were
// first inserted. Overwriting a label changes its value but not its position.
type OrderedCounts struct {
	keys   []string
	values map[string]int
}

// NewOrderedCounts returns an empty OrderedCounts.
func NewOrderedCounts() *OrderedCounts {
	return &OrderedCounts{values: make(map[string]int)}
}

// Add increments key by delta, inserting it at the end if it is new.
func (o *OrderedCounts) Add(key string, delta int) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] += delta
}

// Set stores value under key. The last write wins; the first insertion fixes the position.
func (o *OrderedCounts) Set(key string, value int) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Get returns the value stored under key.
func (o *OrderedCounts) Get(key string) (int, bool) {
	if o == nil {
		return 0, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Len is the number of distinct keys. A nil OrderedCounts is empty.
func (o *OrderedCounts) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Entries returns the pairs in insertion order.
func (o *OrderedCounts) Entries() []Entry {
	if o == nil {
		return []Entry{}
	}
	entries := make([]Entry, 0, len(o.keys))
	for _, k := range o.keys {
		entries = append(entries, Entry{Key: k, Value: o.values[k]})
	}
	return entries
}

// Sum adds up every value.
func (o *OrderedCounts) Sum() int {
	total := 0
	if o == nil {
		return total
	}
	for _, v := range o.values {
		total += v
	}
	return total
}

// Max returns the entry with the highest value. Ties go to the earliest inserted key.
func (o *OrderedCounts) Max() (Entry, bool) {
	if o.Len() == 0 {
		return Entry{}, false
	}
	best := Entry{Key: o.keys[0], Value: o.values[o.keys[0]]}
	for _, k := range o.keys[1:] {
		if v := o.values[k]; v > best.Value {
			best = Entry{Key: k, Value: v}
		}
	}
	return best, true
}
