package aerodex

// MaxPageLimit is the hard ceiling on the number of items returned in a
// single page. Requested limits above this value are clamped, not rejected.
const MaxPageLimit = 50

// Page is a bounded window over a sequence plus pagination metadata.
//
// Data is a subslice of the paginated input, not a copy. It stays valid for
// as long as the input does and must not be mutated through it.
type Page[T any] struct {
	// Total is the number of elements in the sequence being paginated.
	Total int `json:"total"`
	// HasMore reports whether elements exist beyond the returned window.
	HasMore bool `json:"has_more"`
	// Remaining is the number of elements after the returned window.
	Remaining int `json:"remaining"`
	// Data is the windowed view into the sequence.
	Data []T `json:"data"`
}

// Paginate computes a bounded window over data.
//
// A nil offset defaults to 0, a nil limit to everything after the offset.
// All numeric inputs are clamped, never rejected: an offset beyond the end
// yields an empty window and the effective limit never exceeds MaxPageLimit.
// The output is a pure function of (data, offset, limit).
func Paginate[T any](data []T, offset, limit *int) Page[T] {
	total := len(data)

	start := 0
	if offset != nil {
		start = *offset
	}
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}

	requested := total - start
	if limit != nil {
		requested = *limit
	}
	if requested < 0 {
		requested = 0
	}
	if requested > MaxPageLimit {
		requested = MaxPageLimit
	}

	end := start + requested
	if end > total {
		end = total
	}

	// An empty window must still marshal as [], not null.
	window := data[start:end]
	if window == nil {
		window = []T{}
	}

	return Page[T]{
		Total:     total,
		HasMore:   end < total,
		Remaining: total - end,
		Data:      window,
	}
}
