package cdt

// ReturnType selects what the GetBy* and RemoveBy* operation families send
// back for each selected element.
type ReturnType int

const (
	// ReturnNone returns nothing.
	ReturnNone ReturnType = 0
	// ReturnIndex returns element indexes, front to back.
	ReturnIndex ReturnType = 1
	// ReturnReverseIndex returns element indexes counted from the end.
	ReturnReverseIndex ReturnType = 2
	// ReturnRank returns value order ranks, lowest first.
	ReturnRank ReturnType = 3
	// ReturnReverseRank returns value order ranks, highest first.
	ReturnReverseRank ReturnType = 4
	// ReturnCount returns the number of selected elements.
	ReturnCount ReturnType = 5
	// ReturnKey returns map keys.
	ReturnKey ReturnType = 6
	// ReturnValue returns element values.
	ReturnValue ReturnType = 7
	// ReturnKeyValue returns map keys with their values.
	ReturnKeyValue ReturnType = 8
	// ReturnExists returns whether anything matched.
	ReturnExists ReturnType = 13

	// ReturnInverted flips the selection to everything the criteria do not
	// match. OR it with one of the other return types.
	ReturnInverted ReturnType = 0x10000
)
