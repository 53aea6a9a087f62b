package domain

// QuoteItem is one line of a quote breakdown.
type QuoteItem struct {
	Label string
	Cents int64
}

// Quote is a computed price breakdown. It is never persisted: the source of
// truth is always a recomputation from activity, start, size, duration and
// add-on selection.
type Quote struct {
	BaseCents   int64
	AddOnsCents int64
	TotalCents  int64

	// Items preserves presentation order: base line first, then add-ons in
	// the order they were requested. Receipts render this verbatim.
	Items []QuoteItem
}
