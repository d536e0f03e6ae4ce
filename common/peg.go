package common

// PegReferenceType names the reference price a PeggedOrder tracks.
type PegReferenceType int

const (
	BestBid PegReferenceType = iota
	BestAsk
	MidPrice
	LastTrade
)
