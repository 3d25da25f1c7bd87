package model

// Channel identifies one of the two marked-line sets.
type Channel string

const (
	// ChannelIn holds lines flagged as included.
	ChannelIn Channel = "in"
	// ChannelOut holds lines flagged as excluded.
	ChannelOut Channel = "out"
)

// Channels lists every channel in display order.
var Channels = []Channel{ChannelIn, ChannelOut}
