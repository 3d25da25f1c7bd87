package model

// Session is the in-memory annotation state of one file.
type Session struct {
	Filename string `yaml:"filename"`
	In       []int  `yaml:"in"`
	Out      []int  `yaml:"out"`
	// SourceHash fingerprints the annotated file so stale line numbers can be
	// detected when the file changes between runs.
	SourceHash string `yaml:"source_hash,omitempty"`
}

// Lines returns the marked lines of the given channel.
func (s Session) Lines(ch Channel) []int {
	if ch == ChannelOut {
		return s.Out
	}

	return s.In
}

// Payload is the exported record. Ins carries the encoded "in" set and Del the
// encoded "out" set.
type Payload struct {
	Filename string  `json:"filename"`
	Ins      []Token `json:"ins"`
	Del      []Token `json:"del"`
}
