package controller

import (
	"strconv"

	m "github.com/mouse-blink/linemark/internal/model"
)

// Message types.
type exportedMsg struct {
	text string
	err  error
}

type savedMsg struct {
	err error
}

// List item types.
type lineItem struct {
	channel m.Channel
	line    int
}

func (l lineItem) FilterValue() string {
	return strconv.Itoa(l.line)
}
