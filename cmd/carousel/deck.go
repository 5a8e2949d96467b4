package main

import (
	"fmt"

	"github.com/ayn2op/carousel"
	"github.com/ayn2op/carousel/tui"
)

var blurbs = []string{
	"Drag with the mouse or use the arrow keys to move between cards.",
	"Side cards shrink and fade as they move away from the center.",
	"Only the cards near the viewport are mounted at any time.",
	"Press s to cycle between hard, soft and free scrolling.",
	"Press i to wrap around from the last card to the first.",
	"Click a card or press enter to select it.",
}

// deck is the item provider of the demo.
type deck struct {
	cards []*tui.Card
}

var _ carousel.ItemProvider = (*deck)(nil)

func newDeck(count int, borderSet tui.BorderSet) *deck {
	d := &deck{cards: make([]*tui.Card, count)}
	for i := range d.cards {
		title := fmt.Sprintf("Card %d", i+1)
		d.cards[i] = tui.NewCard(title, blurbs[i%len(blurbs)], tui.Styles.Accent(i)).SetBorderSet(borderSet)
	}
	return d
}

func (d *deck) Count() int {
	return len(d.cards)
}

func (d *deck) ViewFor(logical int) carousel.ViewHandle {
	return d.cards[logical]
}
