// Package quotes supplies the texts raced in typing sessions.
package quotes

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Quote is a named text to type.
type Quote struct {
	Name string `toml:"name" yaml:"name"`
	Text string `toml:"text" yaml:"text"`
}

// Source hands out the next quote to race.
type Source interface {
	Next() Quote
}

// Reloader is a Source whose contents can be swapped at runtime.
type Reloader interface {
	Source
	Replace(quotes []Quote) error
	Len() int
}

// Pool selects quotes uniformly at random.
type Pool struct {
	rnd    *rand.Rand
	quotes []Quote
}

// NewPool returns a pool seeded with the current time.
func NewPool(quotes []Quote) (*Pool, error) {
	return NewPoolWithRand(quotes, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewPoolWithRand returns a pool drawing from rnd.
func NewPoolWithRand(quotes []Quote, rnd *rand.Rand) (*Pool, error) {
	p := &Pool{rnd: rnd}
	if err := p.Replace(quotes); err != nil {
		return nil, err
	}
	return p, nil
}

// Next returns a uniformly random quote.
func (p *Pool) Next() Quote {
	return p.quotes[p.rnd.Intn(len(p.quotes))]
}

// Replace swaps the pool contents. The pool is left unchanged on error.
func (p *Pool) Replace(quotes []Quote) error {
	if len(quotes) == 0 {
		return fmt.Errorf("quote pool is empty")
	}
	for i, q := range quotes {
		if err := q.Validate(); err != nil {
			return fmt.Errorf("quote %d: %w", i+1, err)
		}
	}
	p.quotes = append([]Quote(nil), quotes...)
	return nil
}

// Quotes returns a copy of the pool contents.
func (p *Pool) Quotes() []Quote {
	return append([]Quote(nil), p.quotes...)
}

// Len returns the pool size.
func (p *Pool) Len() int {
	return len(p.quotes)
}

// Validate rejects quotes that cannot be raced.
func (q Quote) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("quote %q has empty text", q.Name)
	}
	return nil
}
