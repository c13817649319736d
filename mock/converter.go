package mock

import "github.com/fwojciec/mdscrape"

var _ mdscrape.Converter = (*Converter)(nil)

// Converter is a mock implementation of mdscrape.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
