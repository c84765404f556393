package parse

import (
	"errors"

	"github.com/openharmony/go-hcs/debug"
	"github.com/openharmony/go-hcs/source"
	"github.com/openharmony/go-hcs/token"
)

type Parser struct {
	src  token.Source
	opts []ParseOption
}

func NewParser(src token.Source, opts ...ParseOption) *Parser {
	return &Parser{src: src, opts: opts}
}

// ParseFile parses the content src holds for name. It returns a
// *token.UnavailableError when there is none.
func (p *Parser) ParseFile(name string) (*File, error) {
	l, err := token.Open(name, p.src)
	if err != nil {
		return nil, err
	}
	return parseLexer(l, p.opts...)
}

// Batch is the parsed include closure of a root file. Order lists file
// names in breadth first include order, root first. Missing lists, in the
// same order, the files whose content was not available.
type Batch struct {
	Order   []string
	Files   map[string]*File
	Missing []string
}

func (b *Batch) Roots() []*File {
	res := make([]*File, 0, len(b.Order))
	for _, name := range b.Order {
		res = append(res, b.Files[name])
	}
	return res
}

// ParseBatch parses root and, breadth first, every file it transitively
// includes. A file already queued is not queued again. Files without
// content are skipped and recorded in Missing; the error is then the
// *token.UnavailableError of the first of them. A lex or syntax error stops
// the batch. On error the batch holds the files parsed so far.
func (p *Parser) ParseBatch(root string) (*Batch, error) {
	root = source.CleanPath(root)
	b := &Batch{Files: map[string]*File{}}
	queue := []string{root}
	queued := map[string]bool{root: true}
	var unavailable error
	for i := 0; i < len(queue); i++ {
		f, err := p.ParseFile(queue[i])
		if err != nil {
			if debug.Load() {
				debug.Logf("batch %s: %s: %v\n", root, queue[i], err)
			}
			if errors.Is(err, token.ErrUnavailable) {
				b.Missing = append(b.Missing, queue[i])
				if unavailable == nil {
					unavailable = err
				}
				continue
			}
			return b, err
		}
		b.Order = append(b.Order, f.Name)
		b.Files[f.Name] = f
		for _, inc := range f.Includes {
			if queued[inc] {
				continue
			}
			queued[inc] = true
			queue = append(queue, inc)
		}
	}
	return b, unavailable
}
