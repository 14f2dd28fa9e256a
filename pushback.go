// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

// PairSource is anything that can produce a stream of code pairs, one at
// a time. *Tokenizer implements it; so does any pre-materialized slice
// via SlicePairSource, which tests use to drive codecs without a wire
// encoding.
type PairSource interface {
	// NextPair returns the next pair, (CodePair{}, false, nil) at the end
	// of the stream, or an error.
	NextPair() (CodePair, bool, error)
}

// SlicePairSource adapts a pre-built []CodePair into a PairSource, the
// way tests construct a section body without round-tripping through the
// ASCII tokenizer.
type SlicePairSource struct {
	pairs []CodePair
	pos   int
}

// NewSlicePairSource wraps pairs as a PairSource.
func NewSlicePairSource(pairs []CodePair) *SlicePairSource {
	return &SlicePairSource{pairs: pairs}
}

// NextPair implements PairSource.
func (s *SlicePairSource) NextPair() (CodePair, bool, error) {
	if s.pos >= len(s.pairs) {
		return CodePair{}, false, nil
	}
	p := s.pairs[s.pos]
	s.pos++
	return p, true, nil
}

// PairIterator is a one-pair push-back wrapper around a PairSource. Every
// section/record codec consumes pairs through a PairIterator so it can
// peek the sentinel (0, ...) pair that ends its extent without consuming
// it, letting the parent resume at the same token. At most one pair may
// be pushed back before another Next call; a second consecutive push-back
// is a programmer error (see PutBack).
type PairIterator struct {
	src      PairSource
	buffered *CodePair
}

// NewPairIterator wraps src in a push-back iterator.
func NewPairIterator(src PairSource) *PairIterator {
	return &PairIterator{src: src}
}

// Next returns the next pair, draining the push-back buffer first.
// ok is false at end of stream.
func (it *PairIterator) Next() (CodePair, bool, error) {
	if it.buffered != nil {
		p := *it.buffered
		it.buffered = nil
		return p, true, nil
	}
	return it.src.NextPair()
}

// PutBack pushes pair back so the next call to Next returns it again.
// Calling PutBack twice without an intervening Next panics: this is a
// programmer error in the codec, not a recoverable condition.
func (it *PairIterator) PutBack(pair CodePair) {
	if it.buffered != nil {
		panic(ErrPushedBackTwice)
	}
	it.buffered = &pair
}

// Peek returns the next pair without consuming it.
func (it *PairIterator) Peek() (CodePair, bool, error) {
	p, ok, err := it.Next()
	if err != nil || !ok {
		return p, ok, err
	}
	it.PutBack(p)
	return p, true, nil
}
