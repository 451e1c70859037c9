package text

import "sync"

// runeToBoolMap remembers which code points have a glyph.
// Uses 2 bits per rune: (checked, hasGlyph), in 256-rune blocks that are
// allocated on first access, which suits the sparse ranges atlases request.
//
// runeToBoolMap is safe for concurrent use.
type runeToBoolMap struct {
	mu     sync.RWMutex
	blocks map[uint32]*runeBlock // keyed by rune >> 8
}

// runeBlock holds 256 runes (512 bits = 64 bytes).
type runeBlock struct {
	bits [8]uint64
}

func newRuneToBoolMap() *runeToBoolMap {
	return &runeToBoolMap{blocks: make(map[uint32]*runeBlock)}
}

// bitPos locates the checked bit of r; the hasGlyph bit follows it.
func bitPos(r rune) (block uint32, word int, shift uint) {
	idx := (uint32(r) & 0xFF) * 2
	return uint32(r) >> 8, int(idx / 64), uint(idx % 64)
}

// get returns (hasGlyph, checked).
func (m *runeToBoolMap) get(r rune) (hasGlyph, checked bool) {
	blk, word, shift := bitPos(r)

	m.mu.RLock()
	defer m.mu.RUnlock()

	b, ok := m.blocks[blk]
	if !ok {
		return false, false
	}
	w := b.bits[word] >> shift
	return w&2 != 0, w&1 != 0
}

// set records hasGlyph for r and marks it checked.
func (m *runeToBoolMap) set(r rune, hasGlyph bool) {
	blk, word, shift := bitPos(r)

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.blocks[blk]
	if !ok {
		b = &runeBlock{}
		m.blocks[blk] = b
	}
	b.bits[word] |= 1 << shift
	if hasGlyph {
		b.bits[word] |= 2 << shift
	} else {
		b.bits[word] &^= 2 << shift
	}
}

// lookup returns the cached answer for r, computing it with fn on a miss.
func (m *runeToBoolMap) lookup(r rune, fn func(rune) bool) bool {
	if has, checked := m.get(r); checked {
		return has
	}
	has := fn(r)
	m.set(r, has)
	return has
}
